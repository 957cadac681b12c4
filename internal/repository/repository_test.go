package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/workforce-management-api/internal/models"
	"github.com/yukikurage/workforce-management-api/internal/testutil"
	"gorm.io/gorm"
)

func teamLinks(t *testing.T, db *gorm.DB, teamID string) []models.Membership {
	t.Helper()
	var links []models.Membership
	require.NoError(t, db.Where("team_id = ?", teamID).Order("assigned_at ASC").Find(&links).Error)
	return links
}

func TestUserRepository_FindByEmailAndCountAdmins(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	org := testutil.CreateOrganisation(t, db, "Acme")
	user := testutil.CreateUser(t, db, org.ID, "alice@acme.com", "Password123", true)

	found, err := repo.FindByEmail(ctx, "alice@acme.com")
	require.NoError(t, err)
	require.Equal(t, user.ID, found.ID)

	_, err = repo.FindByEmail(ctx, "nobody@acme.com")
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	count, err := repo.CountAdmins(ctx, org.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	testutil.CreateUser(t, db, org.ID, "bob@acme.com", "Password123", false)
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).Update("is_admin", false).Error)

	count, err = repo.CountAdmins(ctx, org.ID)
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewUserRepository(db)

	org := testutil.CreateOrganisation(t, db, "Acme")
	testutil.CreateUser(t, db, org.ID, "dup@acme.com", "Password123", false)

	err := repo.Create(context.Background(), &models.User{
		OrganisationID: org.ID,
		Email:          "dup@acme.com",
		PasswordHash:   "x",
		Name:           "Dup",
	})
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestEmployeeRepository_ScopedByOrganisation(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := NewEmployeeRepository(db)

	orgA := testutil.CreateOrganisation(t, db, "A")
	orgB := testutil.CreateOrganisation(t, db, "B")
	a1 := testutil.CreateEmployee(t, db, orgA.ID, "Ann")
	a2 := testutil.CreateEmployee(t, db, orgA.ID, "Abe")
	b1 := testutil.CreateEmployee(t, db, orgB.ID, "Bob")

	list, err := repo.ListByOrganisation(ctx, orgA.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, e := range list {
		require.Equal(t, orgA.ID, e.OrganisationID)
	}

	ids, err := repo.FilterIDsByOrganisation(ctx, orgA.ID, []string{a1.ID, b1.ID, "not-a-uuid", a2.ID})
	require.NoError(t, err)
	require.ElementsMatch(t, []string{a1.ID, a2.ID}, ids)

	ids, err = repo.FilterIDsByOrganisation(ctx, orgA.ID, nil)
	require.NoError(t, err)
	require.Empty(t, ids)

	count, err := repo.CountByOrganisation(ctx, orgB.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}

func TestMembershipRepository_AssignIsIdempotent(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	memberships := NewMembershipRepository(db)
	employees := NewEmployeeRepository(db)

	org := testutil.CreateOrganisation(t, db, "Acme")
	team := testutil.CreateTeam(t, db, org.ID, "Ops")
	e1 := testutil.CreateEmployee(t, db, org.ID, "Ann")
	e2 := testutil.CreateEmployee(t, db, org.ID, "Abe")

	require.NoError(t, memberships.Assign(ctx, team.ID, []string{e1.ID}))
	first := teamLinks(t, db, team.ID)
	require.Len(t, first, 1)

	time.Sleep(5 * time.Millisecond)
	require.NoError(t, memberships.Assign(ctx, team.ID, []string{e1.ID, e2.ID}))
	require.NoError(t, memberships.Assign(ctx, team.ID, []string{e1.ID, e2.ID}))

	links := teamLinks(t, db, team.ID)
	require.Len(t, links, 2)
	for _, link := range links {
		if link.EmployeeID == e1.ID {
			require.True(t, link.AssignedAt.Equal(first[0].AssignedAt))
		}
	}

	assigned, err := employees.ListByTeam(ctx, team.ID)
	require.NoError(t, err)
	require.Len(t, assigned, 2)

	require.NoError(t, memberships.Unassign(ctx, team.ID, e1.ID))
	require.NoError(t, memberships.Unassign(ctx, team.ID, e1.ID))
	links = teamLinks(t, db, team.ID)
	require.Len(t, links, 1)
	require.Equal(t, e2.ID, links[0].EmployeeID)
}

func TestTeamRepository_DeleteRemovesMemberships(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	teams := NewTeamRepository(db)
	memberships := NewMembershipRepository(db)

	org := testutil.CreateOrganisation(t, db, "Acme")
	team := testutil.CreateTeam(t, db, org.ID, "Ops")
	other := testutil.CreateTeam(t, db, org.ID, "Dev")
	emp := testutil.CreateEmployee(t, db, org.ID, "Ann")

	require.NoError(t, memberships.Assign(ctx, team.ID, []string{emp.ID}))
	require.NoError(t, memberships.Assign(ctx, other.ID, []string{emp.ID}))

	require.NoError(t, teams.Delete(ctx, team.ID))

	_, err := teams.FindByID(ctx, team.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Membership{}).Where("team_id = ?", team.ID).Count(&count).Error)
	require.Zero(t, count)

	require.Len(t, teamLinks(t, db, other.ID), 1)
}

func TestEmployeeRepository_DeleteRemovesMemberships(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	employees := NewEmployeeRepository(db)
	memberships := NewMembershipRepository(db)

	org := testutil.CreateOrganisation(t, db, "Acme")
	team := testutil.CreateTeam(t, db, org.ID, "Ops")
	emp := testutil.CreateEmployee(t, db, org.ID, "Ann")
	require.NoError(t, memberships.Assign(ctx, team.ID, []string{emp.ID}))

	require.NoError(t, employees.Delete(ctx, emp.ID))

	require.Empty(t, teamLinks(t, db, team.ID))
}

func TestLogRepository_ListRecent(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := NewLogRepository(db)

	orgA := testutil.CreateOrganisation(t, db, "A")
	orgB := testutil.CreateOrganisation(t, db, "B")
	user := testutil.CreateUser(t, db, orgA.ID, "a@a.com", "Password123", true)

	base := time.Now().Add(-time.Hour)
	require.NoError(t, repo.Create(ctx, &models.LogEntry{
		OrganisationID: &orgA.ID, UserID: &user.ID, Action: "first", Timestamp: base,
	}))
	require.NoError(t, repo.Create(ctx, &models.LogEntry{
		OrganisationID: &orgB.ID, Action: "second", Timestamp: base.Add(time.Minute),
	}))
	require.NoError(t, repo.Create(ctx, &models.LogEntry{
		Action: "SYSTEM", Timestamp: base.Add(2 * time.Minute),
	}))

	entries, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, "SYSTEM", entries[0].Action)
	require.Nil(t, entries[0].User)
	require.Nil(t, entries[0].Organisation)
	require.Equal(t, "second", entries[1].Action)
	require.NotNil(t, entries[1].Organisation)
	require.Equal(t, "B", entries[1].Organisation.Name)
	require.Equal(t, "first", entries[2].Action)
	require.NotNil(t, entries[2].User)
	require.Equal(t, "a@a.com", entries[2].User.Email)

	entries, err = repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
}
