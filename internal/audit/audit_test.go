package audit

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/workforce-management-api/internal/auth"
	"github.com/yukikurage/workforce-management-api/internal/metrics"
	"github.com/yukikurage/workforce-management-api/internal/models"
)

type fakeWriter struct {
	mu      sync.Mutex
	entries []*models.LogEntry
	err     error
	panics  bool
	delay   time.Duration
}

func (w *fakeWriter) Create(ctx context.Context, entry *models.LogEntry) error {
	if w.delay > 0 {
		time.Sleep(w.delay)
	}
	if w.panics {
		panic("storage exploded")
	}
	if w.err != nil {
		return w.err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.entries = append(w.entries, entry)
	return nil
}

func (w *fakeWriter) count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.entries)
}

func TestResolve_Defaults(t *testing.T) {
	identity := &auth.Identity{ID: "user-1", OrganisationID: "org-1"}

	entry := Resolve(RequestInfo{
		Method:   "GET",
		URL:      "/api/employees?x=1",
		Status:   200,
		PeerAddr: "10.0.0.1:4000",
		Identity: identity,
	})

	assert.Equal(t, "GET /api/employees?x=1", entry.Action)
	assert.Nil(t, entry.Event)
	require.NotNil(t, entry.Status)
	assert.Equal(t, 200, *entry.Status)
	require.NotNil(t, entry.OrganisationID)
	assert.Equal(t, "org-1", *entry.OrganisationID)
	require.NotNil(t, entry.UserID)
	assert.Equal(t, "user-1", *entry.UserID)
	assert.Equal(t, "10.0.0.1", entry.IP)
}

func TestResolve_ExplicitWins(t *testing.T) {
	entry := Resolve(RequestInfo{
		Method:       "POST",
		URL:          "/api/teams",
		Status:       201,
		ForwardedFor: "203.0.113.9",
		PeerAddr:     "10.0.0.1:4000",
		Identity:     &auth.Identity{ID: "user-1", OrganisationID: "org-1"},
		Explicit: Entry{
			Action:         "TEAM_CREATED",
			Event:          String("TEAM_CREATED"),
			OrganisationID: String("org-2"),
		},
	})

	assert.Equal(t, "TEAM_CREATED", entry.Action)
	assert.Equal(t, "TEAM_CREATED", *entry.Event)
	assert.Equal(t, "org-2", *entry.OrganisationID)
	assert.Equal(t, "user-1", *entry.UserID)
	assert.Equal(t, 201, *entry.Status)
	assert.Equal(t, "203.0.113.9", entry.IP)
}

func TestResolve_Anonymous(t *testing.T) {
	entry := Resolve(RequestInfo{Method: "GET", URL: "/api/logs", Status: 401, PeerAddr: "10.0.0.1:1"})

	assert.Nil(t, entry.OrganisationID)
	assert.Nil(t, entry.UserID)
	assert.Equal(t, 401, *entry.Status)

	system := Resolve(RequestInfo{})
	assert.Equal(t, "SYSTEM", system.Action)
	assert.Nil(t, system.Status)
	assert.Nil(t, system.LogEntry().IP)
}

func TestAuditor_RecordPersists(t *testing.T) {
	writer := &fakeWriter{}
	m := metrics.New()
	auditor := New(writer, zerolog.Nop(), WithMetrics(m))

	for i := 0; i < 5; i++ {
		auditor.Record(Entry{Action: "GET /api/teams", Status: Int(200)})
	}
	auditor.Wait()

	assert.Equal(t, 5, writer.count())
	assert.Equal(t, float64(5), testutil.ToFloat64(m.AuditWritten))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.AuditFailed))
}

func TestAuditor_RecordDoesNotBlock(t *testing.T) {
	writer := &fakeWriter{delay: 200 * time.Millisecond}
	auditor := New(writer, zerolog.Nop())

	start := time.Now()
	auditor.Record(Entry{Action: "slow"})
	assert.Less(t, time.Since(start), 100*time.Millisecond)

	auditor.Wait()
	assert.Equal(t, 1, writer.count())
}

func TestAuditor_FailuresAreSwallowed(t *testing.T) {
	var buf bytes.Buffer
	m := metrics.New()
	auditor := New(&fakeWriter{err: errors.New("connection refused")}, zerolog.New(&buf), WithMetrics(m))

	assert.NotPanics(t, func() {
		auditor.Write(context.Background(), Entry{Action: "USER_LOGIN"})
		auditor.Record(Entry{Action: "GET /api/employees"})
		auditor.Wait()
	})

	assert.Equal(t, float64(2), testutil.ToFloat64(m.AuditFailed))
	assert.Contains(t, buf.String(), "connection refused")
}

func TestAuditor_PanicsAreContained(t *testing.T) {
	var buf bytes.Buffer
	auditor := New(&fakeWriter{panics: true}, zerolog.New(&buf))

	assert.NotPanics(t, func() {
		auditor.Record(Entry{Action: "DELETE /api/teams/1"})
		auditor.Wait()
	})
	assert.Contains(t, buf.String(), "storage exploded")
}
