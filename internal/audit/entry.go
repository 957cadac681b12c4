package audit

import (
	"github.com/yukikurage/workforce-management-api/internal/auth"
	"github.com/yukikurage/workforce-management-api/internal/models"
	"github.com/yukikurage/workforce-management-api/internal/utils"
)

// Entry is an audit record before persistence. Nil fields are stored as NULL.
type Entry struct {
	Action         string
	Event          *string
	Status         *int
	OrganisationID *string
	UserID         *string
	IP             string
}

// RequestInfo carries what is known about a completed request. Explicit
// holds values set by the caller; empty fields fall back to defaults.
type RequestInfo struct {
	Method       string
	URL          string
	Status       int
	ForwardedFor string
	PeerAddr     string
	Identity     *auth.Identity
	Explicit     Entry
}

// Resolve fills the defaults for an entry: the identity's organisation and
// user, an action synthesized from method and URL, the response status and
// the client address.
func Resolve(info RequestInfo) Entry {
	entry := info.Explicit

	if info.Identity != nil {
		if entry.OrganisationID == nil && info.Identity.OrganisationID != "" {
			entry.OrganisationID = String(info.Identity.OrganisationID)
		}
		if entry.UserID == nil && info.Identity.ID != "" {
			entry.UserID = String(info.Identity.ID)
		}
	}

	if entry.Action == "" {
		if info.Method != "" {
			entry.Action = info.Method + " " + info.URL
		} else {
			entry.Action = "SYSTEM"
		}
	}

	if entry.Status == nil && info.Status != 0 {
		entry.Status = Int(info.Status)
	}

	if entry.IP == "" {
		entry.IP = utils.ClientIP(info.ForwardedFor, info.PeerAddr)
	}

	return entry
}

// LogEntry converts the entry to its storage model.
func (e Entry) LogEntry() *models.LogEntry {
	log := &models.LogEntry{
		OrganisationID: e.OrganisationID,
		UserID:         e.UserID,
		Action:         e.Action,
		Event:          e.Event,
		Status:         e.Status,
	}
	if e.IP != "" {
		log.IP = String(e.IP)
	}
	return log
}

func String(s string) *string { return &s }

func Int(i int) *int { return &i }
