// Package notify derives severity buckets and send decisions for
// overdue-rent reminders, and manages the tenant notice board with its
// optimistic dismissal semantics.
package notify

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Sodamareme/gestion-loyer-cli/internal/domain"
	"github.com/Sodamareme/gestion-loyer-cli/internal/filter"
)

// Severity buckets an overdue lease by days late.
type Severity string

// Severity levels. Boundaries are inclusive on the lower bucket: 5 days
// is still mild, 15 is still moderate, 16 is severe.
const (
	SeverityMild     Severity = "leger"
	SeverityModerate Severity = "modere"
	SeveritySevere   Severity = "important"
)

// Classify buckets days overdue into a severity level.
func Classify(daysOverdue int) Severity {
	switch {
	case daysOverdue <= 5:
		return SeverityMild
	case daysOverdue <= 15:
		return SeverityModerate
	default:
		return SeveritySevere
	}
}

// ReminderState filters reminders by their prior-send status.
type ReminderState string

// Reminder states. The empty state matches everything.
const (
	StateAll        ReminderState = ""
	StateNotSent    ReminderState = "non_envoye"
	StateSentUnread ReminderState = "envoye_non_lu"
	StateSentRead   ReminderState = "envoye_lu"
)

func (s ReminderState) match(r domain.Reminder) bool {
	switch s {
	case StateNotSent:
		return !r.RappelEnvoye.Bool()
	case StateSentUnread:
		return r.RappelEnvoye.Bool() && !r.RappelLu.Bool()
	case StateSentRead:
		return r.RappelEnvoye.Bool() && r.RappelLu.Bool()
	default:
		return true
	}
}

// Criteria filters the reminder list. State and Severity are AND-ed;
// zero values disable the corresponding restriction.
type Criteria struct {
	State    ReminderState
	Severity Severity
}

// Match reports whether the reminder satisfies every set restriction.
func (c Criteria) Match(r domain.Reminder) bool {
	if !c.State.match(r) {
		return false
	}
	if c.Severity != "" && Classify(r.JoursRetard) != c.Severity {
		return false
	}
	return true
}

// Apply filters reminders, preserving input order.
func (c Criteria) Apply(reminders []domain.Reminder) []domain.Reminder {
	return filter.Apply(reminders, c.Match)
}

// Summary aggregates the reminder list for the overview header.
type Summary struct {
	Total    int
	Mild     int
	Moderate int
	Severe   int
	Sent     int
	Unread   int
	TotalDue decimal.Decimal
}

// Summarize counts reminders per severity and send state and totals the
// amounts due.
func Summarize(reminders []domain.Reminder) Summary {
	var s Summary
	for _, r := range reminders {
		s.Total++
		switch Classify(r.JoursRetard) {
		case SeverityMild:
			s.Mild++
		case SeverityModerate:
			s.Moderate++
		case SeveritySevere:
			s.Severe++
		}
		if r.RappelEnvoye.Bool() {
			s.Sent++
			if !r.RappelLu.Bool() {
				s.Unread++
			}
		}
		s.TotalDue = s.TotalDue.Add(r.MontantDu)
	}
	return s
}

// NeedsConfirmation reports whether sending this reminder again requires
// the caller to confirm first: a prior reminder went out and the tenant
// has not read it yet. Sending is never silently repeated in that state.
func NeedsConfirmation(r domain.Reminder) bool {
	return r.RappelEnvoye.Bool() && !r.RappelLu.Bool()
}

// DefaultMessage builds the standard reminder text. A custom message
// passed to the send call overrides it.
func DefaultMessage(r domain.Reminder) string {
	return fmt.Sprintf(
		"Bonjour %s, votre loyer du mois de %s d'un montant de %s FCFA est en retard de %d jours. Merci de régulariser votre situation.",
		r.TenantNom, r.MoisConcerne.MonthKey(), r.MontantDu.StringFixed(0), r.JoursRetard,
	)
}

// SendRequest is a confirmed, ready-to-send reminder.
type SendRequest struct {
	LeaseID      int64  `json:"contrat_id"`
	MoisConcerne string `json:"mois_concerne"`
	Message      string `json:"message"`
}

// PrepareSend builds the send payload for a reminder. confirmed must be
// true when NeedsConfirmation reports a pending unread reminder; without
// it the call is refused so the caller can ask the user first.
func PrepareSend(r domain.Reminder, message string, confirmed bool) (SendRequest, error) {
	if NeedsConfirmation(r) && !confirmed {
		return SendRequest{}, ErrConfirmationRequired
	}
	if message == "" {
		message = DefaultMessage(r)
	}
	return SendRequest{
		LeaseID:      r.LeaseID,
		MoisConcerne: r.MoisConcerne.MonthKey(),
		Message:      message,
	}, nil
}
