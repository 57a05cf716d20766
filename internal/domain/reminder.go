package domain

import "github.com/shopspring/decimal"

// Reminder is an overdue-rent alert (échéance impayée) derived by the
// server from leases and their most recent payment. A lease is overdue
// when no payment was recorded for it within the last 30 days.
type Reminder struct {
	ID           string          `json:"id"`
	LeaseID      int64           `json:"contrat_id"`
	TenantID     int64           `json:"locataire_id"`
	TenantNom    string          `json:"locataire_nom"`
	UnitAdresse  string          `json:"bien_adresse"`
	MontantDu    decimal.Decimal `json:"montant_du"`
	MoisConcerne Date            `json:"mois_concerne"`
	JoursRetard  int             `json:"jours_retard"`
	Telephone    string          `json:"telephone,omitempty"`
	Email        string          `json:"email,omitempty"`

	// Prior-reminder metadata, present when an admin reminder was sent.
	RappelEnvoye  FlexBool `json:"rappel_envoye,omitempty"`
	RappelLu      FlexBool `json:"rappel_lu,omitempty"`
	RappelDate    Date     `json:"rappel_date,omitempty"`
	RappelMessage string   `json:"rappel_message,omitempty"`
}

// NoticeType classifies a tenant-portal notification.
type NoticeType string

// Notice types.
const (
	NoticeInfo    NoticeType = "info"
	NoticeWarning NoticeType = "warning"
	NoticeDanger  NoticeType = "danger"
)

// TenantNotice is a notification shown in the tenant portal. IDs of the
// form "rappel-<n>" map to a server-tracked reminder; dismissing such a
// notice also marks the reminder read upstream.
type TenantNotice struct {
	ID           string          `json:"id"`
	Type         NoticeType      `json:"type"`
	Message      string          `json:"message"`
	Montant      decimal.Decimal `json:"montant"`
	JoursRetard  int             `json:"joursRetard"`
	MoisConcerne string          `json:"moisConcerne"`
	Source       string          `json:"source,omitempty"`
	LeaseID      int64           `json:"contrat_id"`
	RappelID     int64           `json:"rappelId,omitempty"`
}
