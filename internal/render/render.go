// Package render writes the CLI's tabular and dashboard output.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/Sodamareme/gestion-loyer-cli/internal/domain"
	"github.com/Sodamareme/gestion-loyer-cli/internal/notify"
	"github.com/Sodamareme/gestion-loyer-cli/internal/report"
)

// ANSI color codes.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBold   = "\033[1m"
)

// Console renders reports and entity listings.
type Console struct {
	writer    io.Writer
	useColors bool
}

// NewConsole creates a console renderer. writer defaults to os.Stdout.
func NewConsole(writer io.Writer, useColors bool) *Console {
	if writer == nil {
		writer = os.Stdout
	}
	return &Console{writer: writer, useColors: useColors}
}

func (c *Console) color(code, s string) string {
	if !c.useColors {
		return s
	}
	return code + s + colorReset
}

// fcfa formats an amount with thousands separators and the FCFA suffix.
func fcfa(amount decimal.Decimal) string {
	raw := amount.Round(0).String()
	neg := strings.HasPrefix(raw, "-")
	digits := strings.TrimPrefix(raw, "-")
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	out := b.String() + " FCFA"
	if neg {
		out = "-" + out
	}
	return out
}

// Dashboard prints the full aggregated report.
func (c *Console) Dashboard(d report.Dashboard) {
	fmt.Fprintf(c.writer, "%s\n", c.color(colorBold, "=== Tableau de bord ==="))
	fmt.Fprintf(c.writer, "Période : %s au %s\n\n",
		d.PeriodFrom.Format("2006-01-02"), d.PeriodTo.Format("2006-01-02"))

	fmt.Fprintf(c.writer, "Biens : %d (%d loués, %d disponibles)  Contrats actifs : %d\n",
		d.TotalUnits, d.RentedUnits, d.AvailableUnits, d.ActiveLeases)
	fmt.Fprintf(c.writer, "Loyers attendus : %s\n", fcfa(d.Expected))
	fmt.Fprintf(c.writer, "Loyers encaissés : %s\n", fcfa(d.Collected))

	rate := fmt.Sprintf("%d%%", d.CollectionRate)
	if d.CollectionRate >= 90 {
		rate = c.color(colorGreen, rate)
	} else if d.CollectionRate < 50 {
		rate = c.color(colorRed, rate)
	}
	fmt.Fprintf(c.writer, "Taux de recouvrement : %s   Reste à percevoir : %s\n\n",
		rate, fcfa(d.RemainingDue))

	if len(d.Arrears) > 0 {
		fmt.Fprintf(c.writer, "%s\n", c.color(colorRed, "Impayés :"))
		tw := tabwriter.NewWriter(c.writer, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "LOCATAIRE\tADRESSE\tLOYER\tDERNIER PAIEMENT\tRETARD")
		for _, e := range d.Arrears {
			last := "jamais"
			if !e.LastPayment.IsZero() {
				last = e.LastPayment.Format("2006-01-02")
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d j\n",
				e.Lease.TenantNom, e.Lease.UnitAdresse, fcfa(e.Lease.MontantLoyer), last, e.DaysOverdue)
		}
		tw.Flush()
		fmt.Fprintln(c.writer)
	}

	if len(d.UpcomingExpirations) > 0 {
		fmt.Fprintf(c.writer, "%s\n", c.color(colorYellow, "Contrats expirant sous 30 jours :"))
		for _, l := range d.UpcomingExpirations {
			fmt.Fprintf(c.writer, "  %s (%s) fin le %s\n",
				l.TenantNom, l.UnitAdresse, l.DateFin.Format("2006-01-02"))
		}
		fmt.Fprintln(c.writer)
	}

	if len(d.TopOwners) > 0 {
		fmt.Fprintf(c.writer, "%s\n", c.color(colorBold, "Meilleurs propriétaires :"))
		for i, o := range d.TopOwners {
			fmt.Fprintf(c.writer, "  %d. %s : %s (%d contrats)\n", i+1, o.Nom, fcfa(o.Revenue), o.LeaseCount)
		}
		fmt.Fprintln(c.writer)
	}

	fmt.Fprintf(c.writer, "%s\n", c.color(colorBold, "Revenus sur 6 mois :"))
	for _, m := range d.RevenueSeries {
		fmt.Fprintf(c.writer, "  %s : %s\n", m.Month, fcfa(m.Amount))
	}
}

// Units prints a unit listing.
func (c *Console) Units(units []domain.Unit) {
	tw := tabwriter.NewWriter(c.writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNUMÉRO\tADRESSE\tTYPE\tSURFACE\tPIÈCES\tSTATUT\tPROPRIÉTAIRE")
	for _, u := range units {
		status := string(u.Status)
		if u.Status == domain.UnitRented {
			status = c.color(colorYellow, status)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%.0f m²\t%d\t%s\t%s\n",
			u.ID, u.NumeroBien, u.Adresse, u.Type, u.Surface, u.NombrePieces, status, u.OwnerNom)
	}
	tw.Flush()
}

// Leases prints a lease listing.
func (c *Console) Leases(leases []domain.Lease) {
	tw := tabwriter.NewWriter(c.writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tLOCATAIRE\tADRESSE\tDÉBUT\tFIN\tLOYER\tSTATUT")
	for _, l := range leases {
		status := string(l.Status)
		if l.Archive.Bool() {
			status += " (archivé)"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			l.ID, l.TenantNom, l.UnitAdresse,
			l.DateDebut.Format("2006-01-02"), l.DateFin.Format("2006-01-02"),
			fcfa(l.MontantLoyer), status)
	}
	tw.Flush()
}

// Payments prints a payment listing.
func (c *Console) Payments(payments []domain.Payment) {
	tw := tabwriter.NewWriter(c.writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tLOCATAIRE\tADRESSE\tMONTANT\tMODE\tMOIS")
	for _, p := range payments {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			p.ID, p.DatePaiement.Format("2006-01-02"), p.TenantNom, p.UnitAdresse,
			fcfa(p.MontantPaye), p.ModePaiement, p.MoisConcerne.MonthKey())
	}
	tw.Flush()
}

// Reminders prints the overdue list with severity badges and the summary
// header.
func (c *Console) Reminders(reminders []domain.Reminder) {
	s := notify.Summarize(reminders)
	fmt.Fprintf(c.writer, "%d impayés pour %s (légers %d, modérés %d, importants %d)\n",
		s.Total, fcfa(s.TotalDue), s.Mild, s.Moderate, s.Severe)
	fmt.Fprintf(c.writer, "Rappels envoyés : %d dont %d non lus\n\n", s.Sent, s.Unread)

	tw := tabwriter.NewWriter(c.writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CONTRAT\tLOCATAIRE\tMONTANT DÛ\tRETARD\tSÉVÉRITÉ\tRAPPEL")
	for _, r := range reminders {
		sev := string(notify.Classify(r.JoursRetard))
		switch notify.Classify(r.JoursRetard) {
		case notify.SeveritySevere:
			sev = c.color(colorRed, sev)
		case notify.SeverityModerate:
			sev = c.color(colorYellow, sev)
		}
		state := "non envoyé"
		if r.RappelEnvoye.Bool() {
			state = "envoyé, non lu"
			if r.RappelLu.Bool() {
				state = "envoyé, lu"
			}
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d j\t%s\t%s\n",
			r.LeaseID, r.TenantNom, fcfa(r.MontantDu), r.JoursRetard, sev, state)
	}
	tw.Flush()
}

// Notices prints the tenant portal notification feed.
func (c *Console) Notices(notices []domain.TenantNotice) {
	for _, n := range notices {
		badge := "ℹ"
		switch n.Type {
		case domain.NoticeWarning:
			badge = c.color(colorYellow, "!")
		case domain.NoticeDanger:
			badge = c.color(colorRed, "!!")
		}
		fmt.Fprintf(c.writer, "%s [%s] %s\n", badge, n.ID, n.Message)
	}
}

// Credentials prints a one-time login identity prominently.
func (c *Console) Credentials(email, password, info string) {
	fmt.Fprintf(c.writer, "%s\n", c.color(colorBold, "Identifiants générés (affichés une seule fois) :"))
	fmt.Fprintf(c.writer, "  Email : %s\n  Mot de passe : %s\n", email, password)
	if info != "" {
		fmt.Fprintf(c.writer, "  %s\n", info)
	}
}
