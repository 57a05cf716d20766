// Package main provides the CLI entry point for the gestion-loyer client.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Sodamareme/gestion-loyer-cli/internal/api"
	"github.com/Sodamareme/gestion-loyer-cli/internal/config"
	"github.com/Sodamareme/gestion-loyer-cli/internal/domain"
	"github.com/Sodamareme/gestion-loyer-cli/internal/filter"
	"github.com/Sodamareme/gestion-loyer-cli/internal/logger"
	"github.com/Sodamareme/gestion-loyer-cli/internal/metrics"
	"github.com/Sodamareme/gestion-loyer-cli/internal/notify"
	"github.com/Sodamareme/gestion-loyer-cli/internal/render"
	"github.com/Sodamareme/gestion-loyer-cli/internal/report"
	"github.com/Sodamareme/gestion-loyer-cli/internal/sorting"
)

// Version information (populated at build time)
var (
	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
)

// Global flags
var (
	showVersion    bool
	noColor        bool
	token          string
	prometheusAddr string
)

func init() {
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&noColor, "no-color", false, "Disable ANSI colors in output")
	flag.StringVar(&token, "token", "", "Bearer token from a previous login (overrides credentials)")
	flag.StringVar(&prometheusAddr, "prometheus", "", "Prometheus metrics endpoint (e.g., :9090)")

	flag.Usage = printUsage
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `gestloyer - Rental Management CLI

USAGE:
    gestloyer [options] <command> [command options]

DESCRIPTION:
    A command line client for the gestion-loyer REST API: owners, tenants,
    units, leases, payments, overdue reminders and the tenant portal.

    Credentials and the API address come from gestloyer.yaml or from
    GESTLOYER_* environment variables (GESTLOYER_API_BASE_URL,
    GESTLOYER_AUTH_EMAIL, GESTLOYER_AUTH_PASSWORD).

COMMANDS:
    login                 Authenticate and print the bearer token
    verify                Check that the stored token is still accepted
    dashboard             Aggregated report: rents, arrears, rankings, trend
    proprietaires         List or create owners
    locataires            List or create tenants (prints one-time credentials)
    biens                 List units (filterable, sortable)
    contrats              List, archive or terminate leases
    paiements             List or record payments
    rappels               List overdue reminders, optionally send one
    quittance             Generate a rent receipt PDF for a payment
    avis                  Generate a due-notice PDF for a lease
    caution               Generate a deposit receipt PDF for a lease
    portail               Tenant portal: own leases, payments, notices

GLOBAL OPTIONS:
    -token <jwt>          Reuse a bearer token instead of logging in
    -prometheus <addr>    Enable Prometheus metrics endpoint (e.g., :9090)
    -no-color             Disable ANSI colors
    -version              Show version information
    -help, -h             Show this help message

EXAMPLES:
    # Aggregated dashboard for the current month
    gestloyer dashboard

    # Previous-month dashboard scoped to one owner
    gestloyer dashboard -periode mois_precedent -proprietaire 3

    # Available units over 60 m², largest first
    gestloyer biens -disponibles -surface-min 60 -tri surface

    # Record a cash payment against lease 7
    gestloyer paiements -creer -contrat 7 -montant 155000 -mode "Espèces"

    # Overdue reminders, severe only
    gestloyer rappels -severite important

    # Send a reminder, confirming a resend over an unread one
    gestloyer rappels -envoyer 42 -confirmer

    # Tenant portal: submit a payment with photos
    gestloyer portail -soumettre -contrat 7 -montant 155000 -index-eau 142.5 \
        -photo-eau compteur.jpg -photo-paiement recu.jpg
`)
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Printf("gestloyer %s (built %s, commit %s)\n", version, buildTime, gitCommit)
		os.Exit(0)
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a command is required")
		fmt.Fprintln(os.Stderr, "")
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	defer func() { _ = log.Sync() }()

	app, err := newApp(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer app.close()

	ctx := context.Background()
	if err := app.run(ctx, flag.Arg(0), flag.Args()[1:]); err != nil {
		if errors.Is(err, api.ErrSessionExpired) {
			fmt.Fprintln(os.Stderr, "Session expirée. Reconnectez-vous avec: gestloyer login")
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

type app struct {
	cfg      *config.Config
	log      *zap.Logger
	client   *api.Client
	console  *render.Console
	exporter *metrics.Exporter
}

func newApp(cfg *config.Config, log *zap.Logger) (*app, error) {
	a := &app{
		cfg:     cfg,
		log:     log,
		console: render.NewConsole(os.Stdout, !noColor),
	}

	opts := []api.Option{api.WithLogger(log)}
	addr := prometheusAddr
	if addr == "" && cfg.Metrics.Enabled {
		addr = cfg.Metrics.Addr
	}
	if addr != "" {
		a.exporter = metrics.NewExporter()
		if err := a.exporter.Start(addr); err != nil {
			return nil, err
		}
		log.Info("metrics endpoint started", zap.String("addr", a.exporter.Addr()))
		opts = append(opts, api.WithExporter(a.exporter))
	}

	client, err := api.NewClient(cfg.API, opts...)
	if err != nil {
		return nil, err
	}
	a.client = client

	if token != "" {
		client.Session().SetToken(token)
	}
	return a, nil
}

func (a *app) close() {
	if a.exporter != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = a.exporter.Stop(ctx)
	}
}

// login authenticates with the configured credentials unless a token was
// supplied on the command line.
func (a *app) login(ctx context.Context) error {
	if a.client.Session().Active() {
		return nil
	}
	if a.cfg.Auth.Email == "" || a.cfg.Auth.Password == "" {
		return fmt.Errorf("identifiants manquants: renseignez GESTLOYER_AUTH_EMAIL et GESTLOYER_AUTH_PASSWORD")
	}
	user, err := a.client.Session().Login(ctx, a.cfg.Auth.Email, a.cfg.Auth.Password)
	if err != nil {
		return err
	}
	a.log.Info("connecté", zap.String("email", user.Email), zap.String("role", user.Role))
	return nil
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return a.cmdLogin(ctx)
	case "verify":
		return a.cmdVerify(ctx)
	case "dashboard":
		return a.cmdDashboard(ctx, args)
	case "proprietaires":
		return a.cmdOwners(ctx, args)
	case "locataires":
		return a.cmdTenants(ctx, args)
	case "biens":
		return a.cmdUnits(ctx, args)
	case "contrats":
		return a.cmdLeases(ctx, args)
	case "paiements":
		return a.cmdPayments(ctx, args)
	case "rappels":
		return a.cmdReminders(ctx, args)
	case "quittance":
		return a.cmdReceipt(ctx, args)
	case "avis":
		return a.cmdDueNotice(ctx, args)
	case "caution":
		return a.cmdDepositReceipt(ctx, args)
	case "portail":
		return a.cmdPortal(ctx, args)
	default:
		return fmt.Errorf("commande inconnue %q (voir gestloyer -help)", command)
	}
}

func (a *app) cmdLogin(ctx context.Context) error {
	a.client.Session().Logout()
	if err := a.login(ctx); err != nil {
		return err
	}
	fmt.Println(a.client.Session().Token())
	return nil
}

func (a *app) cmdVerify(ctx context.Context) error {
	if err := a.login(ctx); err != nil {
		return err
	}
	user, err := a.client.Session().Verify(ctx)
	if err != nil {
		return err
	}
	claims, err := a.client.Session().Claims()
	if err != nil {
		return err
	}
	fmt.Printf("Connecté en tant que %s (%s), expiration du jeton: %s\n",
		user.Email, claims.Role, claims.ExpiresAt.Format(time.RFC3339))
	return nil
}

func (a *app) cmdDashboard(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	periode := fs.String("periode", string(report.PeriodCurrentMonth), "Reporting period: mois, mois_precedent, trimestre, annee")
	from := fs.String("du", "", "Custom period start month (YYYY-MM)")
	to := fs.String("au", "", "Custom period end month (YYYY-MM)")
	ownerID := fs.Int64("proprietaire", 0, "Scope to one owner id")
	unitType := fs.String("type", "", "Scope to one unit type")
	unitStatus := fs.String("statut", "", "Scope to one unit status (disponible, loue)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	period := report.Period{Kind: report.PeriodKind(*periode)}
	if *from != "" || *to != "" {
		period.Kind = report.PeriodCustom
		var err error
		if period.From, err = parseMonth(*from); err != nil {
			return err
		}
		if period.To, err = parseMonth(*to); err != nil {
			return err
		}
	}

	if err := a.login(ctx); err != nil {
		return err
	}
	snap, err := a.client.LoadSnapshot(ctx)
	if err != nil {
		return err
	}

	scope := report.Scope{
		OwnerID:    *ownerID,
		UnitType:   domain.UnitType(*unitType),
		UnitStatus: domain.UnitStatus(*unitStatus),
	}
	a.console.Dashboard(report.Compute(time.Now(), snap, period, scope))
	return nil
}

func (a *app) cmdOwners(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("proprietaires", flag.ContinueOnError)
	creer := fs.Bool("creer", false, "Create an owner")
	nom := fs.String("nom", "", "Owner name")
	telephone := fs.String("telephone", "", "Owner phone")
	email := fs.String("email", "", "Owner email")
	adresse := fs.String("adresse", "", "Owner address")
	recherche := fs.String("recherche", "", "Free-text search on name or phone")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.login(ctx); err != nil {
		return err
	}
	if *creer {
		resp, err := a.client.Owners().Create(ctx, domain.OwnerDraft{
			Nom: *nom, Telephone: *telephone, Email: *email, Adresse: *adresse,
		})
		if err != nil {
			return err
		}
		fmt.Printf("%s (id %d)\n", resp.Message, resp.ID)
		return nil
	}

	owners, err := a.client.Owners().List(ctx)
	if err != nil {
		return err
	}
	owners = filter.OwnerCriteria{Search: *recherche}.Apply(owners)
	for _, o := range owners {
		fmt.Printf("%d\t%s\t%s\t%s\n", o.ID, o.Nom, o.Telephone, o.Adresse)
	}
	return nil
}

func (a *app) cmdTenants(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("locataires", flag.ContinueOnError)
	creer := fs.Bool("creer", false, "Create a tenant")
	nom := fs.String("nom", "", "Tenant name")
	telephone := fs.String("telephone", "", "Tenant phone")
	email := fs.String("email", "", "Tenant email")
	kind := fs.String("type", string(domain.TenantIndividual), "Tenant kind: particulier or entreprise")
	recherche := fs.String("recherche", "", "Free-text search on name, phone or email")
	filtreKind := fs.String("filtre-type", "", "Filter listing by tenant kind")
	resetPassword := fs.Int64("reset-password", 0, "Reset the portal password of the given tenant id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.login(ctx); err != nil {
		return err
	}
	if *resetPassword != 0 {
		resp, err := a.client.Tenants().ResetPassword(ctx, *resetPassword)
		if err != nil {
			return err
		}
		fmt.Println(resp.Message)
		a.console.Credentials("", resp.NewPassword, resp.Info)
		return nil
	}
	if *creer {
		resp, err := a.client.Tenants().Create(ctx, domain.TenantDraft{
			Nom: *nom, Telephone: *telephone, Email: *email, Kind: domain.TenantKind(*kind),
		})
		if err != nil {
			return err
		}
		fmt.Printf("%s (id %d)\n", resp.Message, resp.ID)
		if resp.Credentials != nil {
			a.console.Credentials(resp.Credentials.Email, resp.Credentials.Password, resp.Credentials.Info)
		}
		return nil
	}

	tenants, err := a.client.Tenants().List(ctx)
	if err != nil {
		return err
	}
	tenants = filter.TenantCriteria{Search: *recherche, Kind: domain.TenantKind(*filtreKind)}.Apply(tenants)
	for _, l := range tenants {
		fmt.Printf("%d\t%s\t%s\t%s\n", l.ID, l.Nom, l.Telephone, l.Kind)
	}
	return nil
}

func (a *app) cmdUnits(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("biens", flag.ContinueOnError)
	search := fs.String("recherche", "", "Free-text search (address, number, owner)")
	status := fs.String("statut", "", "Filter by status (disponible, loue)")
	unitType := fs.String("type", "", "Filter by unit type")
	ownerID := fs.Int64("proprietaire", 0, "Filter by owner id")
	surfaceMin := fs.Float64("surface-min", 0, "Minimum surface")
	surfaceMax := fs.Float64("surface-max", 0, "Maximum surface")
	available := fs.Bool("disponibles", false, "Server-side: only available units")
	tri := fs.String("tri", "", "Sort field: adresse, surface, pieces, recent")
	desc := fs.Bool("desc", false, "Force descending order")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.login(ctx); err != nil {
		return err
	}
	var units []domain.Unit
	var err error
	if *available {
		units, err = a.client.Units().ListAvailable(ctx)
	} else {
		units, err = a.client.Units().List(ctx)
	}
	if err != nil {
		return err
	}

	criteria := filter.UnitCriteria{
		Search:  *search,
		Status:  domain.UnitStatus(*status),
		Type:    domain.UnitType(*unitType),
		OwnerID: *ownerID,
	}
	if *surfaceMin > 0 {
		criteria.MinSurface = surfaceMin
	}
	if *surfaceMax > 0 {
		criteria.MaxSurface = surfaceMax
	}
	units = criteria.Apply(units)
	units = sortListing(sorting.UnitFields(), units, *tri, *desc)
	a.console.Units(units)
	return nil
}

func (a *app) cmdLeases(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("contrats", flag.ContinueOnError)
	search := fs.String("recherche", "", "Free-text search (tenant, address, owner)")
	status := fs.String("statut", "", "Filter by status (actif, termine, resilie)")
	archives := fs.Bool("archives", false, "Only archived leases")
	actifs := fs.Bool("actifs", false, "Server-side: only active leases")
	tenantID := fs.Int64("locataire", 0, "Filter by tenant id")
	unitID := fs.Int64("bien", 0, "Filter by unit id")
	archiver := fs.Int64("archiver", 0, "Archive the given lease id and exit")
	desarchiver := fs.Int64("desarchiver", 0, "Unarchive the given lease id and exit")
	resilier := fs.Int64("resilier", 0, "Terminate the given lease id and exit")
	tri := fs.String("tri", "", "Sort field: date_debut, loyer, locataire")
	desc := fs.Bool("desc", false, "Force descending order")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.login(ctx); err != nil {
		return err
	}

	if *resilier != 0 {
		// Status-only update; the other lease fields stay untouched.
		resp, err := a.client.Leases().Update(ctx, *resilier, domain.LeaseUpdate{Status: domain.LeaseTerminated})
		if err != nil {
			return err
		}
		fmt.Println(resp.Message)
		return nil
	}
	if *archiver != 0 {
		resp, err := a.client.Leases().Archive(ctx, *archiver)
		if err != nil {
			return err
		}
		fmt.Println(resp.Message)
		return nil
	}
	if *desarchiver != 0 {
		resp, err := a.client.Leases().Unarchive(ctx, *desarchiver)
		if err != nil {
			return err
		}
		fmt.Println(resp.Message)
		return nil
	}

	var leases []domain.Lease
	var err error
	switch {
	case *archives:
		leases, err = a.client.Leases().ListArchived(ctx)
	case *actifs:
		leases, err = a.client.Leases().ListActive(ctx)
	default:
		leases, err = a.client.Leases().List(ctx, false)
	}
	if err != nil {
		return err
	}

	criteria := filter.LeaseCriteria{
		Search:   *search,
		Status:   domain.LeaseStatus(*status),
		TenantID: *tenantID,
		UnitID:   *unitID,
	}
	leases = criteria.Apply(leases)
	leases = sortListing(sorting.LeaseFields(), leases, *tri, *desc)
	a.console.Leases(leases)
	return nil
}

func (a *app) cmdPayments(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("paiements", flag.ContinueOnError)
	creer := fs.Bool("creer", false, "Record a payment")
	montant := fs.String("montant", "", "Amount paid (with -creer)")
	date := fs.String("date", "", "Payment date YYYY-MM-DD (defaults to today)")
	reference := fs.String("reference", "", "Payment reference (with -creer)")
	search := fs.String("recherche", "", "Free-text search (tenant, address, reference)")
	mode := fs.String("mode", "", "Payment method (filter, or value with -creer)")
	leaseID := fs.Int64("contrat", 0, "Lease id (filter, or target with -creer)")
	mois := fs.String("mois", "", "Covered month YYYY-MM (filter, or value with -creer)")
	annee := fs.Int("annee", 0, "Filter by covered year")
	pdf := fs.Bool("pdf", false, "Print the payment-history PDF address and exit")
	tri := fs.String("tri", "", "Sort field: date, montant, locataire")
	desc := fs.Bool("desc", false, "Force descending order")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *pdf {
		fmt.Println(a.client.Payments().HistoryPDFURL())
		return nil
	}

	if err := a.login(ctx); err != nil {
		return err
	}

	if *creer {
		draft, err := buildPaymentDraft(*leaseID, *montant, *date, *mode, *mois, *reference)
		if err != nil {
			return err
		}
		resp, err := a.client.Payments().Create(ctx, draft)
		if err != nil {
			return err
		}
		fmt.Printf("%s (paiement %d)\n", resp.Message, resp.ID)
		return nil
	}

	payments, err := a.client.Payments().List(ctx)
	if err != nil {
		return err
	}

	criteria := filter.PaymentCriteria{
		Search:   *search,
		Mode:     *mode,
		LeaseID:  *leaseID,
		MonthKey: *mois,
		Year:     *annee,
	}
	payments = criteria.Apply(payments)
	payments = sortListing(sorting.PaymentFields(), payments, *tri, *desc)
	a.console.Payments(payments)
	return nil
}

func (a *app) cmdReminders(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("rappels", flag.ContinueOnError)
	etat := fs.String("etat", "", "Filter by reminder state: non_envoye, envoye_non_lu, envoye_lu")
	severite := fs.String("severite", "", "Filter by severity: leger, modere, important")
	envoyer := fs.Int64("envoyer", 0, "Send a reminder for the given lease id")
	message := fs.String("message", "", "Custom reminder message (default template otherwise)")
	confirmer := fs.Bool("confirmer", false, "Confirm resending over a prior unread reminder")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.login(ctx); err != nil {
		return err
	}
	reminders, err := a.client.Payments().Reminders(ctx)
	if err != nil {
		return err
	}

	if *envoyer != 0 {
		for _, r := range reminders {
			if r.LeaseID != *envoyer {
				continue
			}
			req, err := notify.PrepareSend(r, *message, *confirmer)
			if errors.Is(err, notify.ErrConfirmationRequired) {
				return fmt.Errorf("un rappel non lu existe déjà pour %s: relancez avec -confirmer", r.TenantNom)
			}
			if err != nil {
				return err
			}
			resp, err := a.client.Payments().SendReminder(ctx, req)
			if err != nil {
				return err
			}
			fmt.Println(resp.Message)
			return nil
		}
		return fmt.Errorf("aucune échéance en retard pour le contrat %d", *envoyer)
	}

	criteria := notify.Criteria{
		State:    notify.ReminderState(*etat),
		Severity: notify.Severity(*severite),
	}
	a.console.Reminders(criteria.Apply(reminders))
	return nil
}

func (a *app) cmdReceipt(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("quittance", flag.ContinueOnError)
	paymentID := fs.Int64("paiement", 0, "Payment id (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *paymentID == 0 {
		return fmt.Errorf("-paiement est obligatoire")
	}

	if err := a.login(ctx); err != nil {
		return err
	}
	resp, err := a.client.Documents().GenerateReceipt(ctx, *paymentID)
	if err != nil {
		return err
	}
	printDocument(resp)
	return nil
}

func (a *app) cmdDueNotice(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("avis", flag.ContinueOnError)
	leaseID := fs.Int64("contrat", 0, "Lease id (required)")
	mois := fs.String("mois", "", "Covered month YYYY-MM (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *leaseID == 0 || *mois == "" {
		return fmt.Errorf("-contrat et -mois sont obligatoires")
	}
	month, err := parseMonth(*mois)
	if err != nil {
		return err
	}

	if err := a.login(ctx); err != nil {
		return err
	}
	resp, err := a.client.Documents().GenerateDueNotice(ctx, *leaseID, month)
	if err != nil {
		return err
	}
	printDocument(resp)
	return nil
}

func (a *app) cmdDepositReceipt(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("caution", flag.ContinueOnError)
	leaseID := fs.Int64("contrat", 0, "Lease id (required)")
	montant := fs.String("montant", "", "Deposit amount (defaults to the lease deposit, then 2x rent)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *leaseID == 0 {
		return fmt.Errorf("-contrat est obligatoire")
	}
	amount := decimal.Zero
	if *montant != "" {
		var err error
		if amount, err = decimal.NewFromString(*montant); err != nil {
			return fmt.Errorf("montant invalide %q", *montant)
		}
	}

	if err := a.login(ctx); err != nil {
		return err
	}
	leases, err := a.client.Leases().List(ctx, true)
	if err != nil {
		return err
	}
	for _, l := range leases {
		if l.ID != *leaseID {
			continue
		}
		resp, err := a.client.Documents().GenerateDepositReceipt(ctx, l, amount)
		if err != nil {
			return err
		}
		printDocument(resp)
		return nil
	}
	return fmt.Errorf("contrat %d introuvable", *leaseID)
}

func (a *app) cmdPortal(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("portail", flag.ContinueOnError)
	contrats := fs.Bool("contrats", false, "Show own leases")
	paiements := fs.Bool("paiements", false, "Show own payment history")
	notifications := fs.Bool("notifications", false, "Show the notification feed")
	lu := fs.Int64("marquer-lu", 0, "Mark the given reminder id as read")
	quittance := fs.Int64("quittance", 0, "Generate the receipt for one of my payments")
	soumettre := fs.Bool("soumettre", false, "Submit a payment declaration")
	leaseID := fs.Int64("contrat", 0, "Lease id for the declaration")
	montant := fs.String("montant", "", "Amount paid")
	indexEau := fs.String("index-eau", "", "New water-meter reading")
	modePaiement := fs.String("mode", domain.PayMobileMoney, "Payment method")
	mois := fs.String("mois", "", "Covered month YYYY-MM (defaults to current)")
	photoEau := fs.String("photo-eau", "", "Water-meter photo file")
	photoPaiement := fs.String("photo-paiement", "", "Payment proof photo file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.login(ctx); err != nil {
		return err
	}
	portal := a.client.Portal()

	switch {
	case *contrats:
		leases, err := portal.MyLeases(ctx)
		if err != nil {
			return err
		}
		a.console.Leases(leases)
	case *paiements:
		payments, err := portal.MyPayments(ctx)
		if err != nil {
			return err
		}
		a.console.Payments(payments)
	case *lu != 0:
		notices, err := portal.MyNotices(ctx)
		if err != nil {
			return err
		}
		board := notify.NewBoard(notices, portal, a.log)
		board.Dismiss(ctx, fmt.Sprintf("rappel-%d", *lu))
		a.console.Notices(board.Visible())
	case *quittance != 0:
		resp, err := portal.GenerateReceipt(ctx, *quittance)
		if err != nil {
			return err
		}
		printDocument(resp)
	case *soumettre:
		decl, err := buildSelfReport(ctx, portal, *leaseID, *montant, *indexEau, *modePaiement, *mois, *photoEau, *photoPaiement)
		if err != nil {
			return err
		}
		resp, err := portal.SubmitPayment(ctx, decl)
		if err != nil {
			return err
		}
		fmt.Printf("%s (paiement %d)\n", resp.Message, resp.ID)
	case *notifications:
		fallthrough
	default:
		notices, err := portal.MyNotices(ctx)
		if err != nil {
			return err
		}
		a.console.Notices(notices)
	}
	return nil
}

// buildSelfReport assembles the multipart declaration, pre-filling the
// amount from the lease when omitted.
func buildSelfReport(ctx context.Context, portal *api.PortalService, leaseID int64, montant, indexEau, mode, mois, photoEau, photoPaiement string) (domain.SelfReport, error) {
	var r domain.SelfReport
	r.LeaseID = leaseID
	r.ModePaiement = mode

	if leaseID == 0 {
		lease, err := portal.MyLease(ctx)
		if err != nil {
			return r, err
		}
		r.LeaseID = lease.ID
		if montant == "" {
			r.MontantPaye = lease.TotalMonthly()
		}
	}
	if montant != "" {
		amount, err := decimal.NewFromString(montant)
		if err != nil {
			return r, fmt.Errorf("montant invalide %q", montant)
		}
		r.MontantPaye = amount
	}
	if indexEau != "" {
		idx, err := decimal.NewFromString(indexEau)
		if err != nil {
			return r, fmt.Errorf("index eau invalide %q", indexEau)
		}
		r.NouvelIndexEau = idx
		r.DateReleveEau = domain.DateOf(time.Now())
	}
	if mois == "" {
		r.MoisConcerne = domain.DateOf(time.Now())
	} else {
		month, err := parseMonth(mois)
		if err != nil {
			return r, err
		}
		r.MoisConcerne = month
	}

	var err error
	if r.PhotoEau, r.PhotoEauName, err = readAttachment(photoEau); err != nil {
		return r, err
	}
	if r.PhotoPaiement, r.PhotoPaiementName, err = readAttachment(photoPaiement); err != nil {
		return r, err
	}
	return r, nil
}

// buildPaymentDraft assembles an admin payment entry. Date defaults to
// today and the covered month to the current one.
func buildPaymentDraft(leaseID int64, montant, date, mode, mois, reference string) (domain.PaymentDraft, error) {
	draft := domain.PaymentDraft{
		LeaseID:      leaseID,
		ModePaiement: mode,
		Reference:    reference,
	}
	amount, err := decimal.NewFromString(montant)
	if err != nil {
		return draft, fmt.Errorf("montant invalide %q", montant)
	}
	draft.MontantPaye = amount

	if date == "" {
		draft.DatePaiement = domain.DateOf(time.Now())
	} else {
		t, err := time.Parse("2006-01-02", date)
		if err != nil {
			return draft, fmt.Errorf("date invalide %q (format YYYY-MM-DD)", date)
		}
		draft.DatePaiement = domain.DateOf(t)
	}

	if mois == "" {
		now := time.Now()
		draft.MoisConcerne = domain.NewDate(now.Year(), now.Month(), 1)
	} else {
		month, err := parseMonth(mois)
		if err != nil {
			return draft, err
		}
		draft.MoisConcerne = month
	}
	return draft, nil
}

func readAttachment(path string) ([]byte, string, error) {
	if path == "" {
		return nil, "", nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("lecture de %s: %w", path, err)
	}
	return content, path, nil
}

func sortListing[T any](fields sorting.Set[T], items []T, tri string, desc bool) []T {
	if tri == "" {
		return items
	}
	state := fields.Toggle(sorting.State{}, tri)
	if desc {
		state.Direction = sorting.Descending
	}
	return fields.Sort(items, state.Field, state.Direction)
}

func parseMonth(s string) (domain.Date, error) {
	if s == "" {
		return domain.Date{}, fmt.Errorf("mois manquant (format YYYY-MM)")
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return domain.Date{}, fmt.Errorf("mois invalide %q (format YYYY-MM)", s)
	}
	return domain.DateOf(t), nil
}

func printDocument(resp api.DocumentResponse) {
	fmt.Println(resp.Message)
	fmt.Printf("Document: %s\n", resp.URL)
	if resp.NumeroQuittance != "" {
		fmt.Printf("Numéro de quittance: %s\n", resp.NumeroQuittance)
	}
}
