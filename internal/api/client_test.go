package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sodamareme/gestion-loyer-cli/internal/config"
	"github.com/Sodamareme/gestion-loyer-cli/internal/domain"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(config.APIConfig{BaseURL: srv.URL + "/api", Timeout: 5 * time.Second})
	require.NoError(t, err)
	return c
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestLoginStoresTokenAndSendsBearer(t *testing.T) {
	var seenAuth atomic.Value
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "admin@example.sn", req.Email)
		writeJSON(t, w, 200, loginResponse{
			Token: "jeton-test",
			User:  User{ID: 1, Email: req.Email, Role: "admin"},
		})
	})
	mux.HandleFunc("GET /api/proprietaires", func(w http.ResponseWriter, r *http.Request) {
		seenAuth.Store(r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		writeJSON(t, w, 200, []domain.Owner{{ID: 1, Nom: gofakeit.Name()}})
	})

	c := newTestClient(t, mux)
	user, err := c.Session().Login(context.Background(), "admin@example.sn", "secret")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Role)
	assert.True(t, c.Session().Active())

	owners, err := c.Owners().List(context.Background())
	require.NoError(t, err)
	assert.Len(t, owners, 1)
	assert.Equal(t, "Bearer jeton-test", seenAuth.Load())
}

func TestUnauthorizedClearsSession(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{"error": "token invalide"})
	}))
	c.Session().SetToken("perime")

	_, err := c.Units().List(context.Background())
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.False(t, c.Session().Active(), "401 must discard the token")
}

func TestErrorEnvelopeSurfacedVerbatim(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, map[string]string{"error": "numéro déjà utilisé"})
	}))

	_, err := c.Owners().Create(context.Background(), domain.OwnerDraft{Nom: "Sarr", Telephone: "770000000"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "numéro déjà utilisé", apiErr.Message)
}

func TestErrorWithoutEnvelopeFallsBack(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := c.Payments().List(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Erreur", apiErr.Message)
}

func TestValidationBlocksBeforeNetwork(t *testing.T) {
	called := false
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	_, err := c.Units().Create(context.Background(), domain.UnitDraft{Adresse: "Dakar"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.False(t, called, "invalid draft must not reach the server")
}

func TestDeleteRentedUnitRefusedLocally(t *testing.T) {
	called := false
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	_, err := c.Units().Delete(context.Background(), domain.Unit{ID: 3, Status: domain.UnitRented})
	assert.ErrorIs(t, err, ErrUnitRented)
	assert.False(t, called)
}

func TestLeaseListNormalizesAliases(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, 200, []map[string]any{
			{"contrat_id": 42, "contrat_statut": "actif", "montant_loyer": 100000, "archive": 0},
		})
	}))

	leases, err := c.Leases().ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, leases, 1)
	assert.Equal(t, int64(42), leases[0].ID)
	assert.Equal(t, domain.LeaseActive, leases[0].Status)
	assert.True(t, leases[0].IsActive())
}

func TestLeaseCreateAppliesKindExclusivity(t *testing.T) {
	var got map[string]json.RawMessage
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/contrats", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(t, w, 201, MutationResponse{ID: 9, Message: "Contrat créé"})
	})
	c := newTestClient(t, mux)

	draft := domain.LeaseDraft{
		UnitID:          1,
		TenantID:        2,
		DateDebut:       domain.NewDate(2026, time.January, 1),
		DateFin:         domain.NewDate(2026, time.December, 31),
		MontantLoyer:    decimal.NewFromInt(150000),
		JourPaiement:    5,
		MontantInternet: decimal.NewFromInt(10000),
		TVA:             decimal.NewFromInt(27000),
		TenantKind:      domain.TenantBusiness,
	}
	resp, err := c.Leases().Create(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, int64(9), resp.ID)

	// Business tenant: the internet charge is dropped, VAT kept.
	// Amounts travel as plain numbers.
	assert.JSONEq(t, `0`, string(got["montant_internet"]))
	assert.JSONEq(t, `27000`, string(got["tva"]))
}

func TestLeaseStatusOnlyUpdateOmitsAmounts(t *testing.T) {
	var got map[string]json.RawMessage
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/contrats/42", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(t, w, 200, MutationResponse{ID: 42, Message: "Contrat mis à jour"})
	})
	c := newTestClient(t, mux)

	_, err := c.Leases().Update(context.Background(), 42, domain.LeaseUpdate{Status: domain.LeaseTerminated})
	require.NoError(t, err)

	// Partial update: untouched amounts must stay off the wire so the
	// server keeps their stored values.
	assert.JSONEq(t, `"resilie"`, string(got["statut"]))
	assert.Len(t, got, 1)
}

func TestLeaseUpdateSendsOnlySetAmounts(t *testing.T) {
	var got map[string]json.RawMessage
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/contrats/7", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(t, w, 200, MutationResponse{ID: 7, Message: "Contrat mis à jour"})
	})
	c := newTestClient(t, mux)

	loyer := decimal.NewFromInt(175000)
	fin := domain.NewDate(2027, time.June, 30)
	_, err := c.Leases().Update(context.Background(), 7, domain.LeaseUpdate{
		MontantLoyer: &loyer,
		DateFin:      &fin,
	})
	require.NoError(t, err)

	assert.JSONEq(t, `175000`, string(got["montant_loyer"]))
	assert.JSONEq(t, `"2027-06-30"`, string(got["date_fin"]))
	assert.Len(t, got, 2)
}

func TestPaymentCreateSendsPayload(t *testing.T) {
	var got map[string]json.RawMessage
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/paiements", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(t, w, 201, MutationResponse{ID: 12, Message: "Paiement enregistré"})
	})
	c := newTestClient(t, mux)

	resp, err := c.Payments().Create(context.Background(), domain.PaymentDraft{
		LeaseID:      7,
		DatePaiement: domain.NewDate(2026, time.August, 28),
		MontantPaye:  decimal.NewFromInt(155000),
		ModePaiement: domain.PayMobileMoney,
		MoisConcerne: domain.NewDate(2026, time.August, 1),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(12), resp.ID)

	assert.JSONEq(t, `7`, string(got["contrat_id"]))
	assert.JSONEq(t, `155000`, string(got["montant_paye"]))
	assert.JSONEq(t, `"2026-08-01"`, string(got["mois_concerne"]))
}

func TestPaymentUpdateValidatesAndPutsToPayment(t *testing.T) {
	var gotPath string
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/paiements/{id}", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		writeJSON(t, w, 200, MutationResponse{ID: 4, Message: "Paiement mis à jour"})
	})
	c := newTestClient(t, mux)

	draft := domain.PaymentDraft{
		LeaseID:      7,
		DatePaiement: domain.NewDate(2026, time.August, 28),
		MontantPaye:  decimal.NewFromInt(150000),
		ModePaiement: domain.PayCash,
		MoisConcerne: domain.NewDate(2026, time.August, 1),
	}
	_, err := c.Payments().Update(context.Background(), 4, draft)
	require.NoError(t, err)
	assert.Equal(t, "/api/paiements/4", gotPath)

	// An invalid correction never reaches the server.
	gotPath = ""
	_, err = c.Payments().Update(context.Background(), 4, domain.PaymentDraft{LeaseID: 7})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, gotPath)
}

func TestOwnerUpdatePutsToOwner(t *testing.T) {
	var gotPath string
	var got domain.OwnerDraft
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/proprietaires/{id}", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(t, w, 200, MutationResponse{ID: 3, Message: "Propriétaire mis à jour"})
	})
	c := newTestClient(t, mux)

	_, err := c.Owners().Update(context.Background(), 3, domain.OwnerDraft{
		Nom:       "Ndiaye",
		Telephone: "771234567",
		Adresse:   "Ouakam, Dakar",
	})
	require.NoError(t, err)
	assert.Equal(t, "/api/proprietaires/3", gotPath)
	assert.Equal(t, "Ndiaye", got.Nom)
}

func TestDepositReceiptDefaultsToTwoMonths(t *testing.T) {
	var got map[string]decimal.Decimal
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/pdf/quittance-caution/5", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(t, w, 200, DocumentResponse{Message: "ok", URL: "/docs/caution-5.pdf"})
	})
	c := newTestClient(t, mux)

	lease := domain.Lease{ID: 5, MontantLoyer: decimal.NewFromInt(150000)}
	resp, err := c.Documents().GenerateDepositReceipt(context.Background(), lease, decimal.Zero)
	require.NoError(t, err)
	assert.Equal(t, "/docs/caution-5.pdf", resp.URL)
	assert.True(t, got["montant_caution"].Equal(decimal.NewFromInt(300000)))
}

func TestMetricPathStripsIDs(t *testing.T) {
	assert.Equal(t, "/contrats/:id/archiver", metricPath("/contrats/42/archiver"))
	assert.Equal(t, "/contrats", metricPath("/contrats?archives=true"))
	assert.Equal(t, "/biens/disponibles", metricPath("/biens/disponibles"))
}
