package api

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sodamareme/gestion-loyer-cli/internal/domain"
)

func TestSubmitPaymentMultipart(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/locataire/soumettre-paiement", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "7", r.FormValue("contrat_id"))
		assert.Equal(t, "155000", r.FormValue("montant_paye"))
		assert.Equal(t, domain.PayMobileMoney, r.FormValue("mode_paiement"))
		assert.Equal(t, "2026-08-01", r.FormValue("mois_concerne"))
		assert.Equal(t, "142.5", r.FormValue("nouvel_index_eau"))

		file, header, err := r.FormFile("photo_eau")
		require.NoError(t, err)
		defer file.Close()
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "compteur.jpg", header.Filename)
		assert.Equal(t, []byte{0xFF, 0xD8}, content)

		_, _, err = r.FormFile("photo_paiement")
		assert.Error(t, err, "absent attachment must not be sent")

		writeJSON(t, w, 201, SubmitPaymentResponse{
			ID:       31,
			Message:  "Paiement soumis",
			PhotoEau: "uploads/compteur.jpg",
		})
	})
	c := newTestClient(t, mux)

	resp, err := c.Portal().SubmitPayment(context.Background(), domain.SelfReport{
		LeaseID:        7,
		NouvelIndexEau: decimal.RequireFromString("142.5"),
		MontantPaye:    decimal.NewFromInt(155000),
		ModePaiement:   domain.PayMobileMoney,
		MoisConcerne:   domain.NewDate(2026, time.August, 1),
		PhotoEau:       []byte{0xFF, 0xD8},
		PhotoEauName:   "compteur.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(31), resp.ID)
	assert.Equal(t, "uploads/compteur.jpg", resp.PhotoEau)
}

func TestSubmitPaymentValidatesFirst(t *testing.T) {
	called := false
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	_, err := c.Portal().SubmitPayment(context.Background(), domain.SelfReport{LeaseID: 7})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.False(t, called)
}

func TestMarkReminderRead(t *testing.T) {
	var gotPath string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/locataire/marquer-rappel-lu/{id}", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		writeJSON(t, w, 200, MutationResponse{Message: "Rappel marqué comme lu"})
	})
	c := newTestClient(t, mux)

	require.NoError(t, c.Portal().MarkReminderRead(context.Background(), 9))
	assert.Equal(t, "/api/locataire/marquer-rappel-lu/9", gotPath)
}

func TestMyNoticesDecodesReminderBackedNotice(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, 200, []map[string]any{{
			"id":           "rappel-9",
			"type":         "danger",
			"message":      "Loyer en retard",
			"montant":      150000,
			"joursRetard":  18,
			"moisConcerne": "2026-07",
			"rappelId":     9,
			"contrat_id":   7,
		}})
	}))

	notices, err := c.Portal().MyNotices(context.Background())
	require.NoError(t, err)
	require.Len(t, notices, 1)
	assert.Equal(t, domain.NoticeDanger, notices[0].Type)
	assert.Equal(t, int64(9), notices[0].RappelID)
	assert.Equal(t, 18, notices[0].JoursRetard)
}
