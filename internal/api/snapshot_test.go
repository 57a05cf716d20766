package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sodamareme/gestion-loyer-cli/internal/domain"
)

func TestLoadSnapshotFetchesAllCollections(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/proprietaires", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, 200, []domain.Owner{{ID: 1, Nom: "Diop"}})
	})
	mux.HandleFunc("GET /api/locataires", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, 200, []domain.Tenant{{ID: 1, Nom: "Ndiaye"}})
	})
	mux.HandleFunc("GET /api/biens", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, 200, []domain.Unit{{ID: 1, Adresse: "Sacré-Cœur"}})
	})
	mux.HandleFunc("GET /api/contrats", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.URL.Query().Get("archives"))
		writeJSON(t, w, 200, []map[string]any{{"contrat_id": 7, "contrat_statut": "actif"}})
	})
	mux.HandleFunc("GET /api/paiements", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, 200, []domain.Payment{{ID: 1, LeaseID: 7}})
	})

	c := newTestClient(t, mux)
	snap, err := c.LoadSnapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Owners, 1)
	assert.Len(t, snap.Tenants, 1)
	assert.Len(t, snap.Units, 1)
	require.Len(t, snap.Leases, 1)
	assert.Equal(t, int64(7), snap.Leases[0].ID, "leases arrive normalized")
	assert.Len(t, snap.Payments, 1)
}

func TestLoadSnapshotFailFast(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, 200, []any{})
	})
	mux.HandleFunc("GET /api/paiements", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusInternalServerError, map[string]string{"error": "base indisponible"})
	})

	c := newTestClient(t, mux)
	snap, err := c.LoadSnapshot(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "base indisponible", apiErr.Message)
	// All or nothing: no partial collections survive a failed round.
	assert.Equal(t, domain.Snapshot{}, snap)
}
