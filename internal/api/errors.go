package api

import (
	"errors"
	"fmt"
)

// ErrSessionExpired is returned on any 401 response. The client clears
// the session before returning it; callers must send the user back to
// the login step.
var ErrSessionExpired = errors.New("api: session expirée")

// ErrNotAuthenticated is returned when a call requiring a token is made
// without one.
var ErrNotAuthenticated = errors.New("api: non authentifié")

// ErrUnitRented is returned by the delete guard for a rented unit; the
// call never leaves the machine.
var ErrUnitRented = errors.New("api: impossible de supprimer un bien loué")

// defaultMessage is surfaced when a non-2xx response carries no usable
// error envelope.
const defaultMessage = "Erreur"

// APIError is a non-2xx response with a decoded error envelope. Message
// carries the server's error field verbatim when present.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (HTTP %d)", e.Message, e.Status)
}

// errorEnvelope is the server's error payload.
type errorEnvelope struct {
	Error string `json:"error"`
}

// MutationResponse is the success envelope returned by create, update
// and delete calls. ID is zero for responses carrying only a message.
type MutationResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// DocumentResponse is the envelope returned by PDF generation calls.
// The caller's only responsibility is to open URL; the document itself
// is never parsed.
type DocumentResponse struct {
	Message         string `json:"message"`
	URL             string `json:"url"`
	NumeroQuittance string `json:"numeroQuittance,omitempty"`
}
