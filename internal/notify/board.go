package notify

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/Sodamareme/gestion-loyer-cli/internal/domain"
)

// ErrConfirmationRequired is returned by PrepareSend when a prior
// reminder is still unread and the caller has not confirmed the resend.
var ErrConfirmationRequired = errors.New("notify: rappel précédent non lu, confirmation requise")

// Marker marks a server-tracked reminder as read. The API client's
// tenant portal service satisfies it.
type Marker interface {
	MarkReminderRead(ctx context.Context, rappelID int64) error
}

// Board holds the tenant portal notices and a local dismissed set.
// Dismissal is optimistic: the notice disappears immediately, and when
// it maps to a server-tracked reminder a mark-read call goes out in the
// same breath. That call is best effort; its failure is logged and never
// resurfaces the notice. This is the one place an error is deliberately
// swallowed.
type Board struct {
	notices   []domain.TenantNotice
	dismissed map[string]struct{}
	marker    Marker
	log       *zap.Logger
}

// NewBoard builds a board over one fetch round of notices. marker may be
// nil for boards that only render.
func NewBoard(notices []domain.TenantNotice, marker Marker, log *zap.Logger) *Board {
	if log == nil {
		log = zap.NewNop()
	}
	return &Board{
		notices:   notices,
		dismissed: make(map[string]struct{}),
		marker:    marker,
		log:       log,
	}
}

// Visible returns the notices not yet dismissed, in server order.
func (b *Board) Visible() []domain.TenantNotice {
	out := make([]domain.TenantNotice, 0, len(b.notices))
	for _, n := range b.notices {
		if _, gone := b.dismissed[n.ID]; gone {
			continue
		}
		out = append(out, n)
	}
	return out
}

// Dismiss removes the notice locally and, for reminder-backed notices,
// marks the reminder read upstream.
func (b *Board) Dismiss(ctx context.Context, id string) {
	var notice *domain.TenantNotice
	for i := range b.notices {
		if b.notices[i].ID == id {
			notice = &b.notices[i]
			break
		}
	}
	if notice == nil {
		return
	}
	b.dismissed[id] = struct{}{}

	if b.marker == nil || notice.RappelID == 0 {
		return
	}
	if err := b.marker.MarkReminderRead(ctx, notice.RappelID); err != nil {
		b.log.Warn("marquage du rappel comme lu échoué",
			zap.Int64("rappel_id", notice.RappelID),
			zap.Error(err))
	}
}
