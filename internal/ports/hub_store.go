package ports

import (
	"context"

	"github.com/Spaaern/pubcrawl-cli/internal/domain"
)

// HubStore is whole-document persistence for the hub, plus the two
// legacy single-list keys (read once for migration, then deleted) and
// the persisted UI-collapse state (cleared after imports).
type HubStore interface {
	Load(ctx context.Context) (*domain.Hub, error)
	Save(ctx context.Context, hub *domain.Hub) error

	LoadLegacy(ctx context.Context) (LegacyDocument, bool, error)
	DeleteLegacy(ctx context.Context) error

	ClearUIState(ctx context.Context) error
}

// LegacyDocument is the pre-hub storage format: a flat participant
// list and a flat checkpoint list with no hub wrapper.
type LegacyDocument struct {
	Participants []string
	Checkpoints  []*domain.Checkpoint
}
