// Package application owns the hub aggregate and every use case that
// mutates it: session lifecycle, the mutation commands, queries, and
// the migration/import engine. Every command persists the whole hub
// before returning (write-through, no batching).
package application

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/Spaaern/pubcrawl-cli/internal/domain"
	"github.com/Spaaern/pubcrawl-cli/internal/ports"
	"github.com/charmbracelet/log"
)

const (
	// RetentionWindow bounds how long archived lists are kept before
	// cleanup removes them for good.
	RetentionWindow = 30 * 24 * time.Hour

	migratedListName = "My first list"
)

// Session owns the in-memory hub for the lifetime of one process:
// constructed from persistence at startup, saved after every mutation.
type Session struct {
	hub    *domain.Hub
	store  ports.HubStore
	clock  ports.Clock
	logger *log.Logger
}

// Open loads the hub, migrates legacy single-list storage when the hub
// is empty, prunes expired archives, and normalizes. The pruning runs
// on every open, not only during legacy migration as the web app did.
func Open(ctx context.Context, store ports.HubStore, clock ports.Clock, logger *log.Logger) (*Session, error) {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	hub, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load hub: %w", err)
	}

	s := &Session{hub: hub, store: store, clock: clock, logger: logger}

	dirty := false
	if len(hub.Lists) == 0 {
		migrated, err := s.migrateLegacy(ctx)
		if err != nil {
			return nil, err
		}
		dirty = dirty || migrated
	}

	if pruned := hub.PruneExpiredArchives(clock.Now(), RetentionWindow); pruned > 0 {
		s.logger.Info("pruned expired archived lists", "count", pruned)
		dirty = true
	}

	hub.Normalize()

	if dirty {
		if err := s.save(ctx); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// migrateLegacy wraps pre-hub flat storage into a new list and deletes
// the legacy keys. Unreadable legacy data is skipped with a warning;
// the hub simply starts empty.
func (s *Session) migrateLegacy(ctx context.Context) (bool, error) {
	doc, found, err := s.store.LoadLegacy(ctx)
	if err != nil {
		s.logger.Warn("skipping unreadable legacy data", "err", err)
		return false, nil
	}
	if !found || len(doc.Checkpoints) == 0 {
		return false, nil
	}

	now := s.clock.Now()
	list := domain.NewList(migratedListName, now)
	list.Participants = doc.Participants
	list.Checkpoints = doc.Checkpoints

	s.hub.Lists = append(s.hub.Lists, list)
	s.hub.ActiveListID = list.ID

	if err := s.store.DeleteLegacy(ctx); err != nil {
		return false, fmt.Errorf("delete legacy keys: %w", err)
	}

	s.logger.Info("migrated legacy single-list storage",
		"list", list.Name, "checkpoints", len(list.Checkpoints))

	return true, nil
}

func (s *Session) save(ctx context.Context) error {
	if err := s.store.Save(ctx, s.hub); err != nil {
		return fmt.Errorf("save hub: %w", err)
	}

	return nil
}

func (s *Session) touch(l *domain.List) {
	l.UpdatedAt = s.clock.Now()
}
