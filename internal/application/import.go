package application

import (
	"context"
	"fmt"

	"github.com/Spaaern/pubcrawl-cli/internal/adapters/codec"
	"github.com/Spaaern/pubcrawl-cli/internal/domain"
)

// The import engine merges externally-supplied payloads into the live
// hub. Decode-then-validate-then-mutate ordering guarantees that a
// failed import leaves the hub untouched; a version mismatch is only
// a warning and the import proceeds best-effort.

// ImportPayload merges a file payload into the hub. Hub payloads
// append every incoming list under a fresh id and return the view to
// hub level; list payloads append the single list and make it active.
func (s *Session) ImportPayload(ctx context.Context, data []byte) error {
	payload, err := codec.DecodePayload(data)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	return s.merge(ctx, payload)
}

// ImportShareLink decodes a share link (full URL, fragment, or bare
// token) and merges its payload.
func (s *Session) ImportShareLink(ctx context.Context, link string) error {
	payload, err := codec.DecodeShareToken(link)
	if err != nil {
		return fmt.Errorf("import share link: %w", err)
	}

	return s.merge(ctx, payload)
}

func (s *Session) merge(ctx context.Context, payload codec.Payload) error {
	if payload.Version != domain.SchemaVersion {
		s.logger.Warn("version mismatch, attempting import anyway",
			"payload", payload.Version, "current", domain.SchemaVersion)
	}

	// Incoming lists get fresh ids so they can never collide with
	// existing ones; nothing already in the hub is touched.
	switch payload.Type {
	case codec.PayloadTypeHub:
		for _, list := range payload.Lists {
			list.ID = domain.NewListID()
			s.hub.Lists = append(s.hub.Lists, list)
		}
		s.hub.ActiveListID = ""
	case codec.PayloadTypeList:
		payload.List.ID = domain.NewListID()
		s.hub.Lists = append(s.hub.Lists, payload.List)
		s.hub.ActiveListID = payload.List.ID
	}

	s.hub.Normalize()

	if err := s.save(ctx); err != nil {
		return err
	}

	// Persisted collapse state is stale once content changes.
	if err := s.store.ClearUIState(ctx); err != nil {
		return err
	}

	return nil
}

// ExportHub encodes every list as a type:"hub" payload.
func (s *Session) ExportHub() ([]byte, error) {
	return codec.EncodeHubPayload(s.hub)
}

// ExportList encodes one list as a type:"list" payload and suggests a
// file name for it.
func (s *Session) ExportList(id domain.ListID) ([]byte, string, error) {
	list := s.hub.FindList(id)
	if list == nil {
		return nil, "", domain.ErrListNotFound
	}

	data, err := codec.EncodeListPayload(list)
	if err != nil {
		return nil, "", err
	}

	name := list.Name
	if name == "" {
		name = "list"
	}

	return data, name + ".json", nil
}

// ShareLink builds a share URL for the active list, or "" when no
// list is active.
func (s *Session) ShareLink(baseURL string) (string, error) {
	list := s.hub.ActiveList()
	if list == nil {
		return "", nil
	}

	token, err := codec.EncodeShareToken(list)
	if err != nil {
		return "", err
	}

	return baseURL + codec.FragmentMarker + token, nil
}
