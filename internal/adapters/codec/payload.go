// Package codec owns the JSON shapes shared by the persistence
// adapter and the import/export engine: the persisted hub document,
// the two export payload variants, the legacy single-list documents,
// and the share-link transport encoding.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Spaaern/pubcrawl-cli/internal/domain"
)

const (
	PayloadTypeHub  = "hub"
	PayloadTypeList = "list"
)

var (
	ErrInvalidPayload     = errors.New("invalid payload")
	ErrUnknownPayloadType = errors.New("unknown payload type")
)

// Payload is a decoded export payload: exactly one of Lists or List is
// populated, selected by Type.
type Payload struct {
	Version int
	Type    string
	Lists   []*domain.List
	List    *domain.List
}

type payloadRecord struct {
	Version int           `json:"version"`
	Type    string        `json:"type"`
	Lists   *[]listRecord `json:"lists,omitempty"`
	List    *listRecord   `json:"list,omitempty"`
}

func EncodeHubDocument(h *domain.Hub) ([]byte, error) {
	data, err := json.MarshalIndent(hubToRecord(h), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode hub document: %w", err)
	}

	return data, nil
}

func DecodeHubDocument(data []byte) (*domain.Hub, error) {
	var r hubRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode hub document: %w", err)
	}

	return hubFromRecord(r), nil
}

func EncodeHubPayload(h *domain.Hub) ([]byte, error) {
	lists := make([]listRecord, 0, len(h.Lists))
	for _, l := range h.Lists {
		lists = append(lists, listToRecord(l))
	}

	record := payloadRecord{
		Version: domain.SchemaVersion,
		Type:    PayloadTypeHub,
		Lists:   &lists,
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode hub payload: %w", err)
	}

	return data, nil
}

func EncodeListPayload(l *domain.List) ([]byte, error) {
	entry := listToRecord(l)
	record := payloadRecord{
		Version: domain.SchemaVersion,
		Type:    PayloadTypeList,
		List:    &entry,
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode list payload: %w", err)
	}

	return data, nil
}

// DecodePayload validates and decodes an export payload. The payload
// is a tagged union with exactly two cases; anything else fails
// without partial results. A version mismatch is not an error here;
// callers decide how loudly to proceed.
func DecodePayload(data []byte) (Payload, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Payload{}, fmt.Errorf("%w: not a JSON object", ErrInvalidPayload)
	}

	var record payloadRecord
	if err := json.Unmarshal(trimmed, &record); err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	switch record.Type {
	case PayloadTypeHub:
		if record.Lists == nil {
			return Payload{}, fmt.Errorf("%w: hub payload has no lists", ErrInvalidPayload)
		}
		lists := make([]*domain.List, 0, len(*record.Lists))
		for _, entry := range *record.Lists {
			lists = append(lists, listFromRecord(entry))
		}
		return Payload{Version: record.Version, Type: PayloadTypeHub, Lists: lists}, nil
	case PayloadTypeList:
		if record.List == nil {
			return Payload{}, fmt.Errorf("%w: list payload has no list", ErrInvalidPayload)
		}
		return Payload{
			Version: record.Version,
			Type:    PayloadTypeList,
			List:    listFromRecord(*record.List),
		}, nil
	default:
		return Payload{}, fmt.Errorf("%w: %q", ErrUnknownPayloadType, record.Type)
	}
}
