package codec

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Spaaern/pubcrawl-cli/internal/domain"
)

// The legacy single-list format predates the hub wrapper: one bare
// array of participant names, and either a bare array of checkpoints
// or a wrapper object with a "data" array.

func DecodeLegacyParticipants(data []byte) ([]string, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	var participants []string
	if err := json.Unmarshal(trimmed, &participants); err != nil {
		return nil, fmt.Errorf("decode legacy participants: %w", err)
	}

	return participants, nil
}

func DecodeLegacyCheckpoints(data []byte) ([]*domain.Checkpoint, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	var records []checkpointRecord
	if trimmed[0] == '{' {
		var wrapper struct {
			Data []checkpointRecord `json:"data"`
		}
		if err := json.Unmarshal(trimmed, &wrapper); err != nil {
			return nil, fmt.Errorf("decode legacy checkpoints: %w", err)
		}
		records = wrapper.Data
	} else if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, fmt.Errorf("decode legacy checkpoints: %w", err)
	}

	checkpoints := make([]*domain.Checkpoint, 0, len(records))
	for _, entry := range records {
		checkpoints = append(checkpoints, checkpointFromRecord(entry))
	}

	return checkpoints, nil
}
