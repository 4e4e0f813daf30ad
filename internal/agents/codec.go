package agents

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// legacyNone is the text older rows hold for an absent config.
const legacyNone = "None"

// encodeConfig stores a config object as JSON text. A nil object is stored as NULL.
func encodeConfig(cfg map[string]any) (sql.NullString, error) {
	if cfg == nil {
		return sql.NullString{}, nil
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("encode config: %w", err)
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

// decodeConfig parses stored config text. Anything other than NULL, blank,
// the legacy None marker, or a JSON object is reported as ErrDecode.
func decodeConfig(column string, text sql.NullString) (map[string]any, error) {
	if !text.Valid {
		return nil, nil
	}

	trimmed := strings.TrimSpace(text.String)
	if trimmed == "" || trimmed == legacyNone {
		return nil, nil
	}

	dec := json.NewDecoder(strings.NewReader(trimmed))
	dec.UseNumber()

	var cfg map[string]any
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, column, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s: trailing data after object", ErrDecode, column)
	}
	return cfg, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullInt(n *int) sql.NullInt64 {
	if n == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*n), Valid: true}
}

func isJSONNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
