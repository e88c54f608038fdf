package session

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/bytedance/sonic"
	"github.com/klauspost/compress/gzip"
)

// encodeState turns a window-supplied value into the stored blob form:
// JSON, gzip, base64. The settings backends all handle strings natively,
// so the blob stays a plain string regardless of backend.
func encodeState(state any) (string, error) {
	raw, err := sonic.Marshal(state)
	if err != nil {
		return "", fmt.Errorf("failed to encode window state: %w", err)
	}

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(raw); err != nil {
		return "", fmt.Errorf("failed to compress window state: %w", err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("failed to compress window state: %w", err)
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// decodeState reverses encodeState. The result mirrors what the window
// originally handed to SaveState, with JSON's usual type mapping
// (objects become map[string]any, arrays []any, numbers float64).
func decodeState(blob string) (any, error) {
	compressed, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, fmt.Errorf("failed to decode window state: %w", err)
	}

	zr, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress window state: %w", err)
	}
	defer zr.Close()

	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress window state: %w", err)
	}

	var state any
	if err := sonic.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("failed to parse window state: %w", err)
	}
	return state, nil
}
