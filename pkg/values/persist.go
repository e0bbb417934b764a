package values

import (
	"encoding/json"
	"fmt"
	"os"
)

// PersistenceError wraps a failure to load or decode a persisted value
// store. It surfaces before any prompting begins and is not recovered.
type PersistenceError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *PersistenceError) Error() string {
	return fmt.Sprintf("values: load store %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// LoadValues reads a persisted store file: a flat one-level JSON object with
// string or boolean leaves. The result is suitable for pre-seeding a Store
// via WithOverrides. Key order in the file is not significant. A missing or
// malformed file, or a leaf of any other type, yields a *PersistenceError.
func LoadValues(path string) (map[string]Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &PersistenceError{Path: path, Err: err}
	}
	var out map[string]Value
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, &PersistenceError{Path: path, Err: err}
	}
	return out, nil
}

// SaveValues writes the mapping as a flat JSON object so a subsequent run
// can reload it as its override set.
func SaveValues(path string, resolved map[string]Value) error {
	data, err := json.MarshalIndent(resolved, "", "  ")
	if err != nil {
		return fmt.Errorf("values: encode store: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("values: save store %s: %w", path, err)
	}
	return nil
}
