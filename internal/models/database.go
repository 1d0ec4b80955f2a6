package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Connect loads the ledger file at path.
//
// A file that does not exist yet is the expected first-run state and
// yields an empty ledger, the file is created on the first append. A
// file that exists but cannot be parsed returns an error wrapping
// ErrLedgerCorrupt.
func Connect(path string) (*Ledger, error) {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, fmt.Errorf("create ledger directory: %w", err)
	}

	l := &Ledger{path: path, transactions: []Transaction{}}

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read ledger file: %w", err)
	}

	if err == nil && len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, &l.transactions); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLedgerCorrupt, err)
		}
	}

	return l, nil
}
