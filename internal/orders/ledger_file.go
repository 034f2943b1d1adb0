package orders

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// FileLedger persists the ledger as one JSON array in a single file, read and
// rewritten wholesale per operation. A missing file means an empty ledger.
type FileLedger struct {
	path string
	mu   sync.Mutex
}

func NewFileLedger(path string) *FileLedger {
	return &FileLedger{path: path}
}

func (l *FileLedger) List(ctx context.Context) ([]Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load()
}

func (l *FileLedger) Append(ctx context.Context, o Order) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	all, err := l.load()
	if err != nil {
		return err
	}
	// newest first
	return l.save(append([]Order{o}, all...))
}

func (l *FileLedger) UpdateStatus(ctx context.Context, orderID string, s Status) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	all, err := l.load()
	if err != nil {
		return err
	}
	changed := false
	for i := range all {
		if all[i].ID == orderID {
			all[i].Status = s
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return l.save(all)
}

func (l *FileLedger) Clear(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear ledger: %w", err)
	}
	return nil
}

func (l *FileLedger) load() ([]Order, error) {
	b, err := os.ReadFile(l.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read ledger: %w", err)
	}
	var all []Order
	if err := json.Unmarshal(b, &all); err != nil {
		return nil, fmt.Errorf("decode ledger: %w", err)
	}
	return all, nil
}

func (l *FileLedger) save(all []Order) error {
	b, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}
	if err := os.WriteFile(l.path, b, 0o644); err != nil {
		return fmt.Errorf("write ledger: %w", err)
	}
	return nil
}
