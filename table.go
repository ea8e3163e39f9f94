package quantity

import (
	"context"
	"fmt"
	"path"
	"sort"
	"sync"
)

// TableOption customizes Table behavior.
type TableOption func(*Table)

// WithLogger specifies a logger for operation logging.
// If not provided, a no-op logger is used (no logging).
func WithLogger(logger Logger) TableOption {
	return func(t *Table) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithLogTag sets a tag prefix for all log messages.
// Useful for identifying the source of logs when several tables share a logger.
func WithLogTag(tag string) TableOption {
	return func(t *Table) {
		t.logTag = tag
	}
}

// Table holds quantities keyed by name, e.g. every parameter read from one
// calculation output, so they can be converted or summed in bulk.
//
// Entries are copied on the way in and on the way out; callers never share a
// *Quantity with the table. All methods are safe for concurrent use.
type Table struct {
	mu     sync.RWMutex
	data   map[string]*Quantity
	logger Logger
	logTag string
}

// NewTable creates an empty Table.
func NewTable(opts ...TableOption) *Table {
	t := &Table{
		data:   make(map[string]*Quantity),
		logger: defaultLogger,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Table) logf(level string, ctx context.Context, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if t.logTag != "" {
		msg = t.logTag + " " + msg
	}
	switch level {
	case "info":
		t.logger.Info(ctx, "%s", msg)
	case "warn":
		t.logger.Warn(ctx, "%s", msg)
	case "error":
		t.logger.Error(ctx, "%s", msg)
	case "debug":
		t.logger.Debug(ctx, "%s", msg)
	}
}

// Put stores a copy of q under q.Name, replacing any previous entry.
// The key is fixed at this point; renaming the entry later through
// ConvertAll does not move it.
func (t *Table) Put(ctx context.Context, q *Quantity) error {
	if q == nil {
		t.logf("error", ctx, "Put failed: nil quantity")
		return fmt.Errorf("%w: nil quantity", ErrInvalidArgumentType)
	}
	c := q.Clone()

	t.mu.Lock()
	defer t.mu.Unlock()
	t.data[c.Name] = c
	return nil
}

// Get returns a copy of the entry stored under name, or ErrNotFound.
func (t *Table) Get(ctx context.Context, name string) (*Quantity, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	q, ok := t.data[name]
	if !ok {
		return nil, ErrNotFound
	}
	return q.Clone(), nil
}

// Delete removes the entry stored under name. Missing names are ignored.
func (t *Table) Delete(ctx context.Context, name string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.data, name)
	return nil
}

// Len returns the number of entries.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.data)
}

// MGet returns copies of the entries present under names.
func (t *Table) MGet(ctx context.Context, names ...string) map[string]*Quantity {
	t.mu.RLock()
	defer t.mu.RUnlock()

	result := make(map[string]*Quantity, len(names))
	for _, name := range names {
		if q, ok := t.data[name]; ok {
			result[name] = q.Clone()
		}
	}
	return result
}

// Keys returns the sorted names matching a path.Match pattern.
// An empty pattern or "*" matches every name.
func (t *Table) Keys(ctx context.Context, pattern string) ([]string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	keys, err := t.match(pattern)
	if err != nil {
		t.logf("error", ctx, "Keys pattern=%s failed: %v", pattern, err)
	}
	return keys, err
}

// ConvertAll applies Convert with opts to every entry matching pattern, in
// key order, and returns how many entries were converted.
//
// It stops at the first failing entry. Entries converted before it stay
// converted, just as a failing Convert keeps its earlier steps.
func (t *Table) ConvertAll(ctx context.Context, pattern string, opts ...ConvertOption) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	keys, err := t.match(pattern)
	if err != nil {
		t.logf("error", ctx, "ConvertAll pattern=%s failed: %v", pattern, err)
		return 0, err
	}

	for i, key := range keys {
		if err := ctx.Err(); err != nil {
			t.logf("warn", ctx, "ConvertAll stopped after %d of %d: %v", i, len(keys), err)
			return i, err
		}
		if err := t.data[key].Convert(opts...); err != nil {
			t.logf("error", ctx, "ConvertAll %s failed: %v", key, err)
			return i, fmt.Errorf("convert %s: %w", key, err)
		}
	}
	t.logf("debug", ctx, "ConvertAll pattern=%s converted %d", pattern, len(keys))
	return len(keys), nil
}

// Sum adds up every entry matching pattern in key order. The result takes the
// name and unit of the first entry; differing units fail with ErrUnitMismatch.
func (t *Table) Sum(ctx context.Context, pattern string) (*Quantity, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	keys, err := t.match(pattern)
	if err != nil {
		t.logf("error", ctx, "Sum pattern=%s failed: %v", pattern, err)
		return nil, err
	}
	if len(keys) == 0 {
		return nil, ErrNotFound
	}

	first := t.data[keys[0]]
	total := &Quantity{Name: first.Name, Value: first.Value, Unit: first.Unit}
	for _, key := range keys[1:] {
		if err := total.AddAssign(t.data[key]); err != nil {
			t.logf("error", ctx, "Sum %s failed: %v", key, err)
			return nil, fmt.Errorf("sum %s: %w", key, err)
		}
	}
	return total, nil
}

// match returns sorted keys matching pattern. Callers hold t.mu.
func (t *Table) match(pattern string) ([]string, error) {
	all := pattern == "" || pattern == "*"
	if !all {
		// Match validates the whole pattern even when it fails early.
		if _, err := path.Match(pattern, ""); err != nil {
			return nil, ErrInvalidPattern
		}
	}

	keys := make([]string, 0, len(t.data))
	for key := range t.data {
		if all {
			keys = append(keys, key)
			continue
		}
		if ok, _ := path.Match(pattern, key); ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}
