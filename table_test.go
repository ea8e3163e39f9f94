package quantity

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"
)

func newTestTable(t *testing.T, records ...string) *Table {
	t.Helper()
	tbl := NewTable()
	ctx := context.Background()
	for _, r := range records {
		q, err := FromRecord(r)
		if err != nil {
			t.Fatalf("FromRecord(%q): %v", r, err)
		}
		if err := tbl.Put(ctx, q); err != nil {
			t.Fatalf("Put: %v", err)
		}
	}
	return tbl
}

func TestTable_PutGet(t *testing.T) {
	ctx := context.Background()
	tbl := NewTable()

	q := MustNew("T", 274, "K")
	if err := tbl.Put(ctx, q); err != nil {
		t.Fatalf("Put: %v", err)
	}

	// Mutating the caller's copy must not reach the table.
	q.Value = 0

	got, err := tbl.Get(ctx, "T")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Value != 274 {
		t.Errorf("Get = %v, want 274", got.Value)
	}

	got.Neg()
	again, _ := tbl.Get(ctx, "T")
	if again.Value != 274 {
		t.Errorf("table entry changed through a returned copy: %v", again)
	}

	if tbl.Len() != 1 {
		t.Errorf("Len = %d, want 1", tbl.Len())
	}
}

func TestTable_GetMissing(t *testing.T) {
	tbl := NewTable()
	if _, err := tbl.Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestTable_PutNil(t *testing.T) {
	logger := &mockLogger{}
	tbl := NewTable(WithLogger(logger))
	if err := tbl.Put(context.Background(), nil); !errors.Is(err, ErrInvalidArgumentType) {
		t.Errorf("expected ErrInvalidArgumentType, got %v", err)
	}
	if !logger.contains("Put failed") {
		t.Error("expected Put failure to be logged")
	}
}

func TestTable_Delete(t *testing.T) {
	ctx := context.Background()
	tbl := newTestTable(t, "T 274 K", "G 115")

	if err := tbl.Delete(ctx, "T"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := tbl.Delete(ctx, "missing"); err != nil {
		t.Fatalf("Delete missing: %v", err)
	}
	if _, err := tbl.Get(ctx, "T"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after Delete, got %v", err)
	}
	if tbl.Len() != 1 {
		t.Errorf("Len = %d, want 1", tbl.Len())
	}
}

func TestTable_Keys(t *testing.T) {
	ctx := context.Background()
	tbl := newTestTable(t, "E_scf -76.4 Eh", "E_zpe 0.02 Eh", "T 298.15 K", "G 115")

	tests := []struct {
		pattern string
		want    []string
	}{
		{"", []string{"E_scf", "E_zpe", "G", "T"}},
		{"*", []string{"E_scf", "E_zpe", "G", "T"}},
		{"E_*", []string{"E_scf", "E_zpe"}},
		{"?", []string{"G", "T"}},
		{"H*", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got, err := tbl.Keys(ctx, tt.pattern)
			if err != nil {
				t.Fatalf("Keys: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Keys(%q) = %v, want %v", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestTable_KeysInvalidPattern(t *testing.T) {
	logger := &mockLogger{}
	tbl := NewTable(WithLogger(logger), WithLogTag("[thermo]"))
	_ = tbl.Put(context.Background(), MustNew("key1", 1, ""))

	_, err := tbl.Keys(context.Background(), "[invalid")
	if !errors.Is(err, ErrInvalidPattern) {
		t.Errorf("expected ErrInvalidPattern, got %v", err)
	}
	if !logger.contains("[thermo] Keys pattern=[invalid failed") {
		t.Errorf("expected tagged log, got %v", logger.getMessages())
	}
}

func TestTable_MGet(t *testing.T) {
	tbl := newTestTable(t, "T 274 K", "G 115")
	got := tbl.MGet(context.Background(), "T", "missing", "G")
	if len(got) != 2 {
		t.Fatalf("MGet len = %d, want 2", len(got))
	}
	if got["T"].Value != 274 || got["G"].Value != 115 {
		t.Errorf("MGet = %v", got)
	}
}

func TestTable_ConvertAll(t *testing.T) {
	ctx := context.Background()
	tbl := newTestTable(t, "T 5 kcal", "S 6 kcal", "X 1 K")

	n, err := tbl.ConvertAll(ctx, "[ST]", ConvertKoef(4184), ConvertUnit("J"))
	if err != nil {
		t.Fatalf("ConvertAll: %v", err)
	}
	if n != 2 {
		t.Errorf("converted %d, want 2", n)
	}

	want := map[string]string{
		"T": "T 20920.0 J",
		"S": "S 25104.0 J",
		"X": "X 1.0 K",
	}
	for name, w := range want {
		q, _ := tbl.Get(ctx, name)
		if got := q.String(); got != w {
			t.Errorf("%s = %q, want %q", name, got, w)
		}
	}
}

func TestTable_ConvertAllStopsAtFirstFailure(t *testing.T) {
	ctx := context.Background()
	logger := &mockLogger{}
	tbl := NewTable(WithLogger(logger))
	_ = tbl.Put(ctx, MustNew("A", 1, "K"))
	_ = tbl.Put(ctx, MustNew("B", 2, "K"))

	n, err := tbl.ConvertAll(ctx, "*", ConvertName("renamed"), ConvertKoef(2), ConvertValue(3))
	if !errors.Is(err, ErrMutuallyExclusive) {
		t.Fatalf("expected ErrMutuallyExclusive, got %v", err)
	}
	if n != 0 {
		t.Errorf("converted %d, want 0", n)
	}

	a, _ := tbl.Get(ctx, "A")
	if a.Name != "renamed" || a.Value != 1 {
		t.Errorf("A = %v, want the rename applied and value untouched", a)
	}
	b, _ := tbl.Get(ctx, "B")
	if b.Name != "B" {
		t.Errorf("B = %v, must not be reached", b)
	}
	if !logger.contains("ConvertAll A failed") {
		t.Errorf("expected failure log, got %v", logger.getMessages())
	}
}

func TestTable_ConvertAllCanceled(t *testing.T) {
	tbl := newTestTable(t, "T 5 K", "S 6 K")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n, err := tbl.ConvertAll(ctx, "*", ConvertKoef(2))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if n != 0 {
		t.Errorf("converted %d, want 0", n)
	}
	q, _ := tbl.Get(context.Background(), "T")
	if q.Value != 5 {
		t.Errorf("T = %v, want untouched", q)
	}
}

func TestTable_ConvertAllInvalidPattern(t *testing.T) {
	tbl := newTestTable(t, "T 5 K")
	if _, err := tbl.ConvertAll(context.Background(), "[", ConvertKoef(2)); !errors.Is(err, ErrInvalidPattern) {
		t.Errorf("expected ErrInvalidPattern, got %v", err)
	}
}

func TestTable_Sum(t *testing.T) {
	ctx := context.Background()
	tbl := newTestTable(t, "E_scf -76.4 Eh", "E_zpe 0.4 Eh", "T 298.15 K")

	total, err := tbl.Sum(ctx, "E_*")
	if err != nil {
		t.Fatalf("Sum: %v", err)
	}
	if total.Name != "E_scf" || total.Unit != "Eh" {
		t.Errorf("Sum = %v", total)
	}
	if total.Value != -76.4+0.4 {
		t.Errorf("Sum value = %v, want %v", total.Value, -76.4+0.4)
	}

	if _, err := tbl.Sum(ctx, "*"); !errors.Is(err, ErrUnitMismatch) {
		t.Errorf("expected ErrUnitMismatch, got %v", err)
	}
	if _, err := tbl.Sum(ctx, "Q*"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestTable_Concurrent(t *testing.T) {
	ctx := context.Background()
	tbl := NewTable()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(id int) {
			defer wg.Done()
			_ = tbl.Put(ctx, MustNew(fmt.Sprintf("q%d", id), id, "K"))
		}(i)
		go func(id int) {
			defer wg.Done()
			_, _ = tbl.Get(ctx, fmt.Sprintf("q%d", id))
			_, _ = tbl.Keys(ctx, "q*")
		}(i)
	}
	wg.Wait()

	if _, err := tbl.ConvertAll(ctx, "*", ConvertKoef(2)); err != nil {
		t.Fatalf("ConvertAll: %v", err)
	}
	if tbl.Len() != 50 {
		t.Errorf("Len = %d, want 50", tbl.Len())
	}
	q, _ := tbl.Get(ctx, "q7")
	if q.Value != 14 {
		t.Errorf("q7 = %v, want 14", q.Value)
	}
}
