package quantity

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Quantity is a named value tagged with a unit.
//
// Units are plain strings. They are compared byte for byte by + and - and
// concatenated by *, / and ^. No unit algebra happens beyond that.
type Quantity struct {
	Name  string
	Value float64
	Unit  string
	// Alias is kept for debugging only and never takes part in math,
	// comparison or rendering.
	Alias string
}

// Option customizes a Quantity at construction.
type Option func(*Quantity)

// WithAlias sets the diagnostic alias.
func WithAlias(alias string) Option {
	return func(q *Quantity) {
		q.Alias = alias
	}
}

// New builds a Quantity.
//
// name is coerced to text. value must be a number, a bool, or text holding a
// number; anything else fails with ErrValueConversion. A falsy unit (nil, "",
// zero, false, empty sequence) becomes "".
func New(name, value, unit any, opts ...Option) (*Quantity, error) {
	v, err := toFloat(value)
	if err != nil {
		return nil, err
	}
	q := &Quantity{
		Name:  text(name),
		Value: v,
	}
	if truthy(unit) {
		q.Unit = text(unit)
	}
	for _, opt := range opts {
		opt(q)
	}
	return q, nil
}

// MustNew is like New but panics on error.
func MustNew(name, value, unit any, opts ...Option) *Quantity {
	q, err := New(name, value, unit, opts...)
	if err != nil {
		panic(fmt.Sprintf("invalid quantity: %v", err))
	}
	return q
}

// Clone returns an independent copy of q.
func (q *Quantity) Clone() *Quantity {
	c := *q
	return &c
}

func toFloat(value any) (float64, error) {
	switch v := value.(type) {
	case nil:
		return 0, conversionError(value)
	case string:
		return parseFloat(v, value)
	case []byte:
		return parseFloat(string(v), value)
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.String:
		// Named string types such as json.Number.
		return parseFloat(rv.String(), value)
	}
	return 0, conversionError(value)
}

func parseFloat(s string, orig any) (float64, error) {
	s = strings.TrimSpace(s)
	if isHexLiteral(s) {
		return 0, conversionError(orig)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Overflow still yields ±Inf, which is a valid magnitude here.
		if errors.Is(err, strconv.ErrRange) {
			return f, nil
		}
		return 0, conversionError(orig)
	}
	return f, nil
}

// isHexLiteral reports whether s uses the 0x prefix strconv.ParseFloat
// understands. Only decimal text counts as a number.
func isHexLiteral(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

func conversionError(value any) error {
	if b, ok := value.([]byte); ok {
		value = string(b)
	}
	return fmt.Errorf("%w: could not convert %#v to float", ErrValueConversion, value)
}

// text renders v the way it appears inside names and units.
func text(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return formatFloat(x)
	case float32:
		return formatFloat(float64(x))
	}
	return fmt.Sprint(v)
}

// truthy reports whether v counts as "given" for optional text arguments.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return x != ""
		}
		return f != 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() != 0
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}
