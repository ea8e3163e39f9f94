package quantity

import (
	"fmt"
	"reflect"
	"strings"
)

// FromFields builds a Quantity from an ordered slice or array of
// (name, value, unit) or (name, value).
func FromFields(fields any) (*Quantity, error) {
	rv := reflect.ValueOf(fields)
	if _, raw := fields.([]byte); raw || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, fmt.Errorf("%w: FromFields needs a slice or array, got %T", ErrInvalidArgumentType, fields)
	}

	switch rv.Len() {
	case 3:
		return New(rv.Index(0).Interface(), rv.Index(1).Interface(), rv.Index(2).Interface())
	case 2:
		return New(rv.Index(0).Interface(), rv.Index(1).Interface(), nil)
	default:
		return nil, fmt.Errorf("%w: got %d", ErrArity, rv.Len())
	}
}

// FromRecord builds a Quantity from a whitespace-separated record such as
// "T 274 K", or from an ordered field list as accepted by FromFields.
func FromRecord(record any) (*Quantity, error) {
	rv := reflect.ValueOf(record)
	switch rv.Kind() {
	case reflect.String:
		return FromFields(strings.Fields(rv.String()))
	case reflect.Slice, reflect.Array:
		return FromFields(record)
	}
	return nil, fmt.Errorf("%w: FromRecord needs a string or field list, got %T", ErrInvalidArgumentType, record)
}
