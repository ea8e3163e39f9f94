package quantity

import (
	"fmt"
	"reflect"
	"strconv"
)

// operand is the right-hand side of a binary operation, resolved to one of
// exactly two variants: another quantity, or a plain number.
type operand struct {
	q *Quantity

	// scalar variant, valid when q is nil
	num  float64
	text string
}

func (o operand) isQuantity() bool { return o.q != nil }

func resolve(other any) (operand, error) {
	switch v := other.(type) {
	case *Quantity:
		if v != nil {
			return operand{q: v}, nil
		}
	case Quantity:
		return operand{q: &v}, nil
	}

	rv := reflect.ValueOf(other)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return operand{num: float64(rv.Int()), text: strconv.FormatInt(rv.Int(), 10)}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return operand{num: float64(rv.Uint()), text: strconv.FormatUint(rv.Uint(), 10)}, nil
	case reflect.Float32, reflect.Float64:
		return operand{num: rv.Float(), text: formatFloat(rv.Float())}, nil
	}
	return operand{}, fmt.Errorf("%w: got %T", ErrUnsupportedOperand, other)
}

func sameUnit(q, other *Quantity) error {
	if q.Unit != other.Unit {
		return fmt.Errorf("%w: %q and %q", ErrUnitMismatch, q.Unit, other.Unit)
	}
	return nil
}
