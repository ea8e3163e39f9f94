package quantity

import (
	"fmt"
	"reflect"
)

// ConvertOption selects one adjustment made by Convert. An option counts as
// given whenever it is passed, so ConvertValue(0) does set the value to zero.
type ConvertOption func(*conversion)

type conversion struct {
	name, unit        *string
	koef, value       any
	hasKoef, hasValue bool
}

// ConvertName renames the quantity. A nil name leaves it unchanged.
func ConvertName(name any) ConvertOption {
	return func(c *conversion) {
		if name == nil {
			return
		}
		s := text(name)
		c.name = &s
	}
}

// ConvertKoef rescales the value. koef is either a number the value is
// multiplied by, or a func(float64) float64 applied to it.
func ConvertKoef(koef any) ConvertOption {
	return func(c *conversion) {
		c.koef, c.hasKoef = koef, true
	}
}

// ConvertValue replaces the value. It accepts the same inputs as New.
func ConvertValue(value any) ConvertOption {
	return func(c *conversion) {
		c.value, c.hasValue = value, true
	}
}

// ConvertUnit replaces the unit. A falsy unit clears it, as in New.
func ConvertUnit(unit any) ConvertOption {
	return func(c *conversion) {
		var s string
		if truthy(unit) {
			s = text(unit)
		}
		c.unit = &s
	}
}

// Convert changes q in place, typically to move it to another unit:
//
//	e := quantity.MustNew("Energy", 1000, "J")
//	_ = e.Convert(quantity.ConvertKoef(1e-3), quantity.ConvertUnit("kJ"))
//	// e.String() == "Energy 1.0 kJ"
//
// Steps run in the order name, koef, value, unit and are not rolled back: a
// failing step leaves the earlier ones applied. Passing both ConvertKoef and
// ConvertValue fails with ErrMutuallyExclusive after the rename.
func (q *Quantity) Convert(opts ...ConvertOption) error {
	var c conversion
	for _, opt := range opts {
		opt(&c)
	}

	if c.name != nil {
		q.Name = *c.name
	}
	if c.hasKoef && c.hasValue {
		return ErrMutuallyExclusive
	}
	if c.hasKoef {
		if err := q.applyKoef(c.koef); err != nil {
			return err
		}
	}
	if c.hasValue {
		v, err := toFloat(c.value)
		if err != nil {
			return err
		}
		q.Value = v
	}
	if c.unit != nil {
		q.Unit = *c.unit
	}
	return nil
}

func (q *Quantity) applyKoef(koef any) error {
	if fn, ok := koef.(func(float64) float64); ok {
		if fn == nil {
			return fmt.Errorf("%w: nil func", ErrInvalidCoefficient)
		}
		q.Value = fn(q.Value)
		return nil
	}

	rv := reflect.ValueOf(koef)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		q.Value *= float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		q.Value *= float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		q.Value *= rv.Float()
	case reflect.Func:
		// Named func types such as `type Transform func(float64) float64`.
		fn, ok := convertibleFunc(rv)
		if !ok {
			return fmt.Errorf("%w: got %T", ErrInvalidCoefficient, koef)
		}
		q.Value = fn(q.Value)
	default:
		return fmt.Errorf("%w: got %T", ErrInvalidCoefficient, koef)
	}
	return nil
}

var transformType = reflect.TypeOf(func(float64) float64 { return 0 })

func convertibleFunc(rv reflect.Value) (func(float64) float64, bool) {
	if rv.IsNil() || !rv.Type().ConvertibleTo(transformType) {
		return nil, false
	}
	return rv.Convert(transformType).Interface().(func(float64) float64), true
}
