// Package quantity provides named, unit-tagged numeric values with an
// arithmetic that keeps track of names and units as plain strings.
//
// # Overview
//
// A Quantity is (name, value, unit). It is meant for post-processing
// scientific output, where every derived number should still say what it is
// and what it is measured in. Units are never converted or checked
// dimensionally: + and - require byte-equal units, while *, / and ^ join the
// operands' names and units with the operator symbol.
//
// # Quick Start
//
//	a, _ := quantity.FromRecord("T 274 K")
//	b, _ := quantity.FromFields([]any{"T", 123, "K"})
//	c := quantity.MustNew("G", 115, nil)
//
//	sum, _ := a.Add(b) // T 397.0 K
//	p, _ := a.Mul(b)   // T*T 33702.0 K*K
//	r, _ := a.Div(c)   // T/G 2.382608695652174 K/
//
//	_, err := a.Add(c)
//	// errors.Is(err, quantity.ErrUnitMismatch) == true
//
// # Operands
//
// Every binary method takes `other any` and accepts exactly two shapes:
// another Quantity (value or pointer) or a Go number. Anything else fails
// with ErrUnsupportedOperand. Methods come in three positions: forward
// (Add), reflected (ReflectedAdd, for "number op quantity" call sites) and
// in-place (AddAssign). Reflected forms keep the receiver on the left, so
// ReflectedSub and ReflectedDiv do not swap operands.
//
// MulAssign with a Quantity divides the value rather than multiplying it.
// Existing data pipelines depend on that, so it is kept.
//
// # Conversion
//
// Convert mutates a Quantity in place:
//
//	e := quantity.MustNew("Energy", 1000, "J")
//	_ = e.Convert(quantity.ConvertKoef(1e-3), quantity.ConvertUnit("kJ"))
//	// Energy 1.0 kJ
//
// # Encodings
//
// Quantities marshal to their record string. JSON and YAML decoding also
// accept an ordered field list or a name/value/unit/alias mapping.
//
// # Thread Safety
//
// A Quantity has no internal locking; give each one a single owner at a time.
// Table is safe for concurrent use and copies entries in and out.
//
// # Error Handling
//
// The package defines sentinel errors, matched with errors.Is:
//
//	ErrValueConversion, ErrArity, ErrInvalidArgumentType,
//	ErrMutuallyExclusive, ErrInvalidCoefficient, ErrUnsupportedOperand,
//	ErrUnitMismatch, ErrNotFound, ErrInvalidPattern
package quantity
