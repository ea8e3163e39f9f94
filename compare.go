package quantity

// Comparisons between two quantities hold only when their units are equal;
// NotEqual is the exact negation of Equal. A number on the right is compared
// with the value alone and the unit is ignored.

// Less reports whether q < other.
func (q *Quantity) Less(other any) (bool, error) {
	return q.compare(other, func(a, b float64) bool { return a < b })
}

// LessOrEqual reports whether q <= other.
func (q *Quantity) LessOrEqual(other any) (bool, error) {
	return q.compare(other, func(a, b float64) bool { return a <= b })
}

// Equal reports whether q == other.
func (q *Quantity) Equal(other any) (bool, error) {
	return q.compare(other, func(a, b float64) bool { return a == b })
}

// NotEqual reports whether q != other. Quantities with different units are
// never equal.
func (q *Quantity) NotEqual(other any) (bool, error) {
	eq, err := q.Equal(other)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

// Greater reports whether q > other.
func (q *Quantity) Greater(other any) (bool, error) {
	return q.compare(other, func(a, b float64) bool { return a > b })
}

// GreaterOrEqual reports whether q >= other.
func (q *Quantity) GreaterOrEqual(other any) (bool, error) {
	return q.compare(other, func(a, b float64) bool { return a >= b })
}

func (q *Quantity) compare(other any, holds func(a, b float64) bool) (bool, error) {
	o, err := resolve(other)
	if err != nil {
		return false, err
	}
	if o.isQuantity() {
		return q.Unit == o.q.Unit && holds(q.Value, o.q.Value), nil
	}
	return holds(q.Value, o.num), nil
}
