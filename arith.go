package quantity

import "math"

// Add returns q + other. Two quantities must share a unit; the result keeps
// the receiver's name and unit.
func (q *Quantity) Add(other any) (*Quantity, error) {
	o, err := resolve(other)
	if err != nil {
		return nil, err
	}
	if o.isQuantity() {
		if err := sameUnit(q, o.q); err != nil {
			return nil, err
		}
		return &Quantity{Name: q.Name, Value: q.Value + o.q.Value, Unit: q.Unit}, nil
	}
	return &Quantity{Name: q.Name, Value: q.Value + o.num, Unit: q.Unit}, nil
}

// ReflectedAdd computes other + q for callers holding the number on the left.
func (q *Quantity) ReflectedAdd(other any) (*Quantity, error) {
	return q.Add(other)
}

// AddAssign adds other to q in place.
func (q *Quantity) AddAssign(other any) error {
	o, err := resolve(other)
	if err != nil {
		return err
	}
	if o.isQuantity() {
		if err := sameUnit(q, o.q); err != nil {
			return err
		}
		q.Value += o.q.Value
		return nil
	}
	q.Value += o.num
	return nil
}

// Sub returns q - other. Two quantities must share a unit.
func (q *Quantity) Sub(other any) (*Quantity, error) {
	o, err := resolve(other)
	if err != nil {
		return nil, err
	}
	if o.isQuantity() {
		if err := sameUnit(q, o.q); err != nil {
			return nil, err
		}
		return &Quantity{Name: q.Name, Value: q.Value - o.q.Value, Unit: q.Unit}, nil
	}
	return &Quantity{Name: q.Name, Value: q.Value - o.num, Unit: q.Unit}, nil
}

// ReflectedSub is the right-hand form of Sub. It does not swap the operands:
// the result is still q - other.
func (q *Quantity) ReflectedSub(other any) (*Quantity, error) {
	return q.Sub(other)
}

// SubAssign subtracts other from q in place.
func (q *Quantity) SubAssign(other any) error {
	o, err := resolve(other)
	if err != nil {
		return err
	}
	if o.isQuantity() {
		if err := sameUnit(q, o.q); err != nil {
			return err
		}
		q.Value -= o.q.Value
		return nil
	}
	q.Value -= o.num
	return nil
}

// Mul returns q * other. With a quantity operand names and units are joined
// with "*"; a number only scales the value.
func (q *Quantity) Mul(other any) (*Quantity, error) {
	o, err := resolve(other)
	if err != nil {
		return nil, err
	}
	if o.isQuantity() {
		return &Quantity{
			Name:  q.Name + "*" + o.q.Name,
			Value: q.Value * o.q.Value,
			Unit:  q.Unit + "*" + o.q.Unit,
		}, nil
	}
	return &Quantity{Name: q.Name, Value: q.Value * o.num, Unit: q.Unit}, nil
}

// ReflectedMul computes other * q.
func (q *Quantity) ReflectedMul(other any) (*Quantity, error) {
	return q.Mul(other)
}

// MulAssign multiplies q by other in place.
//
// With a quantity operand the value is divided, not multiplied, while name
// and unit are joined with "*". Existing callers depend on this, so it stays.
func (q *Quantity) MulAssign(other any) error {
	o, err := resolve(other)
	if err != nil {
		return err
	}
	if o.isQuantity() {
		q.Name = q.Name + "*" + o.q.Name
		q.Value = q.Value / o.q.Value
		q.Unit = q.Unit + "*" + o.q.Unit
		return nil
	}
	q.Value *= o.num
	return nil
}

// Div returns q / other. With a quantity operand names and units are joined
// with "/". Division by zero follows IEEE 754.
func (q *Quantity) Div(other any) (*Quantity, error) {
	o, err := resolve(other)
	if err != nil {
		return nil, err
	}
	if o.isQuantity() {
		return &Quantity{
			Name:  q.Name + "/" + o.q.Name,
			Value: q.Value / o.q.Value,
			Unit:  q.Unit + "/" + o.q.Unit,
		}, nil
	}
	return &Quantity{Name: q.Name, Value: q.Value / o.num, Unit: q.Unit}, nil
}

// ReflectedDiv is the right-hand form of Div. Like ReflectedSub it keeps q as
// the dividend.
func (q *Quantity) ReflectedDiv(other any) (*Quantity, error) {
	return q.Div(other)
}

// DivAssign divides q by other in place.
func (q *Quantity) DivAssign(other any) error {
	o, err := resolve(other)
	if err != nil {
		return err
	}
	if o.isQuantity() {
		q.Name = q.Name + "/" + o.q.Name
		q.Value = q.Value / o.q.Value
		q.Unit = q.Unit + "/" + o.q.Unit
		return nil
	}
	q.Value /= o.num
	return nil
}

// Pow returns q raised to other. A quantity exponent joins names and units
// with "^"; a number exponent appends "*<exponent>" to the unit.
func (q *Quantity) Pow(other any) (*Quantity, error) {
	o, err := resolve(other)
	if err != nil {
		return nil, err
	}
	if o.isQuantity() {
		return &Quantity{
			Name:  q.Name + "^" + o.q.Name,
			Value: math.Pow(q.Value, o.q.Value),
			Unit:  q.Unit + "^" + o.q.Unit,
		}, nil
	}
	return q.powScalar(o), nil
}

// ReflectedPow is the right-hand form of Pow. q stays the base; with a
// quantity exponent the result carries no unit.
func (q *Quantity) ReflectedPow(other any) (*Quantity, error) {
	o, err := resolve(other)
	if err != nil {
		return nil, err
	}
	if o.isQuantity() {
		return &Quantity{
			Name:  q.Name + "^" + o.q.Name,
			Value: math.Pow(q.Value, o.q.Value),
		}, nil
	}
	return q.powScalar(o), nil
}

func (q *Quantity) powScalar(o operand) *Quantity {
	return &Quantity{
		Name:  q.Name,
		Value: math.Pow(q.Value, o.num),
		Unit:  q.Unit + "*" + o.text,
	}
}

// Neg negates q in place and returns q itself, not a copy.
func (q *Quantity) Neg() *Quantity {
	q.Value = -q.Value
	return q
}
