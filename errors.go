package quantity

import "errors"

var (
	ErrValueConversion     = errors.New("quantity: value is not convertible to float")
	ErrArity               = errors.New("quantity: must have 3 or 2 fields")
	ErrInvalidArgumentType = errors.New("quantity: invalid argument type")
	ErrMutuallyExclusive   = errors.New("quantity: koef and value are mutually exclusive")
	ErrInvalidCoefficient  = errors.New("quantity: koef must be a number or func(float64) float64")
	ErrUnsupportedOperand  = errors.New("quantity: only numbers and quantities can be used in math")
	ErrUnitMismatch        = errors.New("quantity: both quantities must have the same unit for + and -")

	ErrNotFound       = errors.New("quantity: not found")
	ErrInvalidPattern = errors.New("quantity: invalid pattern")
)
