package quantity

import (
	"math"
	"strconv"
	"strings"
)

// String renders q as "name value unit". The separator before the unit is
// always present, so an empty unit leaves a trailing space.
func (q Quantity) String() string {
	var b strings.Builder
	b.Grow(len(q.Name) + len(q.Unit) + 24)
	b.WriteString(q.Name)
	b.WriteByte(' ')
	b.WriteString(formatFloat(q.Value))
	b.WriteByte(' ')
	b.WriteString(q.Unit)
	return b.String()
}

// formatFloat renders the shortest round-trip form of v. Integral values keep
// a ".0" suffix, and decimal exponents outside [-4, 16) use exponent form.
func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	s := strconv.FormatFloat(v, 'e', -1, 64)
	exp, _ := strconv.Atoi(s[strings.IndexByte(s, 'e')+1:])
	if exp < -4 || exp >= 16 {
		return s
	}

	s = strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
