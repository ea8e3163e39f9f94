package quantity

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// LocalizedFractionDigits caps the fraction digits printed by Localized.
const LocalizedFractionDigits = 6

// Localized renders q like String but with the decimal and grouping
// separators of tag, e.g. "T 274,0 K" for German. It is meant for reports;
// String stays the canonical, locale-independent form.
func (q *Quantity) Localized(tag language.Tag) string {
	p := message.NewPrinter(tag)
	v := number.Decimal(q.Value,
		number.MinFractionDigits(1),
		number.MaxFractionDigits(LocalizedFractionDigits))
	return p.Sprintf("%s %v %s", q.Name, v, q.Unit)
}
