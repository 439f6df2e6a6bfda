package cli

import (
	"strconv"
	"strings"
	"time"
)

// FormatNaira renders a whole-naira amount with the currency sign and
// grouped thousands, e.g. ₦50,000,000.
func FormatNaira(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString("₦")

	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteByte(',')
		}
	}
	return b.String()
}

// FormatDate renders a timestamp the way the listing cards show it.
func FormatDate(t time.Time) string {
	return t.Format("2 January 2006")
}
