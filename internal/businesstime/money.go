package businesstime

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	currencySymbol   = "$"
	currencyDecimals = 2

	// A rate whose leading digit sits above 10^308 overflows float64.
	maxRateMagnitude = 308
	// Rates below 10^-20 are zero at cent precision for any realistic hour count.
	minRateMagnitude = -20
)

// ParseRate parses hourly rate text. Empty, non-numeric or non-finite text is rejected.
func ParseRate(rate string) (decimal.Decimal, bool) {
	rate = strings.TrimSpace(rate)
	if rate == "" {
		return decimal.Decimal{}, false
	}

	d, err := decimal.NewFromString(rate)
	if err != nil {
		return decimal.Decimal{}, false
	}

	// Check magnitude from the exponent before anything expands the coefficient
	digits := len(d.Abs().Coefficient().String())
	magnitude := int64(d.Exponent()) + int64(digits)
	if magnitude-1 > maxRateMagnitude {
		return decimal.Decimal{}, false
	}
	if magnitude < minRateMagnitude {
		return decimal.Zero, true
	}

	if f, _ := d.Float64(); math.IsInf(f, 0) {
		return decimal.Decimal{}, false
	}
	return d, true
}

// Project returns rate × hours. ok is false when hours are absent or rate does not parse.
func Project(hours *int, rate string) (amount decimal.Decimal, ok bool) {
	if hours == nil {
		return decimal.Decimal{}, false
	}

	r, ok := ParseRate(rate)
	if !ok {
		return decimal.Decimal{}, false
	}

	return r.Mul(decimal.NewFromInt(int64(*hours))), true
}

// FormatUSD renders amount as en-US dollars, e.g. $2,000.00 or -$12.50
func FormatUSD(amount decimal.Decimal) string {
	rounded := amount.Round(currencyDecimals)

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}

	whole, cents, _ := strings.Cut(rounded.StringFixed(currencyDecimals), ".")
	return sign + currencySymbol + groupThousands(whole) + "." + cents
}

// groupThousands inserts a comma every three digits from the right
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3)

	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
