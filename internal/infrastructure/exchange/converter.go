package exchange

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Converter turns an amount in one currency into another for display.
// Conversion is best-effort: any lookup failure, timeout, or missing target
// rate degrades to ok=false and must never fail the enclosing request.
type Converter struct {
	src     RateSource
	timeout time.Duration
	log     *zap.Logger
}

func NewConverter(src RateSource, timeout time.Duration, log *zap.Logger) *Converter {
	return &Converter{src: src, timeout: timeout, log: log}
}

// Convert returns the amount in the target currency rounded half-up to two
// decimals. Same-currency conversions short-circuit without touching the
// rate source, so same-currency companies never depend on its availability.
func (c *Converter) Convert(ctx context.Context, amount decimal.Decimal, from, to string) (decimal.Decimal, bool) {
	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))
	if from == to {
		return amount, true
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	rates, err := c.src.Rates(ctx, from)
	if err != nil {
		c.log.Warn("currency conversion unavailable",
			zap.String("from", from), zap.String("to", to), zap.Error(err))
		return decimal.Zero, false
	}
	rate, found := rates[to]
	if !found {
		c.log.Warn("target currency absent from rate table",
			zap.String("from", from), zap.String("to", to))
		return decimal.Zero, false
	}
	// Round only the final converted value; stored originals stay untouched.
	return amount.Mul(rate).Round(2), true
}
