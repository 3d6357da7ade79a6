package conversion

import (
	"civic-sync"
	"civic-sync/currency"
	"civic-sync/debounce"
	"context"
	"github.com/go-kit/log"
	"strings"
)

// Display converts read-only amounts. Its input does not come from keystrokes, so it
// converts as soon as the amounts change.
type Display struct {
	*Pipeline
}

// NewDisplay constructs a valid Display.
func NewDisplay(s currency.Service, logger log.Logger, opts ...Option) *Display {
	return &Display{Pipeline: New(s, 0, logger, opts...)}
}

// SetAmounts sets the amounts handed to the display. When both are given, ETH is the
// source of truth and NGN is recomputed from it.
func (d *Display) SetAmounts(ctx context.Context, eth, ngn civic.Amount) debounce.Token {
	m, ok := civic.Authoritative(eth, ngn)
	if !ok {
		return d.Set(ctx, 0, civic.ETH)
	}
	return d.Set(ctx, m.Value, m.Currency)
}

// Summary renders the display text. With showBoth the naira line is followed by the ETH
// line, using zero placeholders for missing values; otherwise only the naira value is shown.
func (d *Display) Summary(showBoth bool) string {
	s := d.State()
	if s.Loading {
		return "Converting..."
	}

	eth, ngn := s.Pair()
	if showBoth {
		lines := []string{"₦0", currency.FormatEth(0)}
		if ngn != nil && *ngn > 0 {
			lines[0] = currency.FormatNaira(*ngn)
		}
		if eth != nil && *eth > 0 {
			lines[1] = currency.FormatEth(*eth)
		}
		return strings.Join(lines, "\n")
	}

	if ngn == nil {
		return ""
	}
	return currency.FormatNaira(*ngn)
}
