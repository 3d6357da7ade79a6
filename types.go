package civic

import "strings"

// Currency a currency code
type Currency string

const (
	ETH Currency = "ETH"
	NGN Currency = "NGN"
)

// Other returns the currency on the opposite side of an ETH/NGN conversion.
func (c Currency) Other() Currency {
	if c == ETH {
		return NGN
	}
	return ETH
}

// Valid reports whether c is one of the supported currencies.
func (c Currency) Valid() bool {
	return c == ETH || c == NGN
}

// ParseCurrency parses a currency code, ignoring case and surrounding space.
func ParseCurrency(s string) (Currency, bool) {
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	return c, c.Valid()
}

// Amount a monetary amount... which should be a float...
type Amount float64

// Rate an exchange rate, expressed as NGN per ETH
type Rate float64

type Rates map[Currency]Rate

// MonetaryAmount is the authoritative side of an ETH/NGN pair. The other side is always
// derived from it by conversion.
type MonetaryAmount struct {
	Value    Amount
	Currency Currency
}

// Authoritative picks the source of truth when a display context is handed both amounts.
// ETH wins whenever it is positive; NGN is used only when ETH is absent.
func Authoritative(eth, ngn Amount) (MonetaryAmount, bool) {
	switch {
	case eth > 0:
		return MonetaryAmount{Value: eth, Currency: ETH}, true
	case ngn > 0:
		return MonetaryAmount{Value: ngn, Currency: NGN}, true
	default:
		return MonetaryAmount{}, false
	}
}
