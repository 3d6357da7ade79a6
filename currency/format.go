package currency

import (
	"civic-sync"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// EthDecimals fixed precision used when rendering ETH amounts.
const EthDecimals = 6

var printer = message.NewPrinter(language.English)

// FormatNaira renders amount as whole naira with the currency symbol and thousands
// grouping, e.g. ₦1,000,000. Halves round away from zero.
func FormatNaira(amount civic.Amount) string {
	v := decimal.NewFromFloat(float64(amount)).Round(0)
	if v.IsNegative() {
		return printer.Sprintf("-₦%.0f", v.Neg().InexactFloat64())
	}
	return printer.Sprintf("₦%.0f", v.InexactFloat64())
}

// FormatEth renders amount with six decimals and the unit suffix, e.g. 0.020000 ETH.
func FormatEth(amount civic.Amount) string {
	return decimal.NewFromFloat(float64(amount)).StringFixed(EthDecimals) + " ETH"
}

// Format renders amount in its own currency.
func Format(m civic.MonetaryAmount) string {
	if m.Currency == civic.ETH {
		return FormatEth(m.Value)
	}
	return FormatNaira(m.Value)
}
