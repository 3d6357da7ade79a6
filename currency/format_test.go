package currency

import (
	"civic-sync"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestFormatNaira(t *testing.T) {
	tests := []struct {
		amount civic.Amount
		want   string
	}{
		{1000000, "₦1,000,000"},
		{0, "₦0"},
		{999.6, "₦1,000"},
		{1200000000, "₦1,200,000,000"},
		{-2500, "-₦2,500"},
		{2.5, "₦3"},
		{1e20, "₦100,000,000,000,000,000,000"},
		{-1e19, "-₦10,000,000,000,000,000,000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNaira(tt.amount))
	}
}

func TestFormatEth(t *testing.T) {
	tests := []struct {
		amount civic.Amount
		want   string
	}{
		{0.02, "0.020000 ETH"},
		{0, "0.000000 ETH"},
		{1.4, "1.400000 ETH"},
		{0.0000004, "0.000000 ETH"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatEth(tt.amount))
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "0.480000 ETH", Format(civic.MonetaryAmount{Value: 0.48, Currency: civic.ETH}))
	assert.Equal(t, "₦50,000,000", Format(civic.MonetaryAmount{Value: 50000000, Currency: civic.NGN}))
}
