package skinvault

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneyString(t *testing.T) {
	tests := []struct {
		value    string
		currency string
		want     string
	}{
		{value: "1234.56", currency: "USD", want: "$1,234.56"},
		{value: "0", currency: "EUR", want: "€0.00"},
	}
	for _, tt := range tests {
		m := M(decimal.RequireFromString(tt.value), tt.currency)
		if got := m.String(); got != tt.want {
			t.Errorf("M(%s, %s).String() = %q, want %q", tt.value, tt.currency, got, tt.want)
		}
	}
}
