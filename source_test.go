package skinvault

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

// fakeSource counts its invocations and returns a fixed value or error.
type fakeSource struct {
	name  string
	value decimal.Decimal
	err   error
	calls int
}

func (f *fakeSource) Name() string { return f.name }
func (f *fakeSource) AccountValue(string) (decimal.Decimal, error) {
	f.calls++
	return f.value, f.err
}

func TestChainStopsAtFirstPositiveValue(t *testing.T) {
	a := &fakeSource{name: "a", value: decimal.RequireFromString("12.34")}
	b := &fakeSource{name: "b", value: decimal.RequireFromString("99.99")}

	v, err := NewChain(false, a, b).AccountValue("7656")
	if err != nil {
		t.Fatalf("AccountValue() error = %v", err)
	}
	if want := decimal.RequireFromString("12.34"); !v.Equal(want) {
		t.Errorf("AccountValue() = %v, want %v", v, want)
	}
	if b.calls != 0 {
		t.Errorf("source b called %d times, want 0", b.calls)
	}
}

func TestChainFallsThroughOnErrorAndZero(t *testing.T) {
	a := &fakeSource{name: "a", err: errors.New("boom")}
	b := &fakeSource{name: "b"} // zero value: treated as "no value"
	c := &fakeSource{name: "c", value: decimal.RequireFromString("5.00")}

	v, err := NewChain(false, a, b, c).AccountValue("7656")
	if err != nil {
		t.Fatalf("AccountValue() error = %v", err)
	}
	if want := decimal.RequireFromString("5.00"); !v.Equal(want) {
		t.Errorf("AccountValue() = %v, want %v", v, want)
	}
	if a.calls != 1 || b.calls != 1 || c.calls != 1 {
		t.Errorf("calls = (%d, %d, %d), want (1, 1, 1)", a.calls, b.calls, c.calls)
	}
}

func TestChainExhaustedReturnsZeroAndError(t *testing.T) {
	a := &fakeSource{name: "a", err: errors.New("down")}
	b := &fakeSource{name: "b", value: decimal.Zero}

	v, err := NewChain(false, a, b).AccountValue("7656")
	if err == nil {
		t.Fatalf("AccountValue() error = nil, want chain-exhausted error")
	}
	if !v.IsZero() {
		t.Errorf("AccountValue() = %v, want 0", v)
	}
}
