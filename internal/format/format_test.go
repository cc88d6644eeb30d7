package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr error
	}{
		{name: "plain integer", input: "50000", want: 50000},
		{name: "decimal", input: "99.5", want: 99.5},
		{name: "surrounding whitespace", input: "  1200 ", want: 1200},
		{name: "empty", input: "", wantErr: ErrAmountRequired},
		{name: "whitespace only", input: "   ", wantErr: ErrAmountRequired},
		{name: "not a number", input: "abc", wantErr: ErrAmountNotPositive},
		{name: "zero", input: "0", wantErr: ErrAmountNotPositive},
		{name: "negative", input: "-500", wantErr: ErrAmountNotPositive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateAmount(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSanitizeAmountInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "already clean", input: "50000", want: "50000"},
		{name: "strips letters", input: "12abc3", want: "123"},
		{name: "strips thousands separators", input: "1,000,000", want: "1000000"},
		{name: "keeps one decimal point", input: "12.34", want: "12.34"},
		{name: "collapses extra points", input: "1.2.3", want: "1.23"},
		{name: "only garbage", input: "đồng", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeAmountInput(tt.input))
		})
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  string
	}{
		{name: "small", input: 5, want: "5"},
		{name: "three digits", input: 999, want: "999"},
		{name: "four digits", input: 1000, want: "1.000"},
		{name: "millions", input: 1234567, want: "1.234.567"},
		{name: "negative", input: -50000, want: "-50.000"},
		{name: "fractional", input: 1234.5, want: "1.234,5"},
		{name: "zero", input: 0, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Number(tt.input))
		})
	}
}

func TestCurrency(t *testing.T) {
	assert.Equal(t, "1.234.567 đ", Currency(1234567))
	assert.Equal(t, "-50.000 đ", Currency(-50000))
}

func TestCurrencyWithSign(t *testing.T) {
	assert.Equal(t, "+100.000 đ", CurrencyWithSign(100000))
	assert.Equal(t, "+0 đ", CurrencyWithSign(0))
	assert.Equal(t, "-100.000 đ", CurrencyWithSign(-100000))
}
