package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatNaira(t *testing.T) {
	tests := []struct {
		name   string
		want   string
		amount int64
	}{
		{name: "zero", amount: 0, want: "₦0"},
		{name: "under a thousand", amount: 950, want: "₦950"},
		{name: "exactly a thousand", amount: 1000, want: "₦1,000"},
		{name: "millions", amount: 45_000_000, want: "₦45,000,000"},
		{name: "uneven grouping", amount: 1_234_567, want: "₦1,234,567"},
		{name: "negative", amount: -5000, want: "-₦5,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNaira(tt.amount))
		})
	}
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2023, time.November, 14, 22, 13, 20, 0, time.UTC)
	assert.Equal(t, "14 November 2023", FormatDate(ts))
}
