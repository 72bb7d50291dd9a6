package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		amount float64
		code   string
		want   string
	}{
		{19800, "EUR", "€19,800"},
		{1234567.4, "USD", "$1,234,567"},
		{0, "GBP", "£0"},
		{999, "JPY", "¥999"},
		{-2500, "EUR", "€-2,500"},
		{500, "ZZZ", "ZZZ 500"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Money(tt.amount, tt.code), "%v %s", tt.amount, tt.code)
	}
}

func TestEffortMonths(t *testing.T) {
	assert.Equal(t, "3 mo", EffortMonths(3))
	assert.Equal(t, "1.5 mo", EffortMonths(1.5))
	assert.Equal(t, "1.13 mo", EffortMonths(1.125))
	assert.Equal(t, "0 mo", EffortMonths(0))
}

func TestAllocationCell(t *testing.T) {
	assert.Contains(t, AllocationCell(0), "--")
	assert.Contains(t, AllocationCell(0.25), "25%")
	assert.Contains(t, AllocationCell(1), "100%")
}

func TestTruncID(t *testing.T) {
	assert.Contains(t, TruncID("0123456789abcdef"), "01234567")
	assert.NotContains(t, TruncID("0123456789abcdef"), "89abcdef")
	assert.Contains(t, TruncID("abc"), "abc")
}

func TestRenderTable_Alignment(t *testing.T) {
	out := RenderTable(
		[]string{"NAME", "AMOUNT"},
		[][]string{{"alpha", "12"}, {"b", "3456"}},
		AlignLeft, AlignRight,
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Header, separator, two data rows.
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[2], "alpha")

	// Right-aligned column: amounts end at the same position.
	assert.True(t, strings.HasSuffix(lines[2], "  12"))
	assert.True(t, strings.HasSuffix(lines[3], "3456"))
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, nil))
}

func TestRenderTable_ShortRows(t *testing.T) {
	out := RenderTable([]string{"A", "B", "C"}, [][]string{{"only"}})
	assert.Contains(t, out, "only")
}
