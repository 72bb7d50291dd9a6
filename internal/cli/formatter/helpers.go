package formatter

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"produceotron/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// Money renders an amount with the currency's symbol and thousands
// separators, rounded to whole units: Money(19800, "EUR") is "€19,800".
func Money(amount float64, code string) string {
	symbol := code + " "
	if c, ok := domain.CurrencyByCode(code); ok {
		symbol = c.Symbol
	}
	return symbol + groupThousands(math.Round(amount))
}

func groupThousands(v float64) string {
	neg := v < 0
	s := fmt.Sprintf("%.0f", math.Abs(v))
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// EffortMonths renders a month figure with up to two decimals, trimming
// trailing zeros so whole months read as "3 mo" not "3.00 mo".
func EffortMonths(months float64) string {
	s := fmt.Sprintf("%.2f", months)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s + " mo"
}

// AllocationCell renders a fraction as a colored percentage cell; zero
// renders as a dimmed dash.
func AllocationCell(frac float64) string {
	if frac == 0 {
		return StyleDim.Render("--")
	}
	return AllocationStyle(frac).Render(fmt.Sprintf("%.0f%%", frac*100))
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// RoleBadge returns a purple-styled role label, or a dimmed placeholder.
func RoleBadge(role string) string {
	if role == "" {
		return StyleDim.Render("--")
	}
	return StylePurple.Render(role)
}
