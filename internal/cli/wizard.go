package cli

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"produceotron/internal/cli/formatter"
	"produceotron/internal/domain"
)

// isInteractive reports whether stdout is a terminal, gating the wizard and
// the grid editor.
func isInteractive() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// wizardTheme returns a custom huh theme using the existing Gruvbox palette.
func wizardTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateRequired(label string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", label)
		}
		return nil
	}
}

func validateDate(s string) error {
	if _, err := time.Parse(dateLayout, s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// validatePercent accepts empty or a number between 0 and 100.
func validatePercent(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || v > 100 {
		return fmt.Errorf("enter a percentage between 0 and 100")
	}
	return nil
}

// validateOptionalMoney accepts empty or a non-negative number.
func validateOptionalMoney(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative amount")
	}
	return nil
}

func parseFloatOr(s string, fallback float64) float64 {
	if s == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return v
}

func currencyOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(domain.Currencies))
	for _, c := range domain.Currencies {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s %s", c.Code, c.Name), c.Code))
	}
	return opts
}

// runPlanWizard walks through plan creation interactively and returns the
// assembled plan, still unvalidated.
func runPlanWizard() (*domain.Plan, error) {
	var (
		name, start, deadline string
		unit                  = string(domain.UnitDays)
		ineff, cost           string
		margin, conting       string
		primary               = "EUR"
		secondary             string
	)

	secondaryOpts := append([]huh.Option[string]{huh.NewOption("None", "")}, currencyOptions()...)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Plan Name").
				Placeholder("Q1 Launch").
				Value(&name).
				Validate(validateRequired("plan name")),
			huh.NewInput().
				Title("Start Date").
				Placeholder("2026-01-01").
				Value(&start).
				Validate(validateDate),
			huh.NewInput().
				Title("Deadline").
				Placeholder("2026-06-30").
				Value(&deadline).
				Validate(validateDate),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Backlog Effort Unit").
				Options(
					huh.NewOption("Days", string(domain.UnitDays)),
					huh.NewOption("Months", string(domain.UnitMonths)),
					huh.NewOption("Hours", string(domain.UnitHours)),
				).
				Value(&unit),
			huh.NewInput().
				Title("Inefficiency Buffer (%)").
				Placeholder("0").
				Value(&ineff).
				Validate(validatePercent),
			huh.NewInput().
				Title("Default Monthly Cost").
				Placeholder("8000").
				Value(&cost).
				Validate(validateOptionalMoney),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Profit Margin (%)").
				Placeholder("0").
				Value(&margin).
				Validate(validatePercent),
			huh.NewInput().
				Title("Contingency (%)").
				Placeholder("0").
				Value(&conting).
				Validate(validatePercent),
			huh.NewSelect[string]().
				Title("Primary Currency").
				Options(currencyOptions()...).
				Value(&primary),
			huh.NewSelect[string]().
				Title("Secondary Currency").
				Options(secondaryOpts...).
				Value(&secondary),
		),
	).WithTheme(wizardTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return nil, err
	}

	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", start, err)
	}
	deadlineDate, err := time.Parse(dateLayout, deadline)
	if err != nil {
		return nil, fmt.Errorf("invalid deadline %q: %w", deadline, err)
	}
	effortUnit, err := domain.ParseEffortUnit(unit)
	if err != nil {
		return nil, err
	}
	ineffPct, err := domain.NewPercent(parseFloatOr(ineff, 0))
	if err != nil {
		return nil, err
	}
	marginPct, err := domain.NewPercent(parseFloatOr(margin, 0))
	if err != nil {
		return nil, err
	}
	contingPct, err := domain.NewPercent(parseFloatOr(conting, 0))
	if err != nil {
		return nil, err
	}

	return &domain.Plan{
		Name:               name,
		StartDate:          startDate,
		Deadline:           deadlineDate,
		Unit:               effortUnit,
		Inefficiency:       ineffPct,
		DefaultMonthlyCost: parseFloatOr(cost, 8000),
		Margin:             marginPct,
		Contingency:        contingPct,
		PrimaryCurrency:    primary,
		SecondaryCurrency:  secondary,
	}, nil
}

// wizardConfirm creates a huh form for a yes/no confirmation.
func wizardConfirm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(wizardTheme()).WithShowHelp(false)
}
