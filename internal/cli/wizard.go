package cli

import (
	"fmt"

	"github.com/alexanderramin/horizon/internal/app"
	"github.com/alexanderramin/horizon/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// horizonHuhTheme returns a huh theme matching the dashboard palette.
func horizonHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// streamOptions labels each stream with its manager and product count.
func streamOptions(streams []app.ValueStreamSummary) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(streams))
	for _, vs := range streams {
		label := fmt.Sprintf("%s (%s, %s)", vs.Name, formatter.ManagerName(vs.Manager), formatter.Plural(vs.ProductCount, "product"))
		options = append(options, huh.NewOption(label, vs.ID))
	}
	return options
}

// productOptions lists the products of the given streams in display order.
// withStream prefixes each label with the stream's short name.
func productOptions(streams []app.ValueStreamSummary, withStream bool) []huh.Option[string] {
	var options []huh.Option[string]
	for _, vs := range streams {
		for _, ps := range vs.Products {
			label := fmt.Sprintf("%s [%s]", ps.Product.Name, ps.Product.Horizon)
			if withStream {
				label = vs.ShortName + " / " + label
			}
			options = append(options, huh.NewOption(label, ps.Product.ID))
		}
	}
	return options
}

// wizardSelectStream creates a huh form to pick a value stream. It returns
// nil when there is nothing to pick.
func wizardSelectStream(streams []app.ValueStreamSummary, result *string) *huh.Form {
	if len(streams) == 0 {
		return nil
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which Value Stream?").
				Options(streamOptions(streams)...).
				Value(result),
		),
	).WithTheme(horizonHuhTheme()).WithShowHelp(false)
}

// wizardSelectProduct creates a huh form to pick a product from streams.
// It returns nil when the streams hold no products.
func wizardSelectProduct(result *string, streams ...app.ValueStreamSummary) *huh.Form {
	options := productOptions(streams, len(streams) > 1)
	if len(options) == 0 {
		return nil
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which Product?").
				Options(options...).
				Value(result),
		),
	).WithTheme(horizonHuhTheme()).WithShowHelp(false)
}
