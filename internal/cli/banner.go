package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/finagent/internal/config"
	"github.com/agbru/finagent/internal/ui"
)

// DisplayBanner renders the startup banner with the application name and
// version inside a rounded border.
func DisplayBanner(out io.Writer, version string) {
	theme := ui.GetCurrentBannerTheme()

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Title).
		Render("Finance Agent System")
	subtitle := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(fmt.Sprintf("v%s · %s · %s", version, runtime.Version(), runtime.GOOS))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 2).
		Render(lipgloss.JoinVertical(lipgloss.Center, title, subtitle))

	fmt.Fprintln(out, box)
}

// PrintRunConfig displays the effective run parameters before the workflow
// starts.
//
// Parameters:
//   - cfg: The application configuration.
//   - symbol: The ticker the demonstration operates on.
//   - startDate, endDate: The inclusive data range.
//   - out: The writer for standard output.
func PrintRunConfig(cfg *config.Config, symbol, startDate, endDate string, out io.Writer) {
	fmt.Fprintf(out, "--- Run Configuration ---\n")
	fmt.Fprintf(out, "Symbol %s%s%s, range %s%s%s to %s%s%s.\n",
		ui.ColorBlue(), symbol, ui.ColorReset(),
		ui.ColorYellow(), startDate, ui.ColorReset(),
		ui.ColorYellow(), endDate, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%s%s, data directory %s%s%s.\n",
		ui.ColorGreen(), cfg.Environment(), ui.ColorReset(),
		ui.ColorGreen(), cfg.DataDir(), ui.ColorReset())
	fmt.Fprintf(out, "API key: %s.\n", config.MaskSecret(cfg.FinnhubAPIKey()))
}
