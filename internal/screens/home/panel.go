package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/derivio/internal/ui/theme"
)

// Block-letter title (same art as welcome/banner.go).
const panelTitleFull = ` ██████╗ ███████╗██████╗ ██╗██╗   ██╗██╗ ██████╗
 ██╔══██╗██╔════╝██╔══██╗██║██║   ██║██║██╔═══██╗
 ██║  ██║█████╗  ██████╔╝██║██║   ██║██║██║   ██║
 ██║  ██║██╔══╝  ██╔══██╗██║╚██╗ ██╔╝██║██║   ██║
 ██████╔╝███████╗██║  ██║██║ ╚████╔╝ ██║╚██████╔╝
 ╚═════╝ ╚══════╝╚═╝  ╚═╝╚═╝  ╚═══╝  ╚═╝ ╚═════╝`

const panelTitleCompact = "D · E · R · I · V · I · O"

// contentWidth returns the uniform inner width used for all sections.
// All boxes are rendered at this width so they visually align.
func contentWidth(frameWidth int) int {
	// Leave room for cabinet border (2) + inner padding (4)
	w := frameWidth - 6
	// Cap so it doesn't stretch absurdly wide
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Gold).
		Bold(true)

	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(style.Render(panelTitleCompact))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(panelTitleFull))
}

// renderStatsBar renders the learner's standing in a bordered box matching
// content width.
func renderStatsBar(level string, completed, score, cw int, compact bool) string {
	levelStyle := lipgloss.NewStyle().Foreground(theme.Gold).Bold(true)
	topicStyle := lipgloss.NewStyle().Foreground(theme.Cyan).Bold(true)
	scoreStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			levelStyle.Render(strings.ToUpper(level)),
			topicStyle.Render(fmt.Sprintf("✔%d", completed)),
			scoreStyle.Render(fmt.Sprintf("Σ%d", score)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			levelStyle.Render("★ "+strings.ToUpper(level)),
			topicStyle.Render(fmt.Sprintf("✔ %d TOPICS", completed)),
			scoreStyle.Render(fmt.Sprintf("Σ %d PTS", score)),
		)
	}

	// Wrap in a double-border box at the same content width
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Cyan).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderPlacementNote replaces the stats bar until the assessment is taken.
func renderPlacementNote(cw int) string {
	note := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Take the placement assessment to find your level")

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Cyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(note)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(items []string, selected, cw int) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Gold).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Gold).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderMenuCompact renders menu items as simple text lines (no borders)
// for very small terminals where bordered buttons would overflow.
func renderMenuCompact(items []string, selected, cw int) string {
	var lines []string
	for i, label := range items {
		var line string
		if i == selected {
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Gold).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}
	block := strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderLLMBanner renders a notice when no LLM API key is configured.
func renderLLMBanner(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ Set an LLM API key to enable the AI tutor (see derivio --help)")
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}

// renderCabinetFrame wraps content in a double-border cabinet frame,
// centering vertically and horizontally within the given dimensions.
func renderCabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).   // account for border chars
		Height(height - 2). // account for border chars
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
