package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lifo-cli/lifo/key"
	"github.com/lifo-cli/lifo/script"
	"github.com/lifo-cli/lifo/style"
	"github.com/lifo-cli/lifo/util"
	"github.com/muesli/reflow/wrap"
	"github.com/spf13/viper"
)

var paddingStyle = lipgloss.NewStyle().Padding(1, 2)

// reservedRows is the vertical space taken by everything but the stack listing.
const reservedRows = maxResults + 10

func (b *statefulBubble) View() string {
	lines := []string{
		style.Title("lifo") + " " + style.Faint(util.Quantify(b.stack.Len(), "element", "elements")),
		"",
	}

	lines = append(lines, b.viewStack()...)
	lines = append(lines, "")

	for _, r := range b.results {
		if r.Err() != nil {
			lines = append(lines, style.Fg(style.ErrorColor)(r.String()))
		} else {
			lines = append(lines, r.String())
		}
	}

	if b.lastError != nil {
		lines = append(lines, style.ErrorTitle("Error")+" "+style.Fg(style.ErrorColor)(b.lastError.Error()))
	}

	lines = append(lines, "", b.inputC.View())
	if suggestion, ok := b.suggestion.Get(); ok {
		lines = append(lines, style.Faint("tab: "+suggestion))
	}
	lines = append(lines, "", b.helpC.View(b.keymap))

	content := wrap.String(strings.Join(lines, "\n"), b.width-4)
	return b.notifier.View(paddingStyle.Render(content))
}

// viewStack lists the elements top first, trimmed to the rows available.
func (b *statefulBubble) viewStack() []string {
	items := b.stack.Items()
	if len(items) == 0 {
		return []string{style.Faint("(empty)")}
	}

	shown := len(items)
	if b.height > 0 {
		shown = util.Min(shown, b.height-reservedRows)
		if shown < 1 {
			shown = 1
		}
	}

	showIndices := viper.GetBool(key.TUIShowIndices)
	lines := make([]string, 0, shown+1)
	for i, v := range items[:shown] {
		line := script.Format(v)
		if showIndices {
			line = style.Fg(style.FaintColor)(fmt.Sprintf("%3d ", i)) + line
		}
		if i == 0 {
			line += " " + style.Fg(style.AccentColor)("← top")
		}
		lines = append(lines, line)
	}

	if hidden := len(items) - shown; hidden > 0 {
		lines = append(lines, style.Faint(fmt.Sprintf("    … %s below", util.Quantify(hidden, "element", "elements"))))
	}
	return lines
}
