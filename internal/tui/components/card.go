package components

import (
	"github.com/mmcdole/reel/internal/tui/styles"
)

// CardHeight is the rendered height of a card: border, title, subtitle, border
const CardHeight = 4

// RenderCard renders a bordered card exactly width cells wide
func RenderCard(title, subtitle string, width int, focused bool) string {
	style := styles.CardStyle
	titleStyle := styles.SubtitleStyle
	if focused {
		style = styles.CardFocusedStyle
		titleStyle = styles.TitleStyle
	}

	// Border (2) + horizontal padding (2)
	inner := max(width-4, 1)
	body := titleStyle.Render(styles.Truncate(title, inner)) + "\n" +
		styles.DimStyle.Render(styles.Truncate(subtitle, inner))

	// lipgloss Width includes padding but not the border
	return style.Width(max(width-2, 1)).Render(body)
}
