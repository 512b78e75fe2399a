package tui

import (
	"fmt"
	"strings"
)

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	width := m.width
	if width <= 0 || width > 100 {
		width = 100
	}
	cardWidth := width - 6

	if len(m.articles) == 0 {
		b.WriteString(mutedStyle.Render("No articles yet."))
		b.WriteString("\n")
	} else {
		article := m.articles[m.index]

		var card strings.Builder
		card.WriteString(titleStyle.Width(cardWidth).Render(article.Title))
		card.WriteString("\n")
		card.WriteString(sourceStyle.Render(article.Source))
		card.WriteString("\n")
		card.WriteString(summaryStyle.Width(cardWidth).Render(article.Summary))

		if m.showOriginal && article.OriginalTitle != "" {
			card.WriteString("\n\n")
			card.WriteString(mutedStyle.Width(cardWidth).Render("Original title: " + article.OriginalTitle))
		}

		card.WriteString("\n\n")
		card.WriteString(mutedStyle.Render(fmt.Sprintf("%d min read  •  %d/%d",
			article.ReadTimeMinutes, m.index+1, len(m.articles))))

		b.WriteString(cardStyle.Render(card.String()))
		b.WriteString("\n")
	}

	if m.loading {
		b.WriteString(mutedStyle.Render("Loading..."))
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg + " (press enter to retry)"))
		b.WriteString("\n")
	}

	b.WriteString(mutedStyle.Render("j/k move  •  o original title  •  r refresh  •  u update  •  q quit"))

	return b.String()
}
