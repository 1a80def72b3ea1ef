package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/accommodate/internal/settings"
)

// View renders the panel anchored to the widget edge, with the shortcut
// dialog on top when it is open.
func (m Model) View() string {
	if m.quit {
		return ""
	}
	tree := m.store.Get()

	body := m.renderPanel(tree)
	if tree.UI.KeyboardDialogOpen {
		body = m.renderDialog()
	}

	align := lipgloss.Right
	if tree.Widget.Position == settings.PositionLeft {
		align = lipgloss.Left
	}
	return lipgloss.PlaceHorizontal(m.width, align, body)
}

func (m Model) renderPanel(tree settings.Tree) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.t("widget.title")))

	section := ""
	for i, r := range m.rows {
		if r.section != section {
			section = r.section
			b.WriteString("\n")
			b.WriteString(sectionStyle.Render(m.t("sections." + section)))
		}
		b.WriteString("\n")
		b.WriteString(m.renderRow(r, tree, i == m.cursor))
	}

	b.WriteString("\n\n")
	b.WriteString(m.positionHint(tree))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return panelStyle.Render(b.String())
}

func (m Model) renderRow(r row, tree settings.Tree, selected bool) string {
	var label string
	switch r.kind {
	case choiceRow:
		label = m.t("accommodations."+r.path) + ": " + m.t("values."+r.value)
	case profileRow:
		label = m.t(r.path)
	default:
		label = m.t("accommodations." + r.path)
	}

	mark := "[ ]"
	if r.active(tree) {
		mark = activeStyle.Render("[x]")
	}
	line := mark + " " + label
	if selected {
		return selectedItemStyle.Render(line)
	}
	return itemStyle.Render(line)
}

func (m Model) positionHint(tree settings.Tree) string {
	if tree.Widget.Position == settings.PositionLeft {
		return m.t("widget.position.right")
	}
	return m.t("widget.position.left")
}

func (m Model) renderDialog() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.t("shortcuts.title")))
	for _, s := range m.chrome.Shortcuts() {
		b.WriteString("\n")
		b.WriteString(activeStyle.Render(strings.Join(s.Keys, " / ")))
		b.WriteString("  ")
		b.WriteString(s.Label)
	}
	return dialogStyle.Render(b.String())
}
