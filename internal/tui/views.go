package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/neutech/estates/internal/cli"
)

var viewTitles = map[View]string{
	ViewHome:     "Home",
	ViewListings: "Listings",
	ViewUpload:   "Upload",
	ViewContact:  "Contact",
	ViewAdmin:    "Admin",
}

// View renders the header, the active screen, and the footer.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.view {
	case ViewHome:
		b.WriteString(m.viewHome())
	case ViewListings:
		b.WriteString(m.listings.View())
	case ViewUpload:
		b.WriteString(m.upload.View())
	case ViewContact:
		b.WriteString(m.viewContact())
	case ViewAdmin:
		b.WriteString(m.adminView.View())
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.StatusError.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderHeader() string {
	brand := m.theme.Title.Render("Neutech Estates")

	order := []View{ViewHome, ViewListings, ViewUpload, ViewContact, ViewAdmin}
	tabs := make([]string, 0, len(order))
	for i, v := range order {
		label := fmt.Sprintf("%d %s", i+1, viewTitles[v])
		if v == m.view {
			tabs = append(tabs, m.theme.TabActive.Render(label))
		} else {
			tabs = append(tabs, m.theme.TabInactive.Render(label))
		}
	}
	return brand + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewHome() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("Find your next property"))
	b.WriteString("\n")
	b.WriteString(m.theme.Normal.Render(
		"Browse houses, land, and commercial property across Nigeria,\n" +
			"or upload a listing of your own."))
	b.WriteString("\n\n")

	state := m.homeState
	if state == "" {
		state = "All states"
	}
	b.WriteString(m.theme.BorderedBox.Render(strings.Join([]string{
		m.theme.Bold.Render("Quick search"),
		"",
		"Where are you looking?  " + m.theme.Selected.Render(" ◀ "+state+" ▶ "),
		m.theme.Subtitle.Render("←/→ to pick a state · Enter to see listings"),
	}, "\n")))
	b.WriteString("\n\n")

	b.WriteString(m.theme.BorderedBox.Render(strings.Join([]string{
		m.theme.Bold.Render("Getting started"),
		"",
		"2  browse and filter the current listings",
		"3  upload a new property",
		"4  reach the Neutech team",
		"5  admin dashboard (access code required)",
	}, "\n")))
	b.WriteString("\n\n")

	count := len(m.listings.all)
	b.WriteString(m.theme.Subtitle.Render(fmt.Sprintf("%d listings available right now", count)))
	b.WriteString("\n")

	for i, p := range m.listings.all {
		if i == 3 {
			break
		}
		b.WriteString(m.theme.Normal.Render(fmt.Sprintf("  • %s · %s · %s, %s",
			p.Title, cli.FormatNaira(p.Price), p.Location.LGA, p.Location.State)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewContact() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("Contact Neutech"))
	b.WriteString("\n")
	b.WriteString(m.theme.RoundedBox.Render(strings.Join([]string{
		m.theme.Bold.Render("Neutech Estates"),
		"",
		"Email: " + m.cfg.AdminEmail,
		"Phone: " + m.cfg.AdminPhone,
		"",
		m.theme.Subtitle.Render("Mon-Sat, 9am to 6pm WAT"),
	}, "\n")))
	b.WriteString("\n")
	return b.String()
}
