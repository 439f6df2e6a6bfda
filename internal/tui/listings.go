package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/neutech/estates/internal/cli"
	"github.com/neutech/estates/internal/filter"
	"github.com/neutech/estates/internal/model"
	"github.com/neutech/estates/internal/refdata"
	"github.com/neutech/estates/internal/tui/themes"
)

// Filter selector positions, plus the result list as the final focus stop.
const (
	focusState = iota
	focusLGA
	focusType
	focusCategory
	focusResults
)

const anyOption = "Any"

// listingsModel is the browse screen: four filter selectors over the
// shared reference data and the matching listing cards beneath them.
type listingsModel struct {
	theme    themes.Theme
	keys     KeyMap
	all      []model.Property
	criteria filter.Criteria
	focus    int
	cursor   int
	width    int
}

func newListingsModel(theme themes.Theme, keys KeyMap) listingsModel {
	return listingsModel{theme: theme, keys: keys}
}

// setListings replaces the backing collection, clamping the cursor so it
// stays on a real row after deletions.
func (m *listingsModel) setListings(listings []model.Property) {
	m.all = listings
	if visible := len(m.filtered()); m.cursor >= visible {
		m.cursor = max(0, visible-1)
	}
}

// selected returns the listing under the cursor, or nil when the filtered
// view is empty.
func (m *listingsModel) selected() *model.Property {
	visible := m.filtered()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return nil
	}
	return &visible[m.cursor]
}

func (m *listingsModel) filtered() []model.Property {
	return filter.Apply(m.all, m.criteria)
}

func (m listingsModel) Update(msg tea.KeyMsg) (listingsModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextItem):
		m.focus = (m.focus + 1) % (focusResults + 1)
	case key.Matches(msg, m.keys.PrevItem):
		m.focus = (m.focus + focusResults) % (focusResults + 1)
	case key.Matches(msg, m.keys.Up):
		if m.focus == focusResults {
			if m.cursor > 0 {
				m.cursor--
			}
		} else {
			m.cycleFocused(-1)
		}
	case key.Matches(msg, m.keys.Down):
		if m.focus == focusResults {
			if m.cursor < len(m.filtered())-1 {
				m.cursor++
			}
		} else {
			m.cycleFocused(1)
		}
	case key.Matches(msg, m.keys.ClearAll):
		m.criteria = filter.Criteria{}
		m.cursor = 0
	}
	return m, nil
}

// cycleFocused steps the focused selector through its options, wrapping at
// both ends. Option index 0 is always the "Any" wildcard.
func (m *listingsModel) cycleFocused(delta int) {
	switch m.focus {
	case focusState:
		opts := refdata.StateNames()
		next := cycleOption(opts, m.criteria.State, delta)
		if next != m.criteria.State {
			m.criteria.State = next
			// An LGA only means anything within its own state.
			m.criteria.LGA = ""
		}
	case focusLGA:
		if m.criteria.State == "" {
			return
		}
		opts := refdata.LGAs(m.criteria.State)
		m.criteria.LGA = cycleOption(opts, m.criteria.LGA, delta)
	case focusType:
		opts := make([]string, 0, 2)
		for _, t := range model.ValidTypes() {
			opts = append(opts, string(t))
		}
		m.criteria.Type = model.PropertyType(cycleOption(opts, string(m.criteria.Type), delta))
	case focusCategory:
		opts := make([]string, 0, 3)
		for _, c := range model.ValidCategories() {
			opts = append(opts, string(c))
		}
		m.criteria.Category = model.PropertyCategory(cycleOption(opts, string(m.criteria.Category), delta))
	}
	m.cursor = 0
}

// cycleOption moves through ["Any", opts...] and returns the new value,
// where the empty string stands for "Any".
func cycleOption(opts []string, current string, delta int) string {
	idx := 0
	for i, o := range opts {
		if o == current {
			idx = i + 1
			break
		}
	}
	n := len(opts) + 1
	idx = (idx + delta + n) % n
	if idx == 0 {
		return ""
	}
	return opts[idx-1]
}

func (m listingsModel) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("Browse Listings"))
	b.WriteString("\n")
	b.WriteString(m.renderFilters())
	b.WriteString("\n\n")

	visible := m.filtered()
	b.WriteString(m.theme.Subtitle.Render(fmt.Sprintf("%d of %d listings", len(visible), len(m.all))))
	b.WriteString("\n")

	if len(visible) == 0 {
		b.WriteString(m.theme.StatusPending.Render("No listings match the selected filters."))
		b.WriteString("\n")
		return b.String()
	}

	for i, p := range visible {
		b.WriteString(m.renderCard(p, m.focus == focusResults && i == m.cursor))
		b.WriteString("\n")
	}
	return b.String()
}

func (m listingsModel) renderFilters() string {
	labels := []struct {
		name  string
		value string
		focus int
	}{
		{"State", m.criteria.State, focusState},
		{"LGA", m.criteria.LGA, focusLGA},
		{"Type", string(m.criteria.Type), focusType},
		{"Category", string(m.criteria.Category), focusCategory},
	}

	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		value := l.value
		if value == "" {
			value = anyOption
		}
		cell := fmt.Sprintf("%s: %s", l.name, value)
		if m.focus == l.focus {
			parts = append(parts, m.theme.Selected.Render(" "+cell+" "))
		} else {
			parts = append(parts, m.theme.Normal.Render(" "+cell+" "))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m listingsModel) renderCard(p model.Property, selected bool) string {
	var b strings.Builder

	b.WriteString(m.theme.Bold.Render(p.Title))
	b.WriteString("  ")
	b.WriteString(m.theme.StatusSuccess.Render(cli.FormatNaira(p.Price)))
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render(
		fmt.Sprintf("%s | %s | %s, %s", p.Type, p.Category, p.Location.LGA, p.Location.State)))
	b.WriteString("\n")
	b.WriteString(m.theme.Normal.Render(p.Description))
	b.WriteString("\n")
	if len(p.Features) > 0 {
		b.WriteString(m.theme.Normal.Render("Features: " + strings.Join(p.Features, ", ")))
		b.WriteString("\n")
	}
	b.WriteString(m.theme.Subtitle.Render(
		fmt.Sprintf("%s · Listed %s · %s", p.Location.Address, cli.FormatDate(p.CreatedAt), p.ContactPhone)))

	box := m.theme.RoundedBox
	if selected {
		box = box.BorderForeground(m.theme.Primary)
	}
	return box.Render(b.String())
}
