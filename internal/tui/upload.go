package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/neutech/estates/internal/model"
	"github.com/neutech/estates/internal/refdata"
	"github.com/neutech/estates/internal/service"
	"github.com/neutech/estates/internal/tui/themes"
)

// Messages shown inline by the upload form.
const (
	MsgUploadIncomplete   = "Please fill in all required fields and upload an image."
	MsgUploadSuccess      = "Property uploaded successfully!"
	MsgInvalidPrice       = "Price must be a non-negative whole number."
	MsgGenerateNeedsInput = "Please fill in Title, State, and Features before generating a description."

	// DefaultDescription fills in when the field is left empty.
	DefaultDescription = "No description provided."
)

// Form focus order.
const (
	fTitle = iota
	fType
	fCategory
	fState
	fLGA
	fPrice
	fAddress
	fFeatures
	fImage
	fDescription
	fSubmit
	formFields
)

// uploadModel is the new-listing form. Text fields are bubbles inputs;
// type, category, state, and LGA are cycled selectors over the same
// reference data the filters use.
type uploadModel struct {
	theme themes.Theme
	keys  KeyMap

	title    textinput.Model
	price    textinput.Model
	address  textinput.Model
	features textinput.Model
	image    textinput.Model
	desc     textarea.Model
	spin     spinner.Model

	propType model.PropertyType
	category model.PropertyCategory
	state    string
	lga      string

	contactPhone string
	focus        int
	generation   int
	generating   bool
	errMsg       string
	notice       string
}

func newUploadModel(theme themes.Theme, keys KeyMap, contactPhone string) uploadModel {
	mk := func(placeholder string, limit int) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = limit
		ti.Width = 48
		return ti
	}

	desc := textarea.New()
	desc.Placeholder = "Describe the property, or press Ctrl+G to generate"
	desc.SetWidth(60)
	desc.SetHeight(4)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.StatusInfo

	m := uploadModel{
		theme:        theme,
		keys:         keys,
		title:        mk("e.g. 4 Bedroom Duplex in Lekki", 120),
		price:        mk("Price in naira, e.g. 45000000", 15),
		address:      mk("Street address", 160),
		features:     mk("Comma-separated, e.g. Borehole, Fitted Kitchen", 240),
		image:        mk("Path to the listing photo", 200),
		desc:         desc,
		spin:         sp,
		propType:     model.TypeSale,
		category:     model.CategoryHouse,
		contactPhone: contactPhone,
	}
	m.title.Focus()
	return m
}

// typing reports whether a text field currently has focus, so the root
// model knows to withhold single-letter shortcuts.
func (m uploadModel) typing() bool {
	switch m.focus {
	case fTitle, fPrice, fAddress, fFeatures, fImage, fDescription:
		return true
	}
	return false
}

func (m uploadModel) Update(msg tea.Msg) (uploadModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case descriptionReadyMsg:
		m.generating = false
		m.desc.SetValue(msg.text)
		return m, nil
	case listingAddedMsg:
		if msg.err != nil {
			m.errMsg = "Could not save the listing. Please try again."
			return m, nil
		}
		m.notice = MsgUploadSuccess
		m.reset()
		m.generation++
		return m, uploadNavigateCmd(m.generation)
	case spinner.TickMsg:
		if !m.generating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m uploadModel) updateKey(msg tea.KeyMsg) (uploadModel, tea.Cmd) {
	switch msg.String() {
	case "tab":
		m.setFocus((m.focus + 1) % formFields)
		return m, nil
	case "shift+tab":
		m.setFocus((m.focus + formFields - 1) % formFields)
		return m, nil
	case "ctrl+g":
		return m.startGenerate()
	case "down":
		if m.focus != fDescription {
			m.setFocus((m.focus + 1) % formFields)
			return m, nil
		}
	case "up":
		if m.focus != fDescription {
			m.setFocus((m.focus + formFields - 1) % formFields)
			return m, nil
		}
	case "left", "right":
		if m.cycleSelector(msg.String() == "right") {
			return m, nil
		}
	case "enter":
		if m.focus == fSubmit {
			return m.submit()
		}
		if m.focus != fDescription {
			m.setFocus((m.focus + 1) % formFields)
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case fTitle:
		m.title, cmd = m.title.Update(msg)
	case fPrice:
		m.price, cmd = m.price.Update(msg)
	case fAddress:
		m.address, cmd = m.address.Update(msg)
	case fFeatures:
		m.features, cmd = m.features.Update(msg)
	case fImage:
		m.image, cmd = m.image.Update(msg)
	case fDescription:
		m.desc, cmd = m.desc.Update(msg)
	}
	return m, cmd
}

func (m *uploadModel) setFocus(focus int) {
	m.title.Blur()
	m.price.Blur()
	m.address.Blur()
	m.features.Blur()
	m.image.Blur()
	m.desc.Blur()

	m.focus = focus
	switch focus {
	case fTitle:
		m.title.Focus()
	case fPrice:
		m.price.Focus()
	case fAddress:
		m.address.Focus()
	case fFeatures:
		m.features.Focus()
	case fImage:
		m.image.Focus()
	case fDescription:
		m.desc.Focus()
	}
}

// cycleSelector advances the focused selector field and reports whether
// the key was consumed.
func (m *uploadModel) cycleSelector(forward bool) bool {
	delta := 1
	if !forward {
		delta = -1
	}
	switch m.focus {
	case fType:
		opts := model.ValidTypes()
		m.propType = opts[cycleIndex(len(opts), indexOf(opts, m.propType), delta)]
	case fCategory:
		opts := model.ValidCategories()
		m.category = opts[cycleIndex(len(opts), indexOf(opts, m.category), delta)]
	case fState:
		opts := refdata.StateNames()
		next := opts[0]
		if m.state != "" {
			next = opts[cycleIndex(len(opts), indexOf(opts, m.state), delta)]
		}
		if next != m.state {
			m.state = next
			m.lga = ""
		}
	case fLGA:
		if m.state == "" {
			return true
		}
		opts := refdata.LGAs(m.state)
		if m.lga == "" {
			m.lga = opts[0]
		} else {
			m.lga = opts[cycleIndex(len(opts), indexOf(opts, m.lga), delta)]
		}
	default:
		return false
	}
	return true
}

// startGenerate kicks off the AI description call. The provider needs
// something to write about, so the details it prompts with must be filled
// in first; otherwise only a local message is shown and no call is made.
func (m uploadModel) startGenerate() (uploadModel, tea.Cmd) {
	if m.generating {
		return m, nil
	}

	title := strings.TrimSpace(m.title.Value())
	features := strings.TrimSpace(m.features.Value())
	if title == "" || m.state == "" || features == "" {
		m.errMsg = MsgGenerateNeedsInput
		return m, nil
	}

	m.generating = true
	m.errMsg = ""
	req := service.DescriptionRequest{
		Title:    title,
		Type:     string(m.propType),
		Location: strings.TrimSpace(strings.Trim(m.lga+", "+m.state, ", ")),
		Features: features,
	}
	return m, tea.Batch(m.spin.Tick, func() tea.Msg {
		return generateDescriptionMsg{
			title:    req.Title,
			propType: req.Type,
			location: req.Location,
			features: req.Features,
		}
	})
}

// submit validates the form and emits the new listing. Inputs are left
// intact on validation failure so the user can correct them.
func (m uploadModel) submit() (uploadModel, tea.Cmd) {
	m.notice = ""

	title := strings.TrimSpace(m.title.Value())
	address := strings.TrimSpace(m.address.Value())
	image := strings.TrimSpace(m.image.Value())
	priceRaw := strings.TrimSpace(m.price.Value())

	if title == "" || m.state == "" || m.lga == "" || priceRaw == "" || image == "" {
		m.errMsg = MsgUploadIncomplete
		return m, nil
	}

	price, err := strconv.ParseInt(priceRaw, 10, 64)
	if err != nil || price < 0 {
		m.errMsg = MsgInvalidPrice
		return m, nil
	}

	description := strings.TrimSpace(m.desc.Value())
	if description == "" {
		description = DefaultDescription
	}

	now := time.Now()
	property := model.Property{
		ID:           model.NewListingID(now),
		CreatedAt:    now,
		Title:        title,
		Description:  description,
		Price:        price,
		Type:         m.propType,
		Category:     m.category,
		ImageRef:     image,
		ContactPhone: m.contactPhone,
		Features:     splitFeatures(m.features.Value()),
		Location: model.Location{
			State:   m.state,
			LGA:     m.lga,
			Address: address,
		},
	}
	m.errMsg = ""
	return m, func() tea.Msg { return addListingMsg{property: property} }
}

func (m *uploadModel) reset() {
	m.title.SetValue("")
	m.price.SetValue("")
	m.address.SetValue("")
	m.features.SetValue("")
	m.image.SetValue("")
	m.desc.SetValue("")
	m.propType = model.TypeSale
	m.category = model.CategoryHouse
	m.state = ""
	m.lga = ""
	m.errMsg = ""
	m.setFocus(fTitle)
}

func splitFeatures(raw string) []string {
	var features []string
	for _, f := range strings.Split(raw, ",") {
		if f = strings.TrimSpace(f); f != "" {
			features = append(features, f)
		}
	}
	return features
}

func (m uploadModel) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("Upload a Property"))
	b.WriteString("\n")

	b.WriteString(m.renderField(fTitle, "Title *", m.title.View()))
	b.WriteString(m.renderField(fType, "Type", selectorView(string(m.propType))))
	b.WriteString(m.renderField(fCategory, "Category", selectorView(string(m.category))))
	b.WriteString(m.renderField(fState, "State *", selectorView(orPlaceholder(m.state, "select a state"))))
	b.WriteString(m.renderField(fLGA, "LGA *", selectorView(orPlaceholder(m.lga, "select an LGA"))))
	b.WriteString(m.renderField(fPrice, "Price (₦) *", m.price.View()))
	b.WriteString(m.renderField(fAddress, "Address", m.address.View()))
	b.WriteString(m.renderField(fFeatures, "Features", m.features.View()))
	b.WriteString(m.renderField(fImage, "Image *", m.image.View()))

	descView := m.desc.View()
	if m.generating {
		descView = m.spin.View() + " Generating description..."
	}
	b.WriteString(m.renderField(fDescription, "Description", descView))

	submit := " Submit Listing "
	if m.focus == fSubmit {
		b.WriteString(m.theme.Selected.Render(submit))
	} else {
		b.WriteString(m.theme.Highlighted.Render(submit))
	}
	b.WriteString("\n\n")

	if m.errMsg != "" {
		b.WriteString(m.theme.StatusError.Render(m.errMsg))
		b.WriteString("\n")
	}
	if m.notice != "" {
		b.WriteString(m.theme.StatusSuccess.Render(m.notice))
		b.WriteString("\n")
	}
	b.WriteString(m.theme.Subtitle.Render("Tab to move between fields · ←/→ to change selections · Ctrl+G for AI description"))
	b.WriteString("\n")
	return b.String()
}

func (m uploadModel) renderField(focus int, label, body string) string {
	style := m.theme.Normal
	if m.focus == focus {
		style = m.theme.Bold.Foreground(m.theme.Primary)
	}
	return style.Render(label) + "\n" + body + "\n"
}

func selectorView(value string) string {
	return "◀ " + value + " ▶"
}

func orPlaceholder(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}

func cycleIndex(n, idx, delta int) int {
	if n == 0 {
		return 0
	}
	return (idx + delta + n) % n
}

func indexOf[T comparable](opts []T, v T) int {
	for i, o := range opts {
		if o == v {
			return i
		}
	}
	return 0
}
