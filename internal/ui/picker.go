package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// ErrNotInteractive is returned when the picker cannot take over the terminal.
var ErrNotInteractive = errors.New("non-interactive terminal")

// PickerItem is one selectable preset.
type PickerItem struct {
	Label  string
	Active bool
}

// FilterValue returns the filterable text.
func (i PickerItem) FilterValue() string { return i.Label }

type pickerKeyMap struct {
	Select key.Binding
	Jump   key.Binding
	Filter key.Binding
	Quit   key.Binding
}

func newPickerKeyMap() pickerKeyMap {
	return pickerKeyMap{
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Jump:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "quick apply")),
		Filter: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q/esc", "quit")),
	}
}

func (k pickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Jump, k.Filter, k.Quit}
}

func (k pickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Select, k.Jump, k.Filter}, {k.Quit}}
}

type pickerDelegate struct {
	slot     lipgloss.Style
	title    lipgloss.Style
	selected lipgloss.Style
	active   lipgloss.Style
}

func newPickerDelegate(p Palette) pickerDelegate {
	if p.Disabled {
		plain := lipgloss.NewStyle()
		return pickerDelegate{slot: plain, title: plain, selected: plain.Bold(true), active: plain}
	}
	return pickerDelegate{
		slot:     lipgloss.NewStyle().Foreground(lipgloss.Color(string(p.Muted))),
		title:    lipgloss.NewStyle().Foreground(lipgloss.Color(string(p.Foreground))),
		selected: lipgloss.NewStyle().Foreground(lipgloss.Color(string(p.Primary))).Bold(true),
		active:   lipgloss.NewStyle().Foreground(lipgloss.Color(string(p.Success))),
	}
}

func (d pickerDelegate) Height() int { return 1 }

func (d pickerDelegate) Spacing() int { return 0 }

func (d pickerDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d pickerDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	pi, ok := item.(PickerItem)
	if !ok || m.Width() <= 0 {
		return
	}

	content := ansi.Truncate(pi.Label, max(8, m.Width()-12), "...")
	marker := ""
	if pi.Active {
		marker = " " + d.active.Render("(current)")
	}

	slot := d.slot.Render(fmt.Sprintf("%d.", index+1))
	if index == m.Index() && m.FilterState() != list.Filtering {
		fmt.Fprint(w, "> "+d.selected.Render(fmt.Sprintf("%d.", index+1))+" "+d.selected.Render(content)+marker) //nolint:errcheck
		return
	}
	fmt.Fprint(w, "  "+slot+" "+d.title.Render(content)+marker) //nolint:errcheck
}

type pickerModel struct {
	list     list.Model
	title    string
	subtitle string
	header   lipgloss.Style
	muted    lipgloss.Style
	help     help.Model
	keys     pickerKeyMap
	choice   int
	width    int
	height   int
}

func newPickerModel(title string, subtitle string, items []PickerItem, p Palette) pickerModel {
	listItems := make([]list.Item, len(items))
	selected := 0
	for i, item := range items {
		listItems[i] = item
		if item.Active {
			selected = i
		}
	}

	l := list.New(listItems, newPickerDelegate(p), 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	l.Select(selected)

	muted := lipgloss.NewStyle()
	header := lipgloss.NewStyle().Bold(true)
	helpModel := help.New()
	if !p.Disabled {
		muted = muted.Foreground(lipgloss.Color(string(p.Muted)))
		header = header.
			Foreground(lipgloss.Color(string(p.Background))).
			Background(lipgloss.Color(string(p.Primary))).
			Padding(0, 1)
		keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(string(p.Accent))).Bold(true)
		helpModel.Styles.ShortKey = keyStyle
		helpModel.Styles.ShortDesc = muted
		helpModel.Styles.FullKey = keyStyle
		helpModel.Styles.FullDesc = muted
		helpModel.Styles.Ellipsis = muted
	}

	return pickerModel{
		list:     l,
		title:    title,
		subtitle: subtitle,
		header:   header,
		muted:    muted,
		help:     helpModel,
		keys:     newPickerKeyMap(),
		choice:   -1,
	}
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeList()
	case tea.KeyPressMsg:
		filtering := m.list.FilterState() == list.Filtering
		switch msg.String() {
		case "enter":
			if filtering {
				break
			}
			if _, ok := m.list.SelectedItem().(PickerItem); ok {
				m.choice = m.list.GlobalIndex()
				return m, tea.Quit
			}
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			if !filtering && m.selectByNumber(msg.String()) {
				return m, tea.Quit
			}
		case "q", "esc":
			if !filtering {
				m.choice = -1
				return m, tea.Quit
			}
		case "ctrl+c":
			m.choice = -1
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *pickerModel) selectByNumber(keyNum string) bool {
	slot := int(keyNum[0] - '0')
	if slot < 1 || slot > len(m.list.Items()) {
		return false
	}
	m.list.Select(slot - 1)
	m.choice = slot - 1
	return true
}

func (m *pickerModel) resizeList() {
	width := m.width
	if width <= 0 {
		width = terminalWidth()
	}
	height := m.height
	if height <= 0 {
		height = 24
	}
	m.list.SetSize(max(20, width-4), max(3, height-6))
}

func (m pickerModel) View() tea.View {
	var b strings.Builder
	b.WriteString(m.header.Render(m.title))
	b.WriteString("\n")
	if m.subtitle != "" {
		b.WriteString(m.muted.Render(m.subtitle))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.list.View())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	v := tea.NewView(b.String())
	v.AltScreen = true
	return v
}

// RunPicker shows items in a full-screen list and returns the chosen index,
// or -1 when the user quits.
func RunPicker(title string, subtitle string, items []PickerItem, p Palette) (int, error) {
	if !IsInteractiveTerminal() {
		return -1, ErrNotInteractive
	}
	if len(items) == 0 {
		return -1, nil
	}
	model := newPickerModel(title, subtitle, items, p)
	result, err := tea.NewProgram(model).Run()
	if err != nil {
		return -1, err
	}
	if final, ok := result.(pickerModel); ok {
		return final.choice, nil
	}
	return -1, nil
}
