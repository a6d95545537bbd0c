package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	schema "github.com/lukateras/go-concordium-schema"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	contractStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type browserState int

const (
	stateList browserState = iota
	stateDetail
)

type browserModel struct {
	mod      *schema.Module
	source   string
	filter   textinput.Model
	names    []string
	filtered []string
	selected int
	state    browserState
}

func runInteractive(source string, mod *schema.Module) error {
	filter := textinput.New()
	filter.Placeholder = "filter contracts"
	filter.Focus()

	m := browserModel{
		mod:    mod,
		source: source,
		filter: filter,
		names:  contractNames(mod),
	}
	m.filtered = m.names

	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m browserModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		if m.state == stateDetail {
			m.state = stateList
			return m, nil
		}
		return m, tea.Quit
	case "up":
		if m.state == stateList && m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "down":
		if m.state == stateList && m.selected < len(m.filtered)-1 {
			m.selected++
		}
		return m, nil
	case "enter":
		if m.state == stateList && len(m.filtered) > 0 {
			m.state = stateDetail
		}
		return m, nil
	}

	if m.state != stateList {
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.refilter()
	return m, cmd
}

func (m *browserModel) refilter() {
	needle := strings.ToLower(m.filter.Value())
	filtered := make([]string, 0, len(m.names))
	for _, name := range m.names {
		if strings.Contains(strings.ToLower(name), needle) {
			filtered = append(filtered, name)
		}
	}
	m.filtered = filtered
	if m.selected >= len(m.filtered) {
		m.selected = max(len(m.filtered)-1, 0)
	}
}

func (m browserModel) View() string {
	if m.state == stateDetail {
		return m.detailView()
	}
	return m.listView()
}

func (m browserModel) listView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Schema: " + m.source))
	b.WriteString("\n\n")
	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	if len(m.filtered) == 0 {
		b.WriteString(helpStyle.Render("no matching contracts"))
		b.WriteByte('\n')
	}
	for i, name := range m.filtered {
		line := fmt.Sprintf("%s (%d entry points)", name, len(m.mod.Contracts[name].Receive))
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString(contractStyle.Render("  " + line))
		}
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ select • enter details • esc quit"))
	b.WriteByte('\n')
	return b.String()
}

func (m browserModel) detailView() string {
	name := m.filtered[m.selected]
	contract := m.mod.Contracts[name]

	var b strings.Builder
	b.WriteString(titleStyle.Render("Contract: " + name))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("state"))
	b.WriteString("   " + typeStyle.Render(schema.FormatType(contract.State)))
	b.WriteByte('\n')
	b.WriteString(labelStyle.Render("init"))
	b.WriteString("    " + typeStyle.Render(schema.FormatType(contract.Init)))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("receive"))
	b.WriteByte('\n')
	if len(contract.Receive) == 0 {
		b.WriteString(helpStyle.Render("  none"))
		b.WriteByte('\n')
	}
	entries := make([]string, 0, len(contract.Receive))
	for entry := range contract.Receive {
		entries = append(entries, entry)
	}
	sort.Strings(entries)
	for _, entry := range entries {
		b.WriteString("  " + contractStyle.Render(entry))
		b.WriteString("(" + typeStyle.Render(schema.FormatType(contract.Receive[entry])) + ")")
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("esc back • ctrl+c quit"))
	b.WriteByte('\n')
	return b.String()
}
