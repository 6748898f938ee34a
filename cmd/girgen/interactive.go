package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/girkit/girgen/gir"
)

type modelState int

const (
	stateList modelState = iota
	stateDetail
	stateFilter
)

type inspectorModel struct {
	env      *gir.Env
	all      []lowered
	visible  []int
	filter   textinput.Model
	selected int
	state    modelState
}

func newInspectorModel(env *gir.Env, results []lowered) *inspectorModel {
	ti := textinput.New()
	ti.Placeholder = "function name"
	ti.Prompt = "/ "
	ti.Width = 40

	m := &inspectorModel{
		env:    env,
		all:    results,
		filter: ti,
	}
	m.applyFilter("")
	return m
}

func (m *inspectorModel) applyFilter(query string) {
	m.visible = m.visible[:0]
	for i := range m.all {
		if query == "" || strings.Contains(m.all[i].fn.Name, query) {
			m.visible = append(m.visible, i)
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = 0
	}
}

func (m *inspectorModel) Init() tea.Cmd {
	return nil
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.state == stateFilter {
		switch keyMsg.String() {
		case "enter", "esc":
			m.state = stateList
			m.filter.Blur()
		case "ctrl+c":
			return m, tea.Quit
		default:
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			m.applyFilter(m.filter.Value())
			return m, cmd
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		if m.state == stateList && m.selected > 0 {
			m.selected--
		}

	case "down", "j":
		if m.state == stateList && m.selected < len(m.visible)-1 {
			m.selected++
		}

	case "/":
		if m.state == stateList {
			m.state = stateFilter
			m.filter.Focus()
		}

	case "enter":
		if m.state == stateList && len(m.visible) > 0 {
			m.state = stateDetail
		}

	case "esc":
		if m.state == stateDetail {
			m.state = stateList
		}
	}

	return m, nil
}

func (m *inspectorModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("girgen inspector"))
	b.WriteString("\n\n")

	switch m.state {
	case stateList, stateFilter:
		if m.state == stateFilter {
			b.WriteString(m.filter.View())
			b.WriteString("\n\n")
		}
		if len(m.visible) == 0 {
			b.WriteString(errorStyle.Render("no functions match"))
			b.WriteString("\n")
		}
		for i, idx := range m.visible {
			r := &m.all[idx]
			line := surfaceSignature(m.env, &r.fn, r.params)
			if i == m.selected && m.state == stateList {
				b.WriteString(selectedStyle.Render("> ") + line)
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter inspect • / filter • q quit"))

	case stateDetail:
		r := &m.all[m.visible[m.selected]]
		b.WriteString(renderFunction(m.env, &r.fn, r.params))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("esc back • q quit"))
	}

	return b.String()
}

func runInteractive(env *gir.Env, results []lowered) error {
	p := tea.NewProgram(newInspectorModel(env, results), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
