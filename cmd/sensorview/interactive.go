package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	carlaserde "github.com/Eclipse-SDV-Hackathon-Chapter-Three/carla-data-serde"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	recordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type recordInfo struct {
	preview string
	full    string
	err     error
	size    int
}

type interactiveModel struct {
	err      error
	filename string
	kind     string
	codec    carlaserde.Codec
	decode   func(carlaserde.Codec, []byte) (any, error)
	records  []recordInfo
	selected int
	full     bool
	view     viewport.Model
	width    int
	height   int
	state    modelState
}

type modelState int

const (
	stateSelectRecord modelState = iota
	stateShowRecord
)

func newInteractiveModel(filename, kind string, c carlaserde.Codec, decode func(carlaserde.Codec, []byte) (any, error)) *interactiveModel {
	return &interactiveModel{
		filename: filename,
		kind:     kind,
		codec:    c,
		decode:   decode,
		state:    stateSelectRecord,
	}
}

type loadedMsg struct {
	err     error
	records []recordInfo
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadRecording
}

func (m *interactiveModel) loadRecording() tea.Msg {
	payloads, err := readRecords(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}

	records := make([]recordInfo, len(payloads))
	for i, payload := range payloads {
		ri := recordInfo{size: len(payload)}
		ev, err := m.decode(m.codec, payload)
		if err != nil {
			ri.err = err
		} else {
			ri.preview = fmt.Sprintf("%v", ev)
			ri.full = fmt.Sprintf("%+v", ev)
		}
		records[i] = ri
	}
	return loadedMsg{records: records}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelectRecord && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectRecord && m.selected < len(m.records)-1 {
				m.selected++
			}

		case "enter":
			if m.state == stateSelectRecord && len(m.records) > 0 {
				m.state = stateShowRecord
				m.refreshViewport()
			}

		case "f":
			if m.state == stateShowRecord {
				m.full = !m.full
				m.refreshViewport()
			}

		case "esc":
			if m.state == stateShowRecord {
				m.state = stateSelectRecord
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.view = viewport.New(msg.Width, msg.Height-4)
		if m.state == stateShowRecord {
			m.refreshViewport()
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.records = msg.records
	}

	if m.state == stateShowRecord {
		var cmd tea.Cmd
		m.view, cmd = m.view.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) refreshViewport() {
	r := m.records[m.selected]
	switch {
	case r.err != nil:
		m.view.SetContent(errorStyle.Render(fmt.Sprintf("decode failed: %v", r.err)))
	case m.full:
		m.view.SetContent(r.full)
	default:
		m.view.SetContent(r.preview)
	}
	m.view.GotoTop()
}

func (m *interactiveModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.records == nil {
		return "Loading recording..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Sensor Viewer"))
	fmt.Fprintf(&b, " %s (%s, %s)\n\n", m.filename, m.kind, m.codec.Name())

	switch m.state {
	case stateSelectRecord:
		if len(m.records) == 0 {
			b.WriteString("Recording is empty.\n\n")
			b.WriteString(helpStyle.Render("q quit"))
			break
		}
		b.WriteString("Select a record:\n\n")
		for i, r := range m.records {
			line := m.formatRecord(i, r)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter view • q quit"))

	case stateShowRecord:
		mode := "preview"
		if m.full {
			mode = "full"
		}
		fmt.Fprintf(&b, "Record %d (%s)\n", m.selected, mode)
		b.WriteString(m.view.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ scroll • f toggle full • esc back • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatRecord(i int, r recordInfo) string {
	label := fmt.Sprintf("record %d (%d bytes)", i, r.size)
	if r.err != nil {
		return label + " " + errorStyle.Render("decode failed")
	}
	return recordStyle.Render(label)
}

func runInteractive(filename, kind string, c carlaserde.Codec, decode func(carlaserde.Codec, []byte) (any, error)) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("interactive mode needs a terminal")
	}
	p := tea.NewProgram(newInteractiveModel(filename, kind, c, decode), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
