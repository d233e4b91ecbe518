package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/telkar/gruecore/engine"
)

// rawLine stores an unstyled output line with its classification,
// so we can re-wrap and re-style when the terminal is resized.
type rawLine struct {
	text    string
	kind    lineKind
	isInput bool // true for echoed player input
}

// Model is the Bubble Tea model for the gruecore TUI.
type Model struct {
	game *engine.Game

	viewport viewport.Model
	input    textinput.Model
	history  *History

	rawLines []rawLine // accumulated narrative lines (unstyled, for re-wrapping)

	width    int
	height   int
	ready    bool
	quitting bool
	lastCmd  string
}

// New creates a TUI model wired to the given game.
func New(g *engine.Game) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 256
	ti.PromptStyle = styleInputPrompt

	return Model{
		game:    g,
		input:   ti,
		history: NewHistory(100),
	}
}

// Run starts the Bubble Tea program.
func Run(g *engine.Game) error {
	m := New(g)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// Init returns the initial command that produces intro text and first look.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.initialOutput())
}

func (m Model) initialOutput() tea.Cmd {
	return func() tea.Msg {
		var lines []string
		if m.game.World.Intro != "" {
			lines = append(lines, m.game.World.Intro)
			lines = append(lines, "")
		}
		lines = append(lines, m.game.World.Title)
		lines = append(lines, "")
		lines = append(lines, m.game.Look()...)
		return gameOutputMsg{lines: lines}
	}
}

// gameOutputMsg carries output from the engine into the Update loop.
type gameOutputMsg struct {
	input string   // echoed player input (empty for intro)
	lines []string // output lines
}

// Update handles messages (key presses, window resize, game output).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := m.height - 2 // 1 status bar + 1 input line
		if vpHeight < 1 {
			vpHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.KeyMap = viewportKeyMap()
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}

		m.refreshViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		case "up":
			if prev, ok := m.history.Prev(); ok {
				m.input.SetValue(prev)
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if next, ok := m.history.Next(); ok {
				m.input.SetValue(next)
				m.input.CursorEnd()
			} else {
				m.input.SetValue("")
				m.history.ResetCursor()
			}
			return m, nil

		case "pgup", "pgdown":
			var vpCmd tea.Cmd
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}

	case gameOutputMsg:
		m = m.appendOutput(msg)
	}

	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	cmds = append(cmds, inputCmd)

	return m, tea.Batch(cmds...)
}

// handleEnter processes the submitted input line. While the engine has
// a pending question, the line is the answer and goes straight through,
// blank lines included (a blank answer aborts the question).
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")

	if input == "" && !m.game.Pending() {
		return m, nil
	}

	if !m.game.Pending() {
		m.history.Push(input)
		m.history.ResetCursor()

		lower := strings.ToLower(input)
		if lower == "again" || lower == "g" {
			if m.lastCmd == "" {
				m = m.appendOutput(gameOutputMsg{
					input: input, lines: []string{"Nothing to repeat."},
				})
				return m, nil
			}
			input = m.lastCmd
		} else {
			m.lastCmd = input
		}
	}

	result := m.game.Step(input)
	m = m.appendOutput(gameOutputMsg{input: input, lines: result.Output})
	if result.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// appendOutput adds lines to the narrative and refreshes the viewport.
func (m Model) appendOutput(msg gameOutputMsg) Model {
	if msg.input != "" {
		m.rawLines = append(m.rawLines, rawLine{
			text: "> " + msg.input, isInput: true,
		})
	}

	for _, line := range msg.lines {
		m.rawLines = append(m.rawLines, rawLine{text: line, kind: classifyLine(line)})
	}

	// Blank line separator between turns.
	m.rawLines = append(m.rawLines, rawLine{})

	m.refreshViewport()

	return m
}

// refreshViewport re-wraps and re-styles all raw lines at the current
// width and updates the viewport content.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	width := m.width
	if width < 10 {
		width = 10
	}

	var styled []string
	for _, rl := range m.rawLines {
		if rl.text == "" {
			styled = append(styled, "")
			continue
		}

		wrapped := wordwrap.String(rl.text, width)

		if rl.isInput {
			styled = append(styled, stylePlayerInput.Render(wrapped))
		} else {
			styled = append(styled, renderLineKind(wrapped, rl.kind))
		}
	}

	m.viewport.SetContent(strings.Join(styled, "\n"))
	m.viewport.GotoBottom()
}

// renderLineKind applies the style for a given lineKind.
func renderLineKind(line string, kind lineKind) string {
	switch kind {
	case kindRoomName:
		return styleRoomName.Render(line)
	case kindError:
		return styleError.Render(line)
	case kindDanger:
		return styleDanger.Render(line)
	case kindPrompt:
		return stylePrompt.Render(line)
	default:
		return styleNarrative.Render(line)
	}
}

// View renders the full TUI layout: viewport + status bar + input.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	return m.viewport.View() + "\n" + m.renderStatusBar() + "\n" + m.input.View()
}

// viewportKeyMap returns a viewport keymap with Up/Down disabled
// (we use those for input history).
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithDisabled()),
		Down:         key.NewBinding(key.WithDisabled()),
	}
}
