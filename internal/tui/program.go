// Package tui runs an interactive plot session in the terminal. Bubble Tea
// puts the terminal in raw mode and delivers key presses one at a time to
// the interaction controller.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/grapher/internal/interact"
	"github.com/san-kum/grapher/internal/plot"
)

// arrows map onto the pan keys.
var arrows = map[tea.KeyType]rune{
	tea.KeyUp:    'w',
	tea.KeyLeft:  'a',
	tea.KeyDown:  's',
	tea.KeyRight: 'd',
}

// Options configure the session view.
type Options struct {
	// Name labels the plotted function in the header.
	Name   string
	Output string
	// Background is the framebuffer color left blank in the preview.
	Background plot.RGB
	Theme      Theme
}

// Model is the Bubble Tea model of a session.
type Model struct {
	ctrl  *interact.Controller
	opts  Options
	style styles
	err   error
}

func NewModel(ctrl *interact.Controller, opts Options) Model {
	if opts.Theme.Name == "" {
		opts.Theme = DefaultTheme
	}
	return Model{ctrl: ctrl, opts: opts, style: newStyles(opts.Theme)}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	quit, err := m.ctrl.Handle(keyRune(key))
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	if quit {
		return m, tea.Quit
	}
	return m, nil
}

// keyRune turns a key message into the rune the controller understands.
// Keys without one map to 0, which the controller treats as a no-op.
func keyRune(k tea.KeyMsg) rune {
	if r, ok := arrows[k.Type]; ok {
		return r
	}
	if k.Type == tea.KeyRunes && len(k.Runes) == 1 {
		return k.Runes[0]
	}
	return 0
}

// Err is the redraw failure that ended the session, if any.
func (m Model) Err() error { return m.err }

func (m Model) View() string {
	st := m.style
	var b strings.Builder
	b.WriteString("\n  " + st.header.Render("GRAPHER") + "  " + st.sub.Render(m.opts.Name+" -> "+m.opts.Output) + "\n\n")

	if fb := m.ctrl.Frame(); fb != nil {
		c := NewCanvas(fb.Width, fb.Height)
		c.Draw(fb, m.opts.Background)
		b.WriteString(st.plot.Render(strings.TrimRight(c.String(), "\n")) + "\n")
	}

	b.WriteString("  " + st.status.Render(strings.ReplaceAll(m.ctrl.Status(), "\t", "  ")) + "\n")
	if m.err != nil {
		b.WriteString("  " + st.err.Render(fmt.Sprintf("error: %v", m.err)) + "\n")
	}
	b.WriteString("\n  " + m.help() + "\n")
	return b.String()
}

func (m Model) help() string {
	pairs := [][2]string{{"z/x", "zoom"}, {"wasd", "pan"}, {"e", "axis"}, {"r", "reset"}, {"k", "quit"}}
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = m.style.key.Render(p[0]) + m.style.help.Render(" "+p[1])
	}
	return strings.Join(parts, "  ")
}

// Run draws the first frame and then hands the terminal to Bubble Tea until
// the quit key or a redraw failure.
func Run(ctrl *interact.Controller, opts Options) error {
	if err := ctrl.Redraw(); err != nil {
		return err
	}
	final, err := tea.NewProgram(NewModel(ctrl, opts), tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	return final.(Model).Err()
}
