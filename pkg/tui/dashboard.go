// Package tui is the interactive watcher dashboard: an on/off switch,
// a manual check, counters, and the most recent rewrites.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"github.com/jcadam/decoy/pkg/stats"
	"github.com/jcadam/decoy/pkg/watch"
)

const maxRecent = 5

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			PaddingLeft(1)

	onStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("42")).
		Padding(0, 1)

	offStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("238")).
			Padding(0, 1)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	numberStyle = lipgloss.NewStyle().Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).PaddingLeft(1)
)

// Controller is the part of the watcher the dashboard drives.
type Controller interface {
	Enabled() bool
	Toggle() bool
	CheckNow() (watch.Event, bool, error)
}

type keyMap struct {
	Toggle key.Binding
	Check  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Check, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Toggle, k.Check}, {k.Help, k.Quit}}
}

var defaultKeys = keyMap{
	Toggle: key.NewBinding(key.WithKeys(" ", "t"), key.WithHelp("space", "on/off")),
	Check:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "check clipboard now")),
	Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more help")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
}

// --- messages ---

type eventMsg watch.Event

type checkResultMsg struct {
	changed bool
	err     error
}

type statsMsg struct {
	counters *stats.Counters
	err      error
}

// Model is the dashboard's Bubble Tea model.
type Model struct {
	ctl      Controller
	snapshot func() (*stats.Counters, error)
	events   <-chan watch.Event
	zones    *zone.Manager

	keys keyMap
	help help.Model

	counters *stats.Counters
	recent   []watch.Event
	status   string
	width    int
}

// New creates a dashboard. snapshot may be nil when stats are disabled;
// events delivers rewrites made by the running watcher.
func New(ctl Controller, snapshot func() (*stats.Counters, error), events <-chan watch.Event) Model {
	return Model{
		ctl:      ctl,
		snapshot: snapshot,
		events:   events,
		zones:    zone.New(),
		keys:     defaultKeys,
		help:     help.New(),
		width:    80,
	}
}

// Init starts listening for watcher events and loads the counters.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.waitForEvent(), m.refreshStats())
}

// Update handles messages for the dashboard.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			return m.toggle(), nil
		case key.Matches(msg, m.keys.Check):
			return m.check()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		switch {
		case m.zones.Get("toggle").InBounds(msg):
			return m.toggle(), nil
		case m.zones.Get("check").InBounds(msg):
			return m.check()
		}

	case eventMsg:
		m.recent = append([]watch.Event{watch.Event(msg)}, m.recent...)
		if len(m.recent) > maxRecent {
			m.recent = m.recent[:maxRecent]
		}
		return m, tea.Batch(m.waitForEvent(), m.refreshStats())

	case checkResultMsg:
		switch {
		case msg.err != nil:
			m.status = "Error: " + msg.err.Error()
		case msg.changed:
			m.status = "Clipboard rewritten"
		default:
			m.status = "No tracking parameters in clipboard"
		}
		return m, nil

	case statsMsg:
		if msg.err != nil {
			m.status = "Stats: " + msg.err.Error()
			return m, nil
		}
		m.counters = msg.counters
		return m, nil
	}
	return m, nil
}

func (m Model) toggle() Model {
	if m.ctl.Toggle() {
		m.status = "Watching the clipboard"
	} else {
		m.status = "Paused"
	}
	return m
}

func (m Model) check() (tea.Model, tea.Cmd) {
	ctl := m.ctl
	m.status = "Checking..."
	return m, func() tea.Msg {
		_, changed, err := ctl.CheckNow()
		return checkResultMsg{changed: changed, err: err}
	}
}

func (m Model) waitForEvent() tea.Cmd {
	if m.events == nil {
		return nil
	}
	ch := m.events
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return eventMsg(ev)
	}
}

func (m Model) refreshStats() tea.Cmd {
	if m.snapshot == nil {
		return nil
	}
	snapshot := m.snapshot
	return func() tea.Msg {
		c, err := snapshot()
		return statsMsg{counters: c, err: err}
	}
}

// View renders the dashboard.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("decoy") + "\n\n")

	state := offStyle.Render("OFF")
	if m.ctl.Enabled() {
		state = onStyle.Render("ON")
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		" ",
		m.zones.Mark("toggle", state),
		"  ",
		m.zones.Mark("check", buttonStyle.Render("Check now")),
	)
	b.WriteString(buttons + "\n\n")

	if m.counters != nil {
		fmt.Fprintf(&b, " %s %s   %s %s\n",
			labelStyle.Render("Today"), numberStyle.Render(fmt.Sprint(m.counters.Today)),
			labelStyle.Render("All time"), numberStyle.Render(fmt.Sprint(m.counters.Total)))
	}

	b.WriteString("\n " + labelStyle.Render("Recent") + "\n")
	if len(m.recent) == 0 {
		b.WriteString(" " + labelStyle.Render("nothing yet") + "\n")
	}
	for _, ev := range m.recent {
		line := fmt.Sprintf("%s  %s", ev.Time.Format("15:04:05"), ev.Output)
		b.WriteString(" " + ansi.Truncate(line, max(m.width-2, 10), "…") + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}
	b.WriteString("\n " + m.help.View(m.keys))

	return m.zones.Scan(b.String())
}

// Run launches the dashboard with mouse support. It returns when the user
// quits.
func Run(ctl Controller, snapshot func() (*stats.Counters, error), events <-chan watch.Event) error {
	m := New(ctl, snapshot, events)
	defer m.zones.Close()
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
