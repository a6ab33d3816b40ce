// Package dashboard is the terminal board: live clock, night watch, work
// week progress and the week second encoder
package dashboard

import (
	"fmt"
	"strings"
	"time"

	"jbatoolkit/internal/core/wallclock"
	"jbatoolkit/internal/core/weeksec"
	rdom "jbatoolkit/internal/services/refresher/domain"
	rsvc "jbatoolkit/internal/services/refresher/service"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Message types
type clockMsg time.Time
type slowMsg time.Time

// Model is the bubbletea model for the dashboard
type Model struct {
	eval   rdom.EvaluatorPort
	format *weeksec.Formatter
	cfg    rsvc.Config

	clock    wallclock.Snapshot
	night    rdom.NightSet
	workWeek rdom.WorkWeek

	day    weeksec.Day
	input  textinput.Model
	result *weeksec.Result

	bar    progress.Model
	dark   bool
	styles Styles
	width  int
}

// New builds the dashboard over eval. A nil format falls back to en-US.
func New(eval rdom.EvaluatorPort, format *weeksec.Formatter, cfg rsvc.Config) Model {
	if format == nil {
		format = weeksec.MustFormatter("en-US")
	}
	in := textinput.New()
	in.Placeholder = "HH:MM:SS"
	in.CharLimit = 8
	in.Width = 10
	in.SetValue("00:00:00")
	in.Focus()

	m := Model{
		eval:   eval,
		format: format,
		cfg:    cfg,
		day:    weeksec.Sunday,
		input:  in,
		bar:    progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		dark:   true,
		styles: NewStyles(Dark),
	}
	m.refreshClock(eval.Now())
	m.refreshSlow(eval.Now())
	return m
}

func (m *Model) refreshClock(now time.Time) { m.clock = wallclock.Take(now) }

func (m *Model) refreshSlow(now time.Time) {
	b := m.eval.Evaluate(now)
	m.night = b.Night
	m.workWeek = b.WorkWeek
}

func (m Model) tickClock() tea.Cmd {
	return tea.Tick(m.cfg.ClockEvery, func(t time.Time) tea.Msg { return clockMsg(t) })
}

func (m Model) tickSlow() tea.Cmd {
	return tea.Tick(m.cfg.NightEvery, func(t time.Time) tea.Msg { return slowMsg(t) })
}

// Init starts both cadences
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.tickClock(), m.tickSlow())
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case clockMsg:
		m.refreshClock(m.eval.Now())
		return m, m.tickClock()

	case slowMsg:
		m.refreshSlow(m.eval.Now())
		return m, m.tickSlow()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.day = (m.day + 1) % 7
			return m, nil
		case "shift+tab":
			m.day = (m.day + 6) % 7
			return m, nil
		case "ctrl+t":
			m.dark = !m.dark
			if m.dark {
				m.styles = NewStyles(Dark)
			} else {
				m.styles = NewStyles(Light)
			}
			return m, nil
		case "enter":
			m.calculate()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) calculate() {
	res, err := m.format.Calculate(m.day, strings.TrimSpace(m.input.Value()))
	if err != nil {
		res = weeksec.Result{Day: m.day.String(), Display: err.Error()}
	}
	m.result = &res
}

// View renders the board
func (m Model) View() string {
	s := m.styles
	var b strings.Builder

	b.WriteString(s.Title.Render("jbatoolkit"))
	b.WriteString("\n")

	clock := s.Heading.Render("Clock") + "\n" +
		s.Clock.Render(m.clock.Time) + "\n" +
		s.Muted.Render(m.clock.Date)

	ww := m.workWeek.State
	badge := s.Inactive.Render(ww.Badge)
	if ww.IsActive {
		badge = s.Active.Render(ww.Badge)
	}
	work := s.Heading.Render("Work week") + "  " + badge + "\n" +
		m.bar.ViewAs(ww.Percentage/100) + "\n" +
		s.Text.Render(ww.StatusText)

	top := lipgloss.JoinHorizontal(lipgloss.Top, s.Panel.Render(clock), s.Panel.Render(work))
	b.WriteString(top)
	b.WriteString("\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		s.Panel.Render(m.viewNight()),
		s.Panel.Render(m.viewEncoder()),
	))
	b.WriteString("\n")

	b.WriteString(s.Help.Render("tab/shift+tab day  enter calculate  ctrl+t theme  esc quit"))
	return b.String()
}

func (m Model) viewNight() string {
	s := m.styles
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", s.Heading.Render("Night watch"),
		s.Muted.Render(fmt.Sprintf("%02d:00-%02d:00", m.night.Window.Start, m.night.Window.End)))
	if len(m.night.Entries) == 0 {
		b.WriteString(s.Muted.Render("No locations are currently in the night window"))
		return b.String()
	}
	for i, e := range m.night.Entries {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(s.Text.Render(e.Name) + " " + s.Muted.Render(e.Clock))
	}
	return b.String()
}

func (m Model) viewEncoder() string {
	s := m.styles
	var b strings.Builder
	b.WriteString(s.Heading.Render("Week seconds"))
	b.WriteString("\n")
	b.WriteString("Day  " + s.Day.Render("< "+m.day.String()+" >"))
	b.WriteString("\n")
	b.WriteString("Time " + m.input.View())
	if m.result != nil {
		b.WriteString("\n")
		if m.result.OK {
			b.WriteString(s.Active.Render(m.result.Display))
		} else {
			b.WriteString(s.Error.Render(m.result.Display))
		}
	}
	return b.String()
}

// Run starts the dashboard in the alternate screen until the user quits
func Run(eval rdom.EvaluatorPort, format *weeksec.Formatter, cfg rsvc.Config) error {
	p := tea.NewProgram(New(eval, format, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
