package dashboard

import (
	"strings"
	"testing"
	"time"

	"jbatoolkit/internal/core/civil"
	"jbatoolkit/internal/core/locations"
	"jbatoolkit/internal/core/nightwatch"
	"jbatoolkit/internal/core/weeksec"
	"jbatoolkit/internal/core/workweek"
	"jbatoolkit/internal/platform/clock"
	rsvc "jbatoolkit/internal/services/refresher/service"

	tea "github.com/charmbracelet/bubbletea"
)

func newModel(t *testing.T, at time.Time) (Model, *clock.Fake) {
	t.Helper()
	fake := clock.NewFake(at)
	tbl := locations.MustNew(civil.NewZones(0), locations.Default())
	svc := rsvc.New(fake, tbl, nightwatch.DefaultWindow(), workweek.Default(), rsvc.DefaultConfig())
	return New(svc, nil, rsvc.DefaultConfig()), fake
}

func send(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+t":
		return tea.KeyMsg{Type: tea.KeyCtrlT}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNew_Defaults(t *testing.T) {
	m, _ := newModel(t, time.Date(2025, 9, 3, 12, 0, 0, 0, time.UTC))
	if m.day != weeksec.Sunday || m.input.Value() != "00:00:00" {
		t.Fatalf("encoder defaults = %v %q", m.day, m.input.Value())
	}
	if m.clock.Time != "12:00:00" {
		t.Fatalf("clock = %q", m.clock.Time)
	}
	if !m.workWeek.State.IsActive {
		t.Fatalf("Wednesday noon should be active: %+v", m.workWeek.State)
	}
}

func TestUpdate_Cadences(t *testing.T) {
	m, fake := newModel(t, time.Date(2025, 9, 5, 17, 29, 0, 0, time.UTC))

	fake.Advance(2 * time.Second)
	m = send(m, clockMsg(fake.Now()))
	if m.clock.Time != "17:29:02" {
		t.Fatalf("clock = %q", m.clock.Time)
	}
	if !m.workWeek.State.IsActive {
		t.Fatalf("slow values refreshed on a clock tick")
	}

	fake.Advance(time.Minute)
	m = send(m, slowMsg(fake.Now()))
	if m.workWeek.State.IsActive || m.workWeek.State.Percentage != 100 {
		t.Fatalf("after 17:30 Friday = %+v", m.workWeek.State)
	}
}

func TestUpdate_DaySelector(t *testing.T) {
	m, _ := newModel(t, time.Date(2025, 9, 3, 12, 0, 0, 0, time.UTC))

	m = send(m, key("shift+tab"))
	if m.day != weeksec.Saturday {
		t.Fatalf("shift+tab from Sunday = %v", m.day)
	}
	m = send(m, key("tab"))
	m = send(m, key("tab"))
	if m.day != weeksec.Monday {
		t.Fatalf("day = %v", m.day)
	}
}

func TestUpdate_Calculate(t *testing.T) {
	cases := []struct {
		name string
		text string
		ok   bool
		want string
	}{
		{"valid", "09:00:00", true, "118,800 seconds"},
		{"bad format", "9:00", false, "Invalid time format"},
		{"hour out of pattern", "24:00:00", false, "Invalid time format"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, _ := newModel(t, time.Date(2025, 9, 3, 12, 0, 0, 0, time.UTC))
			m = send(m, key("tab")) // Monday
			m.input.SetValue(tc.text)
			m = send(m, key("enter"))
			if m.result == nil || m.result.OK != tc.ok || !strings.Contains(m.result.Display, tc.want) {
				t.Fatalf("result = %+v", m.result)
			}
			if !strings.Contains(m.View(), tc.want) {
				t.Fatalf("view lacks %q", tc.want)
			}
		})
	}
}

func TestUpdate_ThemeToggle(t *testing.T) {
	m, _ := newModel(t, time.Date(2025, 9, 3, 12, 0, 0, 0, time.UTC))
	m = send(m, key("ctrl+t"))
	if m.dark {
		t.Fatalf("theme did not toggle")
	}
	m = send(m, key("ctrl+t"))
	if !m.dark {
		t.Fatalf("theme did not toggle back")
	}
}

func TestView_NightPanel(t *testing.T) {
	// 12:30 UTC puts Honolulu at 02:30
	m, _ := newModel(t, time.Date(2025, 9, 3, 12, 30, 0, 0, time.UTC))
	if !strings.Contains(m.View(), "USA - Honolulu, HI") {
		t.Fatalf("night panel lacks Honolulu:\n%s", m.View())
	}
}
