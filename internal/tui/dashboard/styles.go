package dashboard

import "github.com/charmbracelet/lipgloss"

// Palette is one colour theme
type Palette struct {
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
	Muted   lipgloss.Color
	Text    lipgloss.Color
	Border  lipgloss.Color
}

var (
	// Dark is the default theme
	Dark = Palette{
		Primary: lipgloss.Color("#8B5CF6"),
		Accent:  lipgloss.Color("#F59E0B"),
		Success: lipgloss.Color("#10B981"),
		Error:   lipgloss.Color("#EF4444"),
		Muted:   lipgloss.Color("#94A3B8"),
		Text:    lipgloss.Color("#F8FAFC"),
		Border:  lipgloss.Color("#334155"),
	}

	// Light swaps the text and border shades for a light terminal
	Light = Palette{
		Primary: lipgloss.Color("#6D28D9"),
		Accent:  lipgloss.Color("#B45309"),
		Success: lipgloss.Color("#047857"),
		Error:   lipgloss.Color("#B91C1C"),
		Muted:   lipgloss.Color("#475569"),
		Text:    lipgloss.Color("#0F172A"),
		Border:  lipgloss.Color("#CBD5E1"),
	}
)

// Styles are the rendered styles for a palette
type Styles struct {
	Title    lipgloss.Style
	Panel    lipgloss.Style
	Heading  lipgloss.Style
	Clock    lipgloss.Style
	Muted    lipgloss.Style
	Text     lipgloss.Style
	Active   lipgloss.Style
	Inactive lipgloss.Style
	Error    lipgloss.Style
	Day      lipgloss.Style
	Help     lipgloss.Style
}

// NewStyles builds the styles for p
func NewStyles(p Palette) Styles {
	return Styles{
		Title: lipgloss.NewStyle().Foreground(p.Primary).Bold(true).MarginBottom(1),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1).
			MarginRight(1),
		Heading:  lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		Clock:    lipgloss.NewStyle().Foreground(p.Text).Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(p.Muted),
		Text:     lipgloss.NewStyle().Foreground(p.Text),
		Active:   lipgloss.NewStyle().Foreground(p.Success).Bold(true),
		Inactive: lipgloss.NewStyle().Foreground(p.Muted).Bold(true),
		Error:    lipgloss.NewStyle().Foreground(p.Error),
		Day:      lipgloss.NewStyle().Foreground(p.Primary).Bold(true),
		Help:     lipgloss.NewStyle().Foreground(p.Muted).Italic(true).MarginTop(1),
	}
}
