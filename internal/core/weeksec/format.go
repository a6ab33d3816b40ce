package weeksec

import (
	"errors"

	perr "jbatoolkit/internal/platform/errors"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders totals with locale thousands grouping
type Formatter struct {
	tag language.Tag
	p   *message.Printer
}

// NewFormatter builds a formatter for a BCP-47 locale such as "en-US" or "de-DE"
func NewFormatter(locale string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeConfig, "invalid locale %q", locale)
	}
	return &Formatter{tag: tag, p: message.NewPrinter(tag)}, nil
}

// MustFormatter is NewFormatter that panics on a bad locale
func MustFormatter(locale string) *Formatter {
	f, err := NewFormatter(locale)
	if err != nil {
		panic(err)
	}
	return f
}

// Locale is the formatter's language tag
func (f *Formatter) Locale() string { return f.tag.String() }

// Grouped renders n with thousands separators, e.g. 604,799
func (f *Formatter) Grouped(n int) string { return f.p.Sprintf("%d", n) }

// Render is the success line shown to the user, e.g. "86,400 seconds"
func (f *Formatter) Render(n int) string { return f.Grouped(n) + " seconds" }

// Result is an encode attempt ready for display
type Result struct {
	Day     string         `json:"day"`
	Time    string         `json:"time"`
	Total   int            `json:"total"`
	Grouped string         `json:"grouped,omitempty"`
	Display string         `json:"display"`
	OK      bool           `json:"ok"`
	Code    perr.ErrorCode `json:"code,omitempty"`
}

// Calculate encodes and renders in one step. Encoder errors become a failed
// Result carrying the error message as Display; other errors are returned.
func (f *Formatter) Calculate(day Day, text string) (Result, error) {
	res := Result{Day: day.String(), Time: text}
	total, err := Encode(day, text)
	switch {
	case err == nil:
		res.Total = total
		res.Grouped = f.Grouped(total)
		res.Display = f.Render(total)
		res.OK = true
		return res, nil
	case errors.Is(err, ErrInvalidFormat), errors.Is(err, ErrInvalidValues):
		e, _ := perr.As(err)
		res.Display = e.Message()
		res.Code = e.Code()
		return res, nil
	default:
		return res, err
	}
}
