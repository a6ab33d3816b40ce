package cli

import (
	"encoding/json"
	"fmt"
	"io"

	perr "jbatoolkit/internal/platform/errors"

	"github.com/fatih/color"
)

var (
	heading = color.New(color.FgCyan, color.Bold)
	active  = color.New(color.FgGreen, color.Bold)
	muted   = color.New(color.FgHiBlack)
	failure = color.New(color.FgRed)
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// PrintError renders err for the terminal, with its field when it has one
func PrintError(w io.Writer, err error) {
	if e, ok := perr.As(err); ok && e.Field() != "" {
		fmt.Fprintf(w, "%s %s (%s)\n", failure.Sprint("error:"), e.Error(), e.Field())
		return
	}
	fmt.Fprintf(w, "%s %v\n", failure.Sprint("error:"), err)
}
