// Package report renders collected match records for downstream consumption.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/hollow-labs/burrow/pkg/types"
)

// WriteJSON writes records as an indented JSON array. An empty run writes
// "[]", not "null".
func WriteJSON(w io.Writer, records []types.MatchRecord) error {
	if records == nil {
		records = []types.MatchRecord{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// styles holds the color formatters for human-readable output.
type styles struct {
	kind *color.Color
	path *color.Color
	meta *color.Color
}

// newStyles creates color formatters for report output.
// enabled=false respects --color never and the NO_COLOR convention.
func newStyles(enabled bool) *styles {
	s := &styles{
		kind: color.New(color.Bold, color.FgHiBlue),
		path: color.New(color.FgHiGreen),
		meta: color.New(color.FgYellow),
	}
	if !enabled {
		s.kind.DisableColor()
		s.path.DisableColor()
		s.meta.DisableColor()
	}
	return s
}

// WriteHuman writes one line per record plus a trailing count.
func WriteHuman(w io.Writer, records []types.MatchRecord, colorEnabled bool) error {
	st := newStyles(colorEnabled)

	for _, r := range records {
		if _, err := fmt.Fprintf(w, "%s %s", st.kind.Sprintf("[%s]", r.Kind), st.path.Sprint(r.SemanticPath.String())); err != nil {
			return err
		}
		if r.Encoding != "" {
			if _, err := fmt.Fprintf(w, " %s", st.meta.Sprintf("(%s)", r.Encoding)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "%d match(es)\n", len(records))
	return err
}
