package outwriter

import (
	"fmt"
	"io"

	"github.com/langradar/langradar/internal/contract"
	"github.com/langradar/langradar/internal/radar"
	"github.com/langradar/langradar/schema"
)

// Item markers for pros and cons.
const (
	proMark = "+"
	conMark = "-"
)

// scoreLabel returns the label of an average score, colored for terminals when enabled.
func scoreLabel(score float64, useColors bool) string {
	if useColors {
		return contract.GetColorLabel(score)
	}
	return contract.GetPlainLabel(score)
}

// newTextRenderer builds the terminal chart renderer for the configured precision and colors.
func newTextRenderer(cfg *contract.Config) *radar.TextRenderer {
	return radar.NewTextRenderer(cfg.Precision, cfg.UseColors)
}

// writeItems writes pros then cons, one per line, behind their markers.
func writeItems(w io.Writer, indent string, pros, cons []string) error {
	for _, p := range pros {
		if _, err := fmt.Fprintf(w, "%s%s %s\n", indent, proMark, p); err != nil {
			return err
		}
	}
	for _, c := range cons {
		if _, err := fmt.Fprintf(w, "%s%s %s\n", indent, conMark, c); err != nil {
			return err
		}
	}
	return nil
}

// writeDetailCard writes the full card of a language: title, philosophy and every pro and con.
func writeDetailCard(w io.Writer, l schema.Language, cfg *contract.Config) error {
	title := l.Name
	if cfg.UseColors {
		title = contract.HeaderColor.Sprint(l.Name)
	}
	if _, err := fmt.Fprintf(w, "%s (%s)\n", title, l.ID); err != nil {
		return err
	}
	if l.Philosophy != "" {
		if _, err := fmt.Fprintf(w, "  %s\n", l.Philosophy); err != nil {
			return err
		}
	}
	return writeItems(w, "  ", l.Pros, l.Cons)
}

// nonNil turns a nil slice into an empty one so JSON shows [] instead of null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
