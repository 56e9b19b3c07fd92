package diff

import (
	"fmt"
	"io"
	"strings"

	"msforge/core/msdata"
)

const (
	colorInsert = "\x1b[32m"
	colorDelete = "\x1b[31m"
	colorClose  = "\x1b[0m"
)

// Format writes a non-empty result to w: a "+" block with what is present
// only in A, then a "-" block with what is present only in B. If color is
// true the blocks are green and red. An equal result writes nothing.
func Format[T Printable](w io.Writer, r *Result[T], color bool) error {
	if !r.Different() {
		return nil
	}
	if err := formatBlock(w, "+", r.AMinusB, color, colorInsert); err != nil {
		return err
	}
	return formatBlock(w, "-", r.BMinusA, color, colorDelete)
}

func formatBlock(w io.Writer, sign string, v msdata.TextWritable, color bool, c string) error {
	var sb strings.Builder
	tw := msdata.NewTextWriter(&sb, 1)
	v.WriteText(tw)
	if err := tw.Err(); err != nil {
		return err
	}
	open, close := "", ""
	if color {
		open, close = c, colorClose
	}
	_, err := fmt.Fprintf(w, "%s%s\n%s%s", open, sign, sb.String(), close)
	return err
}

// FormatStats renders a one line summary of st.
func FormatStats(st Stats) string {
	if !st.Different {
		return "no differences."
	}
	word := func(n int, singular, plural string) string {
		if n == 1 {
			return fmt.Sprintf("%d %s", n, singular)
		}
		return fmt.Sprintf("%d %s", n, plural)
	}
	return fmt.Sprintf("%s differ. %s differ. max binary difference %g (spectra), %g (chromatograms).",
		word(st.Spectra, "spectrum", "spectra"),
		word(st.Chromatograms, "chromatogram", "chromatograms"),
		st.MaxSpectrumDifference,
		st.MaxChromatogramDifference,
	)
}
