package diff

import (
	"strings"
	"time"

	"msforge/core/msdata"
)

// Result holds the two residuals of a comparison.
type Result[T Printable] struct {
	// AMinusB holds what is present only in A.
	AMinusB T
	// BMinusA holds what is present only in B.
	BMinusA T
	// Elapsed is the time spent comparing.
	Elapsed time.Duration
}

// Different reports whether either residual carries content.
func (r *Result[T]) Different() bool {
	return !r.AMinusB.Empty() || !r.BMinusA.Empty()
}

// String renders the result in the +/- form without color.
func (r *Result[T]) String() string {
	var sb strings.Builder
	_ = Format(&sb, r, false)
	return sb.String()
}

// Stats summarizes a comparison.
type Stats struct {
	Different                 bool    `json:"different" yaml:"different"`
	Spectra                   int     `json:"spectra" yaml:"spectra"`
	Chromatograms             int     `json:"chromatograms" yaml:"chromatograms"`
	MaxSpectrumDifference     float64 `json:"max_spectrum_difference" yaml:"max_spectrum_difference"`
	MaxChromatogramDifference float64 `json:"max_chromatogram_difference" yaml:"max_chromatogram_difference"`
	ElapsedMillis             int64   `json:"elapsed_ms" yaml:"elapsed_ms"`
}

// Stats counts the differing list elements and reads the largest recorded
// binary difference.
func (r *Result[T]) Stats() Stats {
	st := Stats{Different: r.Different(), ElapsedMillis: r.Elapsed.Milliseconds()}
	switch a := any(r.AMinusB).(type) {
	case *msdata.Document:
		runStats(&a.Run, &any(r.BMinusA).(*msdata.Document).Run, &st)
	case *msdata.Run:
		runStats(a, any(r.BMinusA).(*msdata.Run), &st)
	case *msdata.SpectrumListSimple:
		st.Spectra = max(a.Size(), any(r.BMinusA).(*msdata.SpectrumListSimple).Size())
		st.MaxSpectrumDifference = listMaxDifference(a.DP)
	case *msdata.ChromatogramListSimple:
		st.Chromatograms = max(a.Size(), any(r.BMinusA).(*msdata.ChromatogramListSimple).Size())
		st.MaxChromatogramDifference = listMaxDifference(a.DP)
	case *msdata.Spectrum:
		if st.Different {
			st.Spectra = 1
		}
		st.MaxSpectrumDifference = elementDifference(&a.ParamContainer)
	case *msdata.Chromatogram:
		if st.Different {
			st.Chromatograms = 1
		}
		st.MaxChromatogramDifference = elementDifference(&a.ParamContainer)
	}
	return st
}

func runStats(a, b *msdata.Run, st *Stats) {
	st.Spectra = max(listSize[*msdata.Spectrum](a.SpectrumList), listSize[*msdata.Spectrum](b.SpectrumList))
	st.Chromatograms = max(listSize[*msdata.Chromatogram](a.ChromatogramList), listSize[*msdata.Chromatogram](b.ChromatogramList))
	if a.SpectrumList != nil {
		st.MaxSpectrumDifference = listMaxDifference(a.SpectrumList.DataProcessing())
	}
	if a.ChromatogramList != nil {
		st.MaxChromatogramDifference = listMaxDifference(a.ChromatogramList.DataProcessing())
	}
}

func listSize[T any](l msdata.List[T]) int {
	if l == nil {
		return 0
	}
	return l.Size()
}

// Report is the exportable form of a result.
type Report struct {
	Stats   Stats  `json:"stats" yaml:"stats"`
	AMinusB string `json:"a_minus_b,omitempty" yaml:"a_minus_b,omitempty"`
	BMinusA string `json:"b_minus_a,omitempty" yaml:"b_minus_a,omitempty"`
}

// Report renders both residuals as text alongside the summary.
func (r *Result[T]) Report() Report {
	rep := Report{Stats: r.Stats()}
	if !r.AMinusB.Empty() {
		rep.AMinusB = msdata.Text(r.AMinusB)
	}
	if !r.BMinusA.Empty() {
		rep.BMinusA = msdata.Text(r.BMinusA)
	}
	return rep
}
