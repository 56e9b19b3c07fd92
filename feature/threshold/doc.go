// Package threshold removes data points from spectra by intensity.
//
// A Thresholder ranks the intensity array of a spectrum and builds a keep
// mask; List applies that mask to every binary array of matching length so
// m/z and intensity stay paired. Point order within a spectrum is preserved.
//
// # Policies
//
//   - count: keep the top N points; a run of equal values straddling N is dropped
//   - count-after-ties: keep the top N points plus every tie of the Nth
//   - absolute: keep points at or above (below) the threshold
//   - fraction-of-max: threshold is a fraction of the largest intensity
//   - fraction-of-total: threshold is a fraction of the summed intensity
//   - fraction-of-total-cutoff: keep the ranked points needed to reach the
//     fraction of the summed intensity, plus ties of the last one
//
// Orientation least-intense reverses the ranking and the comparisons.
//
// # Usage
//
//	th := threshold.Thresholder{Policy: threshold.Count, Threshold: 100}
//	list, err := threshold.New(doc.Run.SpectrumList, th,
//	    threshold.WithMSLevels(func(level int) bool { return level > 1 }),
//	    threshold.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	doc.Run.SpectrumList = list
//
// Size and identities of the inner list are unchanged; spectra outside the
// selected ms levels, or without an intensity array, pass through.
package threshold
