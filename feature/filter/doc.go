// Package filter narrows a spectrum list to the spectra a predicate accepts.
//
// The index table is built once by New; afterwards Size, Identity, Find and
// Element address the kept spectra densely from zero, and InnerIndex maps back
// to the wrapped list.
//
// Predicates answer from the identity when they can (IndexSet, IDSet) and
// otherwise from the spectrum loaded without binary data (MSLevelSet). A
// predicate reporting Done stops the scan early.
//
// # Usage
//
//	pred, err := filter.NewMSLevelSet("2-")
//	if err != nil {
//	    return err
//	}
//	list, err := filter.New(doc.Run.SpectrumList, pred)
package filter
