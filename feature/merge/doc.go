// Package merge combines several documents into one.
//
// Top-level shared collections (source files, param groups, samples,
// softwares, scan settings, instrument configurations and data processings)
// are merged as a union: an entity is added only when no entity already in
// the result compares equal to it with the diff engine. Spectra and
// chromatograms are loaded with full data, concatenated in input order and
// given new dense indexes. A processing record named ProcessingID is appended
// and reported by both merged lists.
//
// Merged elements keep pointing at the shared entities of their source
// document; decoding a snapshot of the result re-links them by id.
//
// # Usage
//
//	doc, err := merge.Documents([]*msdata.Document{a, b},
//	    merge.WithDiffOptions(diff.IgnoreVersions()),
//	    merge.WithLogger(logger))
package merge
