// Package msdata is the in-memory model of a mass spectrometry measurement run.
//
// A Document holds the run metadata (source files, samples, software, instrument
// configurations, processing records) and a Run whose spectra and chromatograms
// are exposed through the List interface. Lists are addressed by dense index and
// may realize elements lazily, so callers should request binary payloads only
// when they need them.
//
// # Shared references
//
// Metadata entities such as SourceFile, Software or DataProcessing are shared by
// pointer. A nil pointer means "no reference" and compares equal to a reference
// to an empty entity. After decoding, ResolveReferences re-links every holder to
// the canonical document level instance.
//
// # Decorators
//
// Wrapper forwards every List call to an inner list and owns a copy of the inner
// processing record. Processing stages embed *Wrapper, override the methods whose
// behavior they change and append their own ProcessingMethod. Chain walks a
// decorator stack from the outside in.
//
// # Usage
//
//	list := msdata.NewSpectrumListSimple(s1, s2)
//	w, err := msdata.NewWrapper[*msdata.Spectrum](list)
//	spectrum, err := w.Element(0, true)
//
// # Text output
//
// TextWriter renders entities as an indented outline and omits unset fields, which
// makes it suitable for printing diff residuals.
package msdata
