package snapshot

import (
	"encoding/json"
	"fmt"
	"io"

	"msforge/core/msdata"

	"github.com/vmihailenco/msgpack/v5"
)

// file is the encoded layout: the document without its lists, followed by
// the fully loaded list contents.
type file struct {
	Document               *msdata.Document       `json:"document" msgpack:"document"`
	Spectra                []*msdata.Spectrum     `json:"spectra,omitempty" msgpack:"spectra,omitempty"`
	SpectrumProcessing     *msdata.DataProcessing `json:"spectrum_processing,omitempty" msgpack:"spectrum_processing,omitempty"`
	Chromatograms          []*msdata.Chromatogram `json:"chromatograms,omitempty" msgpack:"chromatograms,omitempty"`
	ChromatogramProcessing *msdata.DataProcessing `json:"chromatogram_processing,omitempty" msgpack:"chromatogram_processing,omitempty"`
}

// Encode writes doc to w. Every list element is loaded with binary data, so
// wrapped lists are applied once here.
func Encode(w io.Writer, doc *msdata.Document, format Format) error {
	f := file{Document: doc}
	if l := doc.Run.SpectrumList; l != nil {
		list, err := msdata.Materialize[*msdata.Spectrum](l)
		if err != nil {
			return fmt.Errorf("snapshot: encode spectra: %w", err)
		}
		f.Spectra, f.SpectrumProcessing = list.Elements, list.DP
	}
	if l := doc.Run.ChromatogramList; l != nil {
		list, err := msdata.Materialize[*msdata.Chromatogram](l)
		if err != nil {
			return fmt.Errorf("snapshot: encode chromatograms: %w", err)
		}
		f.Chromatograms, f.ChromatogramProcessing = list.Elements, list.DP
	}

	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		return enc.Encode(&f)
	case Msgpack:
		return msgpack.NewEncoder(w).Encode(&f)
	}
	return fmt.Errorf("snapshot: encode %q: %w", format, ErrUnknownFormat)
}

// Decode reads a document written by Encode. The lists come back as in-memory
// lists and shared references are re-linked to the document level entities.
func Decode(r io.Reader, format Format) (*msdata.Document, error) {
	var f file
	var err error
	switch format {
	case JSON:
		err = json.NewDecoder(r).Decode(&f)
	case Msgpack:
		err = msgpack.NewDecoder(r).Decode(&f)
	default:
		return nil, fmt.Errorf("snapshot: decode %q: %w", format, ErrUnknownFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("snapshot: decode %s: %w", format, err)
	}
	if f.Document == nil {
		return nil, fmt.Errorf("snapshot: decode %s: missing document", format)
	}

	doc := f.Document
	res := msdata.ResolveReferences(doc)
	spectra := msdata.NewSpectrumListSimple(f.Spectra...)
	spectra.DP = res.RegisterListProcessing(f.SpectrumProcessing)
	for _, s := range spectra.Elements {
		if s != nil {
			res.Spectrum(s)
		}
	}
	chroms := msdata.NewChromatogramListSimple(f.Chromatograms...)
	chroms.DP = res.RegisterListProcessing(f.ChromatogramProcessing)
	for _, c := range chroms.Elements {
		if c != nil {
			res.Chromatogram(c)
		}
	}
	doc.Run.SpectrumList = spectra
	doc.Run.ChromatogramList = chroms
	return doc, nil
}
