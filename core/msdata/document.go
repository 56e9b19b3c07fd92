package msdata

import (
	"msforge/core/cv"
	"msforge/core/params"
)

// Run is a single acquisition holding the spectrum and chromatogram lists.
type Run struct {
	ID                             string                   `json:"id" msgpack:"id"`
	DefaultInstrumentConfiguration *InstrumentConfiguration `json:"default_instrument_configuration,omitempty" msgpack:"default_instrument_configuration,omitempty"`
	Sample                         *Sample                  `json:"sample,omitempty" msgpack:"sample,omitempty"`
	StartTimeStamp                 string                   `json:"start_time_stamp,omitempty" msgpack:"start_time_stamp,omitempty"`
	DefaultSourceFile              *SourceFile              `json:"default_source_file,omitempty" msgpack:"default_source_file,omitempty"`
	// SpectrumList and ChromatogramList are encoded separately by the snapshot codec.
	SpectrumList     SpectrumList     `json:"-" msgpack:"-"`
	ChromatogramList ChromatogramList `json:"-" msgpack:"-"`
	params.ParamContainer
}

func (r *Run) Empty() bool {
	return r.ID == "" &&
		emptyRef(r.DefaultInstrumentConfiguration) &&
		emptyRef(r.Sample) &&
		r.StartTimeStamp == "" &&
		emptyRef(r.DefaultSourceFile) &&
		emptyList[*Spectrum](r.SpectrumList) &&
		emptyList[*Chromatogram](r.ChromatogramList) &&
		r.ParamContainer.Empty()
}

func emptyList[T any](l List[T]) bool {
	if l == nil {
		return true
	}
	return l.Size() == 0 && emptyRef(l.DataProcessing())
}

// Document is the top-level container for one measurement run and its metadata.
type Document struct {
	Accession                string                     `json:"accession,omitempty" msgpack:"accession,omitempty"`
	ID                       string                     `json:"id" msgpack:"id"`
	Version                  string                     `json:"version,omitempty" msgpack:"version,omitempty"`
	CVs                      []cv.Vocabulary            `json:"cvs,omitempty" msgpack:"cvs,omitempty"`
	FileDescription          FileDescription            `json:"file_description" msgpack:"file_description"`
	ParamGroups              []*params.ParamGroup       `json:"param_groups,omitempty" msgpack:"param_groups,omitempty"`
	Samples                  []*Sample                  `json:"samples,omitempty" msgpack:"samples,omitempty"`
	Softwares                []*Software                `json:"softwares,omitempty" msgpack:"softwares,omitempty"`
	ScanSettings             []*ScanSettings            `json:"scan_settings,omitempty" msgpack:"scan_settings,omitempty"`
	InstrumentConfigurations []*InstrumentConfiguration `json:"instrument_configurations,omitempty" msgpack:"instrument_configurations,omitempty"`
	DataProcessings          []*DataProcessing          `json:"data_processings,omitempty" msgpack:"data_processings,omitempty"`
	Run                      Run                        `json:"run" msgpack:"run"`
}

// NewDocument creates a document carrying the default vocabularies.
func NewDocument(id string) *Document {
	return &Document{ID: id, CVs: cv.DefaultVocabularies()}
}

func (d *Document) Empty() bool {
	return d.Accession == "" &&
		d.ID == "" &&
		d.Version == "" &&
		len(d.CVs) == 0 &&
		d.FileDescription.Empty() &&
		len(d.ParamGroups) == 0 &&
		len(d.Samples) == 0 &&
		len(d.Softwares) == 0 &&
		len(d.ScanSettings) == 0 &&
		len(d.InstrumentConfigurations) == 0 &&
		len(d.DataProcessings) == 0 &&
		d.Run.Empty()
}

// AllDataProcessings returns the document level processing records followed by
// those reported by the run's lists, skipping records already listed by id.
func (d *Document) AllDataProcessings() []*DataProcessing {
	out := append([]*DataProcessing(nil), d.DataProcessings...)
	seen := make(map[string]bool, len(out))
	for _, dp := range out {
		if dp != nil {
			seen[dp.ID] = true
		}
	}
	add := func(dp *DataProcessing) {
		if dp == nil || seen[dp.ID] {
			return
		}
		seen[dp.ID] = true
		out = append(out, dp)
	}
	if d.Run.SpectrumList != nil {
		add(d.Run.SpectrumList.DataProcessing())
	}
	if d.Run.ChromatogramList != nil {
		add(d.Run.ChromatogramList.DataProcessing())
	}
	return out
}
