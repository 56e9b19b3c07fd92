package msdata

import (
	"msforge/core/cv"
	"msforge/core/params"
)

// IndexNone marks an unset list index.
const IndexNone = -1

// Identity is the lightweight addressing record of a list element.
type Identity struct {
	// Index is the dense position in the owning list.
	Index int `json:"index" msgpack:"index"`
	// ID is the document-local identifier.
	ID string `json:"id" msgpack:"id"`
	// NativeID is the identifier assigned by the originating reader.
	NativeID string `json:"native_id,omitempty" msgpack:"native_id,omitempty"`
}

// ScanWindow bounds the acquisition range of a scan.
type ScanWindow struct {
	params.ParamContainer
}

// NewScanWindow creates a scan window from lower and upper m/z limits.
func NewScanWindow(low, high float64) ScanWindow {
	var w ScanWindow
	w.Set(cv.MSScanWindowLowerLimit, low, cv.MSMZ)
	w.Set(cv.MSScanWindowUpperLimit, high, cv.MSMZ)
	return w
}

func (w *ScanWindow) Empty() bool { return w.ParamContainer.Empty() }

// Scan describes one acquisition contributing to a spectrum.
type Scan struct {
	SpectrumID              string                   `json:"spectrum_id,omitempty" msgpack:"spectrum_id,omitempty"`
	ExternalSpectrumID      string                   `json:"external_spectrum_id,omitempty" msgpack:"external_spectrum_id,omitempty"`
	SourceFile              *SourceFile              `json:"source_file,omitempty" msgpack:"source_file,omitempty"`
	InstrumentConfiguration *InstrumentConfiguration `json:"instrument_configuration,omitempty" msgpack:"instrument_configuration,omitempty"`
	ScanWindows             []ScanWindow             `json:"scan_windows,omitempty" msgpack:"scan_windows,omitempty"`
	params.ParamContainer
}

func (s *Scan) Empty() bool {
	return s.SpectrumID == "" &&
		s.ExternalSpectrumID == "" &&
		emptyRef(s.SourceFile) &&
		emptyRef(s.InstrumentConfiguration) &&
		len(s.ScanWindows) == 0 &&
		s.ParamContainer.Empty()
}

// ScanList groups the scans combined into a spectrum.
type ScanList struct {
	Scans []Scan `json:"scans,omitempty" msgpack:"scans,omitempty"`
	params.ParamContainer
}

func (l *ScanList) Empty() bool {
	return len(l.Scans) == 0 && l.ParamContainer.Empty()
}

// IsolationWindow describes the isolated m/z range of a precursor or product.
type IsolationWindow struct {
	params.ParamContainer
}

func (w *IsolationWindow) Empty() bool { return w.ParamContainer.Empty() }

// SelectedIon describes one ion selected for fragmentation.
type SelectedIon struct {
	params.ParamContainer
}

// NewSelectedIon creates a selected ion at mz with an optional charge state.
func NewSelectedIon(mz float64, charge int) SelectedIon {
	var ion SelectedIon
	ion.Set(cv.MSSelectedIonMZ, mz, cv.MSMZ)
	if charge != 0 {
		ion.Set(cv.MSChargeState, charge)
	}
	return ion
}

func (s *SelectedIon) Empty() bool { return s.ParamContainer.Empty() }

// Activation describes the dissociation applied to a precursor.
type Activation struct {
	params.ParamContainer
}

func (a *Activation) Empty() bool { return a.ParamContainer.Empty() }

// Precursor describes the ion(s) a fragment spectrum was derived from.
type Precursor struct {
	SpectrumID         string          `json:"spectrum_id,omitempty" msgpack:"spectrum_id,omitempty"`
	ExternalSpectrumID string          `json:"external_spectrum_id,omitempty" msgpack:"external_spectrum_id,omitempty"`
	SourceFile         *SourceFile     `json:"source_file,omitempty" msgpack:"source_file,omitempty"`
	IsolationWindow    IsolationWindow `json:"isolation_window" msgpack:"isolation_window"`
	SelectedIons       []SelectedIon   `json:"selected_ions,omitempty" msgpack:"selected_ions,omitempty"`
	Activation         Activation      `json:"activation" msgpack:"activation"`
	params.ParamContainer
}

func (p *Precursor) Empty() bool {
	return p.SpectrumID == "" &&
		p.ExternalSpectrumID == "" &&
		emptyRef(p.SourceFile) &&
		p.IsolationWindow.Empty() &&
		len(p.SelectedIons) == 0 &&
		p.Activation.Empty() &&
		p.ParamContainer.Empty()
}

// Product describes the isolation of fragment ions.
type Product struct {
	IsolationWindow IsolationWindow `json:"isolation_window" msgpack:"isolation_window"`
}

func (p *Product) Empty() bool { return p.IsolationWindow.Empty() }

// BinaryDataArray is a numeric axis of a spectrum or chromatogram.
// The ParamContainer says which axis it is (m/z, intensity, time).
type BinaryDataArray struct {
	DataProcessing *DataProcessing `json:"data_processing,omitempty" msgpack:"data_processing,omitempty"`
	Data           []float64       `json:"data" msgpack:"data"`
	params.ParamContainer
}

// NewBinaryDataArray creates an array of the given kind holding data.
func NewBinaryDataArray(kind cv.CVID, data []float64, units ...cv.CVID) *BinaryDataArray {
	a := &BinaryDataArray{Data: data}
	a.Set(kind, "", units...)
	return a
}

func (a *BinaryDataArray) Empty() bool {
	return emptyRef(a.DataProcessing) && len(a.Data) == 0 && a.ParamContainer.Empty()
}

// Spectrum is a single mass spectrum.
type Spectrum struct {
	Index              int                `json:"index" msgpack:"index"`
	ID                 string             `json:"id" msgpack:"id"`
	NativeID           string             `json:"native_id,omitempty" msgpack:"native_id,omitempty"`
	DefaultArrayLength int                `json:"default_array_length" msgpack:"default_array_length"`
	DataProcessing     *DataProcessing    `json:"data_processing,omitempty" msgpack:"data_processing,omitempty"`
	SourceFile         *SourceFile        `json:"source_file,omitempty" msgpack:"source_file,omitempty"`
	ScanList           ScanList           `json:"scan_list" msgpack:"scan_list"`
	Precursors         []Precursor        `json:"precursors,omitempty" msgpack:"precursors,omitempty"`
	Products           []Product          `json:"products,omitempty" msgpack:"products,omitempty"`
	BinaryDataArrays   []*BinaryDataArray `json:"binary_data_arrays,omitempty" msgpack:"binary_data_arrays,omitempty"`
	params.ParamContainer
}

// NewSpectrum returns an empty spectrum with no index assigned.
func NewSpectrum() *Spectrum {
	return &Spectrum{Index: IndexNone}
}

// Identity returns the addressing record of the spectrum.
func (s *Spectrum) Identity() Identity {
	return Identity{Index: s.Index, ID: s.ID, NativeID: s.NativeID}
}

func (s *Spectrum) Empty() bool {
	return s.Index == IndexNone &&
		s.ID == "" &&
		s.NativeID == "" &&
		s.DefaultArrayLength == 0 &&
		emptyRef(s.DataProcessing) &&
		emptyRef(s.SourceFile) &&
		s.ScanList.Empty() &&
		len(s.Precursors) == 0 &&
		len(s.Products) == 0 &&
		len(s.BinaryDataArrays) == 0 &&
		s.ParamContainer.Empty()
}

// Clone returns a spectrum that can be modified without affecting s.
// Binary arrays are shared and must be replaced rather than modified in place.
func (s *Spectrum) Clone() *Spectrum {
	out := *s
	out.ParamContainer = s.ParamContainer.Clone()
	out.BinaryDataArrays = append([]*BinaryDataArray(nil), s.BinaryDataArrays...)
	out.Precursors = append([]Precursor(nil), s.Precursors...)
	out.Products = append([]Product(nil), s.Products...)
	return &out
}

// Array returns the first binary array whose kind is-a id, or nil.
func (s *Spectrum) Array(id cv.CVID) *BinaryDataArray {
	return findArray(s.BinaryDataArrays, id)
}

// MZArray returns the m/z array, or nil.
func (s *Spectrum) MZArray() *BinaryDataArray { return s.Array(cv.MSMZArray) }

// IntensityArray returns the intensity array, or nil.
func (s *Spectrum) IntensityArray() *BinaryDataArray { return s.Array(cv.MSIntensityArray) }

// SetMZIntensityArrays replaces the binary arrays with an m/z and an intensity array.
func (s *Spectrum) SetMZIntensityArrays(mz, intensity []float64, intensityUnits cv.CVID) {
	s.BinaryDataArrays = []*BinaryDataArray{
		NewBinaryDataArray(cv.MSMZArray, mz, cv.MSMZ),
		NewBinaryDataArray(cv.MSIntensityArray, intensity, intensityUnits),
	}
	s.DefaultArrayLength = len(mz)
}

// MSLevel returns the ms level annotation, 0 if absent.
func (s *Spectrum) MSLevel() int {
	return s.CVParam(cv.MSMSLevel).ValueInt()
}

// Chromatogram is a single intensity trace over time.
type Chromatogram struct {
	Index              int                `json:"index" msgpack:"index"`
	ID                 string             `json:"id" msgpack:"id"`
	NativeID           string             `json:"native_id,omitempty" msgpack:"native_id,omitempty"`
	DefaultArrayLength int                `json:"default_array_length" msgpack:"default_array_length"`
	DataProcessing     *DataProcessing    `json:"data_processing,omitempty" msgpack:"data_processing,omitempty"`
	Precursor          Precursor          `json:"precursor" msgpack:"precursor"`
	Product            Product            `json:"product" msgpack:"product"`
	BinaryDataArrays   []*BinaryDataArray `json:"binary_data_arrays,omitempty" msgpack:"binary_data_arrays,omitempty"`
	params.ParamContainer
}

// NewChromatogram returns an empty chromatogram with no index assigned.
func NewChromatogram() *Chromatogram {
	return &Chromatogram{Index: IndexNone}
}

// Identity returns the addressing record of the chromatogram.
func (c *Chromatogram) Identity() Identity {
	return Identity{Index: c.Index, ID: c.ID, NativeID: c.NativeID}
}

func (c *Chromatogram) Empty() bool {
	return c.Index == IndexNone &&
		c.ID == "" &&
		c.NativeID == "" &&
		c.DefaultArrayLength == 0 &&
		emptyRef(c.DataProcessing) &&
		c.Precursor.Empty() &&
		c.Product.Empty() &&
		len(c.BinaryDataArrays) == 0 &&
		c.ParamContainer.Empty()
}

// Clone returns a chromatogram that can be modified without affecting c.
// Binary arrays are shared and must be replaced rather than modified in place.
func (c *Chromatogram) Clone() *Chromatogram {
	out := *c
	out.ParamContainer = c.ParamContainer.Clone()
	out.BinaryDataArrays = append([]*BinaryDataArray(nil), c.BinaryDataArrays...)
	return &out
}

// Array returns the first binary array whose kind is-a id, or nil.
func (c *Chromatogram) Array(id cv.CVID) *BinaryDataArray {
	return findArray(c.BinaryDataArrays, id)
}

// TimeArray returns the time array, or nil.
func (c *Chromatogram) TimeArray() *BinaryDataArray { return c.Array(cv.MSTimeArray) }

// IntensityArray returns the intensity array, or nil.
func (c *Chromatogram) IntensityArray() *BinaryDataArray { return c.Array(cv.MSIntensityArray) }

// SetTimeIntensityArrays replaces the binary arrays with a time and an intensity array.
func (c *Chromatogram) SetTimeIntensityArrays(time []float64, timeUnits cv.CVID, intensity []float64, intensityUnits cv.CVID) {
	c.BinaryDataArrays = []*BinaryDataArray{
		NewBinaryDataArray(cv.MSTimeArray, time, timeUnits),
		NewBinaryDataArray(cv.MSIntensityArray, intensity, intensityUnits),
	}
	c.DefaultArrayLength = len(time)
}

func findArray(arrays []*BinaryDataArray, id cv.CVID) *BinaryDataArray {
	for _, a := range arrays {
		if a != nil && a.HasCVParamChild(id) {
			return a
		}
	}
	return nil
}
