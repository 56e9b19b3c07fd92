package msdata

import (
	"fmt"

	"msforge/core/params"
)

// emptyRef treats an unset shared reference like an empty one.
func emptyRef[E any, P interface {
	*E
	Empty() bool
}](p P) bool {
	return p == nil || p.Empty()
}

// SourceFile describes a file the run was derived from.
type SourceFile struct {
	ID       string `json:"id" msgpack:"id"`
	Name     string `json:"name,omitempty" msgpack:"name,omitempty"`
	Location string `json:"location,omitempty" msgpack:"location,omitempty"`
	params.ParamContainer
}

// NewSourceFile creates a source file record.
func NewSourceFile(id, name, location string) *SourceFile {
	return &SourceFile{ID: id, Name: name, Location: location}
}

func (s *SourceFile) Empty() bool {
	return s.ID == "" && s.Name == "" && s.Location == "" && s.ParamContainer.Empty()
}

// Contact holds the contact annotations of a person or organization.
type Contact struct {
	params.ParamContainer
}

func (c *Contact) Empty() bool { return c.ParamContainer.Empty() }

// FileDescription summarizes the content and provenance of a document.
type FileDescription struct {
	// FileContent annotates what kinds of spectra the document holds.
	FileContent params.ParamContainer `json:"file_content" msgpack:"file_content"`
	// SourceFiles are shared references to the originating files.
	SourceFiles []*SourceFile `json:"source_files,omitempty" msgpack:"source_files,omitempty"`
	// Contacts lists the people responsible for the data.
	Contacts []Contact `json:"contacts,omitempty" msgpack:"contacts,omitempty"`
}

func (f *FileDescription) Empty() bool {
	return f.FileContent.Empty() && len(f.SourceFiles) == 0 && len(f.Contacts) == 0
}

// Sample describes the analyzed material.
type Sample struct {
	ID   string `json:"id" msgpack:"id"`
	Name string `json:"name,omitempty" msgpack:"name,omitempty"`
	params.ParamContainer
}

// NewSample creates a sample record.
func NewSample(id, name string) *Sample {
	return &Sample{ID: id, Name: name}
}

func (s *Sample) Empty() bool {
	return s.ID == "" && s.Name == "" && s.ParamContainer.Empty()
}

// ComponentType classifies an instrument component.
type ComponentType int

const (
	ComponentUnknown ComponentType = iota
	ComponentSource
	ComponentAnalyzer
	ComponentDetector
)

var componentTypeNames = map[ComponentType]string{
	ComponentUnknown:  "unknown",
	ComponentSource:   "source",
	ComponentAnalyzer: "analyzer",
	ComponentDetector: "detector",
}

func (t ComponentType) String() string {
	if s, ok := componentTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("ComponentType(%d)", int(t))
}

// MarshalText encodes the component type by name.
func (t ComponentType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a name produced by MarshalText.
func (t *ComponentType) UnmarshalText(text []byte) error {
	for k, v := range componentTypeNames {
		if v == string(text) {
			*t = k
			return nil
		}
	}
	return fmt.Errorf("msdata: unknown component type %q", text)
}

// Component is one stage of an instrument configuration.
type Component struct {
	Type  ComponentType `json:"type" msgpack:"type"`
	Order int           `json:"order" msgpack:"order"`
	params.ParamContainer
}

// NewComponent creates a component with the given type and order.
func NewComponent(t ComponentType, order int) Component {
	return Component{Type: t, Order: order}
}

func (c *Component) Empty() bool {
	return c.Type == ComponentUnknown && c.Order == 0 && c.ParamContainer.Empty()
}

// ComponentList holds the ordered components of an instrument configuration.
type ComponentList []Component

// Source returns the index-th source component.
func (l ComponentList) Source(index int) (*Component, error) {
	return l.nth(ComponentSource, index)
}

// Analyzer returns the index-th analyzer component.
func (l ComponentList) Analyzer(index int) (*Component, error) {
	return l.nth(ComponentAnalyzer, index)
}

// Detector returns the index-th detector component.
func (l ComponentList) Detector(index int) (*Component, error) {
	return l.nth(ComponentDetector, index)
}

func (l ComponentList) nth(t ComponentType, index int) (*Component, error) {
	count := 0
	for i := range l {
		if l[i].Type != t {
			continue
		}
		if count == index {
			return &l[i], nil
		}
		count++
	}
	return nil, NewIndexError("ComponentList."+t.String(), index, count)
}

// Software describes a program that produced or processed the data.
type Software struct {
	ID      string `json:"id" msgpack:"id"`
	Version string `json:"version,omitempty" msgpack:"version,omitempty"`
	params.ParamContainer
}

// NewSoftware creates a software record.
func NewSoftware(id, version string) *Software {
	return &Software{ID: id, Version: version}
}

func (s *Software) Empty() bool {
	return s.ID == "" && s.Version == "" && s.ParamContainer.Empty()
}

// Target is a precursor or product target of a scan settings block.
type Target struct {
	params.ParamContainer
}

func (t *Target) Empty() bool { return t.ParamContainer.Empty() }

// ScanSettings describes acquisition settings shared by instrument configurations.
type ScanSettings struct {
	ID          string        `json:"id" msgpack:"id"`
	SourceFiles []*SourceFile `json:"source_files,omitempty" msgpack:"source_files,omitempty"`
	Targets     []Target      `json:"targets,omitempty" msgpack:"targets,omitempty"`
	params.ParamContainer
}

func (s *ScanSettings) Empty() bool {
	return s.ID == "" && len(s.SourceFiles) == 0 && len(s.Targets) == 0 && s.ParamContainer.Empty()
}

// InstrumentConfiguration describes one hardware setup used during the run.
type InstrumentConfiguration struct {
	ID            string        `json:"id" msgpack:"id"`
	ComponentList ComponentList `json:"components,omitempty" msgpack:"components,omitempty"`
	Software      *Software     `json:"software,omitempty" msgpack:"software,omitempty"`
	ScanSettings  *ScanSettings `json:"scan_settings,omitempty" msgpack:"scan_settings,omitempty"`
	params.ParamContainer
}

// NewInstrumentConfiguration creates an instrument configuration with the given id.
func NewInstrumentConfiguration(id string) *InstrumentConfiguration {
	return &InstrumentConfiguration{ID: id}
}

func (ic *InstrumentConfiguration) Empty() bool {
	return ic.ID == "" &&
		len(ic.ComponentList) == 0 &&
		emptyRef(ic.Software) &&
		emptyRef(ic.ScanSettings) &&
		ic.ParamContainer.Empty()
}

// ProcessingMethod is one ordered step of a data processing record.
type ProcessingMethod struct {
	Order    int       `json:"order" msgpack:"order"`
	Software *Software `json:"software,omitempty" msgpack:"software,omitempty"`
	params.ParamContainer
}

func (m *ProcessingMethod) Empty() bool {
	return m.Order == 0 && emptyRef(m.Software) && m.ParamContainer.Empty()
}

// DataProcessing records the processing steps applied to the data.
type DataProcessing struct {
	ID                string             `json:"id" msgpack:"id"`
	ProcessingMethods []ProcessingMethod `json:"processing_methods,omitempty" msgpack:"processing_methods,omitempty"`
}

// NewDataProcessing creates an empty data processing record.
func NewDataProcessing(id string) *DataProcessing {
	return &DataProcessing{ID: id}
}

func (dp *DataProcessing) Empty() bool {
	return dp.ID == "" && len(dp.ProcessingMethods) == 0
}

// Clone returns a copy that can be extended without touching dp.
func (dp *DataProcessing) Clone() *DataProcessing {
	if dp == nil {
		return nil
	}
	out := &DataProcessing{ID: dp.ID}
	for _, m := range dp.ProcessingMethods {
		m.ParamContainer = m.ParamContainer.Clone()
		out.ProcessingMethods = append(out.ProcessingMethods, m)
	}
	return out
}

// Append adds m as the last step, assigning it the next order.
func (dp *DataProcessing) Append(m ProcessingMethod) {
	m.Order = len(dp.ProcessingMethods)
	dp.ProcessingMethods = append(dp.ProcessingMethods, m)
}
