package msdata

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"msforge/core/params"
)

// MaxTextValues caps the number of binary values printed per array.
const MaxTextValues = 20

// TextWriter renders entities as an indented, stable, human readable outline.
// Unset fields are omitted so residuals print only what differs.
type TextWriter struct {
	w     io.Writer
	depth int
	err   error
}

// NewTextWriter creates a writer that starts at the given indentation depth.
func NewTextWriter(w io.Writer, depth int) *TextWriter {
	return &TextWriter{w: w, depth: depth}
}

// Err returns the first write error encountered.
func (t *TextWriter) Err() error { return t.err }

// TextWritable is implemented by every entity that can be printed.
type TextWritable interface {
	WriteText(t *TextWriter)
}

// Text renders v into a string.
func Text(v TextWritable) string {
	var sb strings.Builder
	v.WriteText(NewTextWriter(&sb, 0))
	return sb.String()
}

func (t *TextWriter) line(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, "%s%s\n", strings.Repeat("  ", t.depth), fmt.Sprintf(format, args...))
}

func (t *TextWriter) field(name, value string) {
	if value != "" {
		t.line("%s: %s", name, value)
	}
}

func (t *TextWriter) nested(name string, v TextWritable) {
	t.line("%s:", name)
	t.depth++
	v.WriteText(t)
	t.depth--
}

// Params writes the parameters of pc, group references first.
func (t *TextWriter) Params(pc *params.ParamContainer) {
	for _, g := range pc.ParamGroups {
		if g != nil {
			t.line("referenceableParamGroupRef: %s", g.ID)
		}
	}
	for _, p := range pc.CVParams {
		s := p.Name()
		if p.Value != "" {
			s += ", " + p.Value
		}
		if u := p.UnitsName(); u != "" {
			s += " " + u
		}
		t.line("cvParam: %s", s)
	}
	for _, p := range pc.UserParams {
		t.line("userParam: %s", p.String())
	}
}

// WriteParamGroup writes a shared parameter group.
func (t *TextWriter) WriteParamGroup(g *params.ParamGroup) {
	t.line("paramGroup:")
	t.depth++
	t.field("id", g.ID)
	t.Params(&g.ParamContainer)
	t.depth--
}

func (s *SourceFile) WriteText(t *TextWriter) {
	t.field("id", s.ID)
	t.field("name", s.Name)
	t.field("location", s.Location)
	t.Params(&s.ParamContainer)
}

func (c *Contact) WriteText(t *TextWriter) { t.Params(&c.ParamContainer) }

func (f *FileDescription) WriteText(t *TextWriter) {
	if !f.FileContent.Empty() {
		t.line("fileContent:")
		t.depth++
		t.Params(&f.FileContent)
		t.depth--
	}
	for _, sf := range f.SourceFiles {
		if sf != nil {
			t.nested("sourceFile", sf)
		}
	}
	for i := range f.Contacts {
		t.nested("contact", &f.Contacts[i])
	}
}

func (s *Sample) WriteText(t *TextWriter) {
	t.field("id", s.ID)
	t.field("name", s.Name)
	t.Params(&s.ParamContainer)
}

func (c *Component) WriteText(t *TextWriter) {
	if c.Type != ComponentUnknown {
		t.field("type", c.Type.String())
	}
	if c.Order != 0 {
		t.field("order", strconv.Itoa(c.Order))
	}
	t.Params(&c.ParamContainer)
}

func (s *Software) WriteText(t *TextWriter) {
	t.field("id", s.ID)
	t.field("version", s.Version)
	t.Params(&s.ParamContainer)
}

func (tg *Target) WriteText(t *TextWriter) { t.Params(&tg.ParamContainer) }

func (s *ScanSettings) WriteText(t *TextWriter) {
	t.field("id", s.ID)
	for _, sf := range s.SourceFiles {
		if sf != nil {
			t.field("sourceFileRef", sf.ID)
		}
	}
	for i := range s.Targets {
		t.nested("target", &s.Targets[i])
	}
	t.Params(&s.ParamContainer)
}

func (ic *InstrumentConfiguration) WriteText(t *TextWriter) {
	t.field("id", ic.ID)
	for i := range ic.ComponentList {
		t.nested("component", &ic.ComponentList[i])
	}
	if ic.Software != nil {
		t.nested("software", ic.Software)
	}
	if ic.ScanSettings != nil {
		t.field("scanSettingsRef", ic.ScanSettings.ID)
	}
	t.Params(&ic.ParamContainer)
}

func (m *ProcessingMethod) WriteText(t *TextWriter) {
	t.field("order", strconv.Itoa(m.Order))
	if m.Software != nil {
		t.field("softwareRef", m.Software.ID)
	}
	t.Params(&m.ParamContainer)
}

func (dp *DataProcessing) WriteText(t *TextWriter) {
	t.field("id", dp.ID)
	for i := range dp.ProcessingMethods {
		t.nested("processingMethod", &dp.ProcessingMethods[i])
	}
}

func (w *ScanWindow) WriteText(t *TextWriter) { t.Params(&w.ParamContainer) }

func (s *Scan) WriteText(t *TextWriter) {
	t.field("spectrumRef", s.SpectrumID)
	t.field("externalSpectrumID", s.ExternalSpectrumID)
	if s.SourceFile != nil {
		t.field("sourceFileRef", s.SourceFile.ID)
	}
	if s.InstrumentConfiguration != nil {
		t.field("instrumentConfigurationRef", s.InstrumentConfiguration.ID)
	}
	for i := range s.ScanWindows {
		t.nested("scanWindow", &s.ScanWindows[i])
	}
	t.Params(&s.ParamContainer)
}

func (l *ScanList) WriteText(t *TextWriter) {
	t.Params(&l.ParamContainer)
	for i := range l.Scans {
		t.nested("scan", &l.Scans[i])
	}
}

func (w *IsolationWindow) WriteText(t *TextWriter) { t.Params(&w.ParamContainer) }

func (s *SelectedIon) WriteText(t *TextWriter) { t.Params(&s.ParamContainer) }

func (a *Activation) WriteText(t *TextWriter) { t.Params(&a.ParamContainer) }

func (p *Precursor) WriteText(t *TextWriter) {
	t.field("spectrumRef", p.SpectrumID)
	t.field("externalSpectrumID", p.ExternalSpectrumID)
	if p.SourceFile != nil {
		t.field("sourceFileRef", p.SourceFile.ID)
	}
	if !p.IsolationWindow.Empty() {
		t.nested("isolationWindow", &p.IsolationWindow)
	}
	for i := range p.SelectedIons {
		t.nested("selectedIon", &p.SelectedIons[i])
	}
	if !p.Activation.Empty() {
		t.nested("activation", &p.Activation)
	}
	t.Params(&p.ParamContainer)
}

func (p *Product) WriteText(t *TextWriter) {
	if !p.IsolationWindow.Empty() {
		t.nested("isolationWindow", &p.IsolationWindow)
	}
}

func (a *BinaryDataArray) WriteText(t *TextWriter) {
	if a.DataProcessing != nil {
		t.field("dataProcessingRef", a.DataProcessing.ID)
	}
	t.Params(&a.ParamContainer)
	if len(a.Data) == 0 {
		return
	}
	n := min(len(a.Data), MaxTextValues)
	vals := make([]string, n)
	for i := 0; i < n; i++ {
		vals[i] = strconv.FormatFloat(a.Data[i], 'g', -1, 64)
	}
	suffix := ""
	if len(a.Data) > n {
		suffix = " ..."
	}
	t.line("binary (%d): %s%s", len(a.Data), strings.Join(vals, " "), suffix)
}

func (t *TextWriter) identity(index int, id, nativeID string, defaultArrayLength int) {
	if index != IndexNone {
		t.field("index", strconv.Itoa(index))
	}
	t.field("id", id)
	t.field("nativeID", nativeID)
	if defaultArrayLength != 0 {
		t.field("defaultArrayLength", strconv.Itoa(defaultArrayLength))
	}
}

func (s *Spectrum) WriteText(t *TextWriter) {
	t.line("spectrum:")
	t.depth++
	defer func() { t.depth-- }()
	t.identity(s.Index, s.ID, s.NativeID, s.DefaultArrayLength)
	if s.DataProcessing != nil {
		t.field("dataProcessingRef", s.DataProcessing.ID)
	}
	if s.SourceFile != nil {
		t.field("sourceFileRef", s.SourceFile.ID)
	}
	t.Params(&s.ParamContainer)
	if !s.ScanList.Empty() {
		t.nested("scanList", &s.ScanList)
	}
	for i := range s.Precursors {
		t.nested("precursor", &s.Precursors[i])
	}
	for i := range s.Products {
		t.nested("product", &s.Products[i])
	}
	for _, a := range s.BinaryDataArrays {
		if a != nil {
			t.nested("binaryDataArray", a)
		}
	}
}

func (c *Chromatogram) WriteText(t *TextWriter) {
	t.line("chromatogram:")
	t.depth++
	defer func() { t.depth-- }()
	t.identity(c.Index, c.ID, c.NativeID, c.DefaultArrayLength)
	if c.DataProcessing != nil {
		t.field("dataProcessingRef", c.DataProcessing.ID)
	}
	t.Params(&c.ParamContainer)
	if !c.Precursor.Empty() {
		t.nested("precursor", &c.Precursor)
	}
	if !c.Product.Empty() {
		t.nested("product", &c.Product)
	}
	for _, a := range c.BinaryDataArrays {
		if a != nil {
			t.nested("binaryDataArray", a)
		}
	}
}

// WriteSpectrumList writes every element of l with full data.
func (t *TextWriter) WriteSpectrumList(l SpectrumList) error {
	return writeList(t, "spectrumList", l)
}

// WriteChromatogramList writes every element of l with full data.
func (t *TextWriter) WriteChromatogramList(l ChromatogramList) error {
	return writeList(t, "chromatogramList", l)
}

func writeList[T TextWritable](t *TextWriter, name string, l List[T]) error {
	if l == nil {
		return nil
	}
	t.line("%s (%d):", name, l.Size())
	t.depth++
	defer func() { t.depth-- }()
	if dp := l.DataProcessing(); dp != nil {
		t.field("defaultDataProcessingRef", dp.ID)
	}
	for i := 0; i < l.Size(); i++ {
		e, err := l.Element(i, true)
		if err != nil {
			return err
		}
		e.WriteText(t)
	}
	return t.err
}

func (r *Run) WriteText(t *TextWriter) {
	t.field("id", r.ID)
	if r.DefaultInstrumentConfiguration != nil {
		t.field("defaultInstrumentConfigurationRef", r.DefaultInstrumentConfiguration.ID)
	}
	if r.Sample != nil {
		t.field("sampleRef", r.Sample.ID)
	}
	t.field("startTimeStamp", r.StartTimeStamp)
	if r.DefaultSourceFile != nil {
		t.field("defaultSourceFileRef", r.DefaultSourceFile.ID)
	}
	t.Params(&r.ParamContainer)
	if !emptyList[*Spectrum](r.SpectrumList) {
		if err := t.WriteSpectrumList(r.SpectrumList); err != nil && t.err == nil {
			t.err = err
		}
	}
	if !emptyList[*Chromatogram](r.ChromatogramList) {
		if err := t.WriteChromatogramList(r.ChromatogramList); err != nil && t.err == nil {
			t.err = err
		}
	}
}

func (d *Document) WriteText(t *TextWriter) {
	t.field("accession", d.Accession)
	t.field("id", d.ID)
	t.field("version", d.Version)
	for _, v := range d.CVs {
		t.line("cv: %s %s %s %s", v.ID, v.FullName, v.Version, v.URI)
	}
	if !d.FileDescription.Empty() {
		t.nested("fileDescription", &d.FileDescription)
	}
	for _, g := range d.ParamGroups {
		if g != nil {
			t.WriteParamGroup(g)
		}
	}
	for _, s := range d.Samples {
		if s != nil {
			t.nested("sample", s)
		}
	}
	for _, s := range d.Softwares {
		if s != nil {
			t.nested("software", s)
		}
	}
	for _, s := range d.ScanSettings {
		if s != nil {
			t.nested("scanSettings", s)
		}
	}
	for _, ic := range d.InstrumentConfigurations {
		if ic != nil {
			t.nested("instrumentConfiguration", ic)
		}
	}
	for _, dp := range d.DataProcessings {
		if dp != nil {
			t.nested("dataProcessing", dp)
		}
	}
	if !d.Run.Empty() {
		t.nested("run", &d.Run)
	}
}
