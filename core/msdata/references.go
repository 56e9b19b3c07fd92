package msdata

import "msforge/core/params"

// Resolver re-links shared references to the canonical top-level instances of
// a document. Decoded snapshots carry one copy of a shared entity per holder;
// after resolution every holder points at the same instance again.
type Resolver struct {
	paramGroups     map[string]*params.ParamGroup
	sourceFiles     map[string]*SourceFile
	samples         map[string]*Sample
	softwares       map[string]*Software
	scanSettings    map[string]*ScanSettings
	instruments     map[string]*InstrumentConfiguration
	dataProcessings map[string]*DataProcessing
	// listProcessings holds list level records that extend a document level
	// record under the same id.
	listProcessings map[string][]*DataProcessing
}

func indexByID[T any](items []*T, id func(*T) string) map[string]*T {
	m := make(map[string]*T, len(items))
	for _, it := range items {
		if it != nil {
			if _, dup := m[id(it)]; !dup {
				m[id(it)] = it
			}
		}
	}
	return m
}

func canonical[T any](m map[string]*T, p *T, id string) *T {
	if p == nil {
		return nil
	}
	if c, ok := m[id]; ok {
		return c
	}
	return p
}

// ResolveReferences re-links the document level references of doc and returns
// the resolver so list elements can be resolved as they are loaded.
func ResolveReferences(doc *Document) *Resolver {
	r := &Resolver{
		paramGroups:     indexByID(doc.ParamGroups, func(g *params.ParamGroup) string { return g.ID }),
		sourceFiles:     indexByID(doc.FileDescription.SourceFiles, func(s *SourceFile) string { return s.ID }),
		samples:         indexByID(doc.Samples, func(s *Sample) string { return s.ID }),
		softwares:       indexByID(doc.Softwares, func(s *Software) string { return s.ID }),
		scanSettings:    indexByID(doc.ScanSettings, func(s *ScanSettings) string { return s.ID }),
		instruments:     indexByID(doc.InstrumentConfigurations, func(ic *InstrumentConfiguration) string { return ic.ID }),
		dataProcessings: indexByID(doc.DataProcessings, func(dp *DataProcessing) string { return dp.ID }),
		listProcessings: make(map[string][]*DataProcessing),
	}

	for _, g := range doc.ParamGroups {
		if g != nil {
			r.groups(&g.ParamContainer)
		}
	}
	r.groups(&doc.FileDescription.FileContent)
	for _, sf := range doc.FileDescription.SourceFiles {
		if sf != nil {
			r.groups(&sf.ParamContainer)
		}
	}
	for i := range doc.FileDescription.Contacts {
		r.groups(&doc.FileDescription.Contacts[i].ParamContainer)
	}
	for _, s := range doc.Samples {
		if s != nil {
			r.groups(&s.ParamContainer)
		}
	}
	for _, sw := range doc.Softwares {
		if sw != nil {
			r.groups(&sw.ParamContainer)
		}
	}
	for _, ss := range doc.ScanSettings {
		if ss == nil {
			continue
		}
		r.sourceFileRefs(ss.SourceFiles)
		for i := range ss.Targets {
			r.groups(&ss.Targets[i].ParamContainer)
		}
		r.groups(&ss.ParamContainer)
	}
	for _, ic := range doc.InstrumentConfigurations {
		if ic == nil {
			continue
		}
		ic.Software = r.software(ic.Software)
		if ic.ScanSettings != nil {
			ic.ScanSettings = canonical(r.scanSettings, ic.ScanSettings, ic.ScanSettings.ID)
		}
		for i := range ic.ComponentList {
			r.groups(&ic.ComponentList[i].ParamContainer)
		}
		r.groups(&ic.ParamContainer)
	}
	for _, dp := range doc.DataProcessings {
		r.processing(dp)
	}

	run := &doc.Run
	run.DefaultInstrumentConfiguration = r.instrument(run.DefaultInstrumentConfiguration)
	if run.Sample != nil {
		run.Sample = canonical(r.samples, run.Sample, run.Sample.ID)
	}
	run.DefaultSourceFile = r.sourceFile(run.DefaultSourceFile)
	r.groups(&run.ParamContainer)
	return r
}

// Spectrum re-links the references held by s.
func (r *Resolver) Spectrum(s *Spectrum) {
	s.DataProcessing = r.dataProcessing(s.DataProcessing)
	s.SourceFile = r.sourceFile(s.SourceFile)
	r.groups(&s.ParamContainer)
	r.groups(&s.ScanList.ParamContainer)
	for i := range s.ScanList.Scans {
		scan := &s.ScanList.Scans[i]
		scan.SourceFile = r.sourceFile(scan.SourceFile)
		scan.InstrumentConfiguration = r.instrument(scan.InstrumentConfiguration)
		for j := range scan.ScanWindows {
			r.groups(&scan.ScanWindows[j].ParamContainer)
		}
		r.groups(&scan.ParamContainer)
	}
	for i := range s.Precursors {
		r.precursor(&s.Precursors[i])
	}
	for i := range s.Products {
		r.groups(&s.Products[i].IsolationWindow.ParamContainer)
	}
	r.arrays(s.BinaryDataArrays)
}

// Chromatogram re-links the references held by c.
func (r *Resolver) Chromatogram(c *Chromatogram) {
	c.DataProcessing = r.dataProcessing(c.DataProcessing)
	r.groups(&c.ParamContainer)
	r.precursor(&c.Precursor)
	r.groups(&c.Product.IsolationWindow.ParamContainer)
	r.arrays(c.BinaryDataArrays)
}

// DataProcessing returns the canonical instance for dp.
func (r *Resolver) DataProcessing(dp *DataProcessing) *DataProcessing {
	return r.dataProcessing(dp)
}

// RegisterListProcessing records the processing record reported by a list.
// Wrappers extend the inner record under its id, so a list record may differ
// from the document level one; registered records win for elements carrying
// the same content. It returns the canonical instance for dp.
func (r *Resolver) RegisterListProcessing(dp *DataProcessing) *DataProcessing {
	if dp == nil {
		return nil
	}
	if same := r.sameProcessing(dp); same != nil {
		return same
	}
	r.processing(dp)
	r.listProcessings[dp.ID] = append(r.listProcessings[dp.ID], dp)
	return dp
}

func (r *Resolver) sameProcessing(dp *DataProcessing) *DataProcessing {
	text := Text(dp)
	if c, ok := r.dataProcessings[dp.ID]; ok && Text(c) == text {
		return c
	}
	for _, c := range r.listProcessings[dp.ID] {
		if Text(c) == text {
			return c
		}
	}
	return nil
}

func (r *Resolver) precursor(p *Precursor) {
	p.SourceFile = r.sourceFile(p.SourceFile)
	r.groups(&p.IsolationWindow.ParamContainer)
	for i := range p.SelectedIons {
		r.groups(&p.SelectedIons[i].ParamContainer)
	}
	r.groups(&p.Activation.ParamContainer)
	r.groups(&p.ParamContainer)
}

func (r *Resolver) arrays(arrays []*BinaryDataArray) {
	for _, a := range arrays {
		if a == nil {
			continue
		}
		a.DataProcessing = r.dataProcessing(a.DataProcessing)
		r.groups(&a.ParamContainer)
	}
}

func (r *Resolver) processing(dp *DataProcessing) {
	if dp == nil {
		return
	}
	for i := range dp.ProcessingMethods {
		m := &dp.ProcessingMethods[i]
		m.Software = r.software(m.Software)
		r.groups(&m.ParamContainer)
	}
}

func (r *Resolver) groups(pc *params.ParamContainer) {
	for i, g := range pc.ParamGroups {
		if g != nil {
			pc.ParamGroups[i] = canonical(r.paramGroups, g, g.ID)
		}
	}
}

func (r *Resolver) sourceFileRefs(refs []*SourceFile) {
	for i, sf := range refs {
		refs[i] = r.sourceFile(sf)
	}
}

func (r *Resolver) sourceFile(sf *SourceFile) *SourceFile {
	if sf == nil {
		return nil
	}
	return canonical(r.sourceFiles, sf, sf.ID)
}

func (r *Resolver) software(sw *Software) *Software {
	if sw == nil {
		return nil
	}
	return canonical(r.softwares, sw, sw.ID)
}

func (r *Resolver) instrument(ic *InstrumentConfiguration) *InstrumentConfiguration {
	if ic == nil {
		return nil
	}
	return canonical(r.instruments, ic, ic.ID)
}

func (r *Resolver) dataProcessing(dp *DataProcessing) *DataProcessing {
	if dp == nil {
		return nil
	}
	if len(r.listProcessings[dp.ID]) > 0 {
		if same := r.sameProcessing(dp); same != nil {
			return same
		}
	}
	return canonical(r.dataProcessings, dp, dp.ID)
}
