package merge

import (
	"errors"
	"fmt"
	"strings"

	"msforge/core/cv"
	"msforge/core/diff"
	"msforge/core/msdata"

	"go.uber.org/zap"
)

// ProcessingID names the processing record describing the merge.
const ProcessingID = "msforge_merge"

// ErrNoDocuments is returned when Documents is called without input.
var ErrNoDocuments = errors.New("merge: no documents")

type options struct {
	id       string
	diffOpts []diff.Option
	logger   *zap.Logger
}

// Option configures Documents.
type Option func(*options)

// WithID sets the merged document id. By default the distinct input ids are
// joined with "+".
func WithID(id string) Option {
	return func(o *options) { o.id = id }
}

// WithDiffOptions adds options to the comparison that decides whether two
// shared entities are the same, e.g. diff.IgnoreVersions().
func WithDiffOptions(opts ...diff.Option) Option {
	return func(o *options) { o.diffOpts = append(o.diffOpts, opts...) }
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// Documents merges docs into a new document. Shared entities are kept once per
// distinct content; spectra and chromatograms are concatenated in input order
// and renumbered. The inputs are not modified.
func Documents(docs []*msdata.Document, opts ...Option) (*msdata.Document, error) {
	if len(docs) == 0 {
		return nil, ErrNoDocuments
	}
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	m := &merger{
		out:      &msdata.Document{},
		diffOpts: append([]diff.Option{diff.IgnoreSpectra(), diff.IgnoreChromatograms()}, o.diffOpts...),
		logger:   o.logger,
		spectra:  msdata.NewSpectrumListSimple(),
		chroms:   msdata.NewChromatogramListSimple(),
	}

	var ids []string
	for i, doc := range docs {
		if doc == nil {
			return nil, fmt.Errorf("merge: document %d: nil", i)
		}
		if err := m.add(doc); err != nil {
			return nil, fmt.Errorf("merge: document %d (%s): %w", i, doc.ID, err)
		}
		if !contains(ids, doc.ID) {
			ids = append(ids, doc.ID)
		}
	}
	m.out.ID = o.id
	if m.out.ID == "" {
		m.out.ID = strings.Join(ids, "+")
	}

	dp := msdata.NewDataProcessing(ProcessingID)
	var method msdata.ProcessingMethod
	method.Set(cv.MSDataTransformation, "")
	method.SetUserParam("merged documents", len(docs), "xsd:int")
	dp.Append(method)
	m.out.DataProcessings = append(m.out.DataProcessings, dp)
	m.spectra.DP = dp
	m.chroms.DP = dp
	m.out.Run.SpectrumList = m.spectra
	m.out.Run.ChromatogramList = m.chroms

	m.logger.Info("merged documents",
		zap.Int("documents", len(docs)),
		zap.Int("spectra", len(m.spectra.Elements)),
		zap.Int("chromatograms", len(m.chroms.Elements)),
	)
	return m.out, nil
}

type merger struct {
	out      *msdata.Document
	diffOpts []diff.Option
	logger   *zap.Logger
	spectra  *msdata.SpectrumListSimple
	chroms   *msdata.ChromatogramListSimple
}

func (m *merger) add(doc *msdata.Document) error {
	out := m.out
	if out.Accession == "" {
		out.Accession = doc.Accession
	}
	if out.Version == "" {
		out.Version = doc.Version
	}
	for _, v := range doc.CVs {
		if !containsFunc(out.CVs, func(c cv.Vocabulary) bool { return c.ID == v.ID }) {
			out.CVs = append(out.CVs, v)
		}
	}

	fd := &out.FileDescription
	for _, p := range doc.FileDescription.FileContent.CVParams {
		if !fd.FileContent.HasCVParam(p.CVID) {
			fd.FileContent.Add(p)
		}
	}
	for _, c := range doc.FileDescription.Contacts {
		text := msdata.Text(&c)
		if !containsFunc(fd.Contacts, func(have msdata.Contact) bool { return msdata.Text(&have) == text }) {
			fd.Contacts = append(fd.Contacts, c)
		}
	}

	var err error
	if fd.SourceFiles, err = union(fd.SourceFiles, doc.FileDescription.SourceFiles, diff.SourceFile, m.diffOpts); err != nil {
		return err
	}
	if out.ParamGroups, err = union(out.ParamGroups, doc.ParamGroups, diff.ParamGroup, m.diffOpts); err != nil {
		return err
	}
	if out.Samples, err = union(out.Samples, doc.Samples, diff.Sample, m.diffOpts); err != nil {
		return err
	}
	if out.Softwares, err = union(out.Softwares, doc.Softwares, diff.Software, m.diffOpts); err != nil {
		return err
	}
	if out.ScanSettings, err = union(out.ScanSettings, doc.ScanSettings, diff.ScanSettings, m.diffOpts); err != nil {
		return err
	}
	if out.InstrumentConfigurations, err = union(out.InstrumentConfigurations, doc.InstrumentConfigurations, diff.InstrumentConfiguration, m.diffOpts); err != nil {
		return err
	}
	if out.DataProcessings, err = union(out.DataProcessings, doc.AllDataProcessings(), diff.DataProcessing, m.diffOpts); err != nil {
		return err
	}

	m.addRun(&doc.Run)
	if err := appendList[*msdata.Spectrum](m.spectra, doc.Run.SpectrumList, func(s *msdata.Spectrum, i int) { s.Index = i }); err != nil {
		return fmt.Errorf("spectra: %w", err)
	}
	if err := appendList[*msdata.Chromatogram](m.chroms, doc.Run.ChromatogramList, func(c *msdata.Chromatogram, i int) { c.Index = i }); err != nil {
		return fmt.Errorf("chromatograms: %w", err)
	}
	return nil
}

// addRun fills run fields left unset by earlier documents.
func (m *merger) addRun(run *msdata.Run) {
	out := &m.out.Run
	if out.ID == "" {
		out.ID = run.ID
	}
	if out.DefaultInstrumentConfiguration == nil {
		out.DefaultInstrumentConfiguration = run.DefaultInstrumentConfiguration
	}
	if out.Sample == nil {
		out.Sample = run.Sample
	}
	if out.StartTimeStamp == "" {
		out.StartTimeStamp = run.StartTimeStamp
	}
	if out.DefaultSourceFile == nil {
		out.DefaultSourceFile = run.DefaultSourceFile
	}
	for _, p := range run.CVParams {
		if !out.HasCVParam(p.CVID) {
			out.Add(p)
		}
	}
}

type entity interface {
	comparable
	diff.Entity
}

// union appends the entries of src for which no entry of dst compares equal.
func union[T entity](dst, src []T, cmp diff.Comparator[T], opts []diff.Option) ([]T, error) {
	var zero T
	for _, s := range src {
		if s == zero || s.Empty() {
			continue
		}
		found := false
		for _, d := range dst {
			eq, err := diff.Equal(d, s, cmp, opts...)
			if err != nil {
				return nil, err
			}
			if eq {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, s)
		}
	}
	return dst, nil
}

func appendList[T msdata.Record[T]](dst *msdata.ListSimple[T], src msdata.List[T], setIndex func(T, int)) error {
	if src == nil {
		return nil
	}
	n := src.Size()
	for i := 0; i < n; i++ {
		e, err := src.Element(i, true)
		if err != nil {
			return err
		}
		setIndex(e, len(dst.Elements))
		dst.Elements = append(dst.Elements, e)
	}
	return nil
}

func contains(ids []string, id string) bool {
	return containsFunc(ids, func(have string) bool { return have == id })
}

func containsFunc[T any](items []T, match func(T) bool) bool {
	for _, it := range items {
		if match(it) {
			return true
		}
	}
	return false
}
