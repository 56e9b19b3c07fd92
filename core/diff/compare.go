package diff

import (
	"time"

	"msforge/core/msdata"

	"go.uber.org/zap"
)

// Comparator computes the residuals of a against b for one entity type.
// Comparators never modify their operands.
type Comparator[T any] func(a, b T, cfg *Config) (aMinusB, bMinusA T, err error)

func infallible[T any](fn func(a, b T, cfg *Config) (T, T)) Comparator[T] {
	return func(a, b T, cfg *Config) (T, T, error) {
		aB, bA := fn(a, b, cfg)
		return aB, bA, nil
	}
}

// Comparators for the entity types of a document.
var (
	ParamGroup              = infallible(diffParamGroup)
	SourceFile              = infallible(diffSourceFile)
	Sample                  = infallible(diffSample)
	Software                = infallible(diffSoftware)
	ScanSettings            = infallible(diffScanSettings)
	InstrumentConfiguration = infallible(diffInstrumentConfiguration)
	DataProcessing          = infallible(diffDataProcessing)
	BinaryDataArray         = infallible(diffBinaryDataArray)
	Spectrum                = infallible(diffSpectrum)
	Chromatogram            = infallible(diffChromatogram)

	Run      Comparator[*msdata.Run]      = diffRun
	Document Comparator[*msdata.Document] = diffDocument
)

// Printable is an Entity that can be rendered by Format.
type Printable interface {
	Entity
	msdata.TextWritable
}

// Compare runs cmp over a and b with the given options.
func Compare[T Printable](a, b T, cmp Comparator[T], opts ...Option) (*Result[T], error) {
	cfg := NewConfig(opts...)
	start := time.Now()
	aB, bA, err := cmp(a, b, cfg)
	if err != nil {
		return nil, err
	}
	r := &Result[T]{AMinusB: aB, BMinusA: bA, Elapsed: time.Since(start)}
	cfg.Logger().Debug("diff complete",
		zap.Bool("different", r.Different()),
		zap.Duration("elapsed", r.Elapsed),
	)
	return r, nil
}

// Equal reports whether cmp finds no difference between a and b.
func Equal[T Entity](a, b T, cmp Comparator[T], opts ...Option) (bool, error) {
	aB, bA, err := cmp(a, b, NewConfig(opts...))
	if err != nil {
		return false, err
	}
	return aB.Empty() && bA.Empty(), nil
}

// Documents compares two documents.
func Documents(a, b *msdata.Document, opts ...Option) (*Result[*msdata.Document], error) {
	return Compare(a, b, Document, opts...)
}

// Runs compares two runs.
func Runs(a, b *msdata.Run, opts ...Option) (*Result[*msdata.Run], error) {
	return Compare(a, b, Run, opts...)
}

// Spectra compares two spectra.
func Spectra(a, b *msdata.Spectrum, opts ...Option) (*Result[*msdata.Spectrum], error) {
	return Compare(a, b, Spectrum, opts...)
}

// Chromatograms compares two chromatograms.
func Chromatograms(a, b *msdata.Chromatogram, opts ...Option) (*Result[*msdata.Chromatogram], error) {
	return Compare(a, b, Chromatogram, opts...)
}

// SpectrumLists compares two spectrum lists index by index.
func SpectrumLists(a, b msdata.SpectrumList, opts ...Option) (*Result[*msdata.SpectrumListSimple], error) {
	return compareLists(a, b, diffSpectrumList, opts)
}

// ChromatogramLists compares two chromatogram lists index by index.
func ChromatogramLists(a, b msdata.ChromatogramList, opts ...Option) (*Result[*msdata.ChromatogramListSimple], error) {
	return compareLists(a, b, diffChromatogramList, opts)
}

func compareLists[T msdata.Record[T]](a, b msdata.List[T], fn func(a, b msdata.List[T], cfg *Config) (*msdata.ListSimple[T], *msdata.ListSimple[T], error), opts []Option) (*Result[*msdata.ListSimple[T]], error) {
	cfg := NewConfig(opts...)
	start := time.Now()
	aB, bA, err := fn(a, b, cfg)
	if err != nil {
		return nil, err
	}
	return &Result[*msdata.ListSimple[T]]{AMinusB: aB, BMinusA: bA, Elapsed: time.Since(start)}, nil
}
