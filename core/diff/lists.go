package diff

import (
	"fmt"

	"msforge/core/msdata"
	"msforge/core/params"

	"go.uber.org/zap"
)

// listKind carries the element specific parts of a list diff.
type listKind[T msdata.Record[T]] struct {
	name        string
	sizesDiffer string
	newElement  func() T
	diff        func(a, b T, cfg *Config) (T, T)
	params      func(T) *params.ParamContainer
	setIdentity func(T, msdata.Identity)
}

var spectrumKind = listKind[*msdata.Spectrum]{
	name:        "SpectrumList",
	sizesDiffer: SpectrumListSizesDiffer,
	newElement:  msdata.NewSpectrum,
	diff:        diffSpectrum,
	params:      func(s *msdata.Spectrum) *params.ParamContainer { return &s.ParamContainer },
	setIdentity: func(s *msdata.Spectrum, id msdata.Identity) { s.Index, s.ID = id.Index, id.ID },
}

var chromatogramKind = listKind[*msdata.Chromatogram]{
	name:        "ChromatogramList",
	sizesDiffer: ChromatogramListSizesDiffer,
	newElement:  msdata.NewChromatogram,
	diff:        diffChromatogram,
	params:      func(c *msdata.Chromatogram) *params.ParamContainer { return &c.ParamContainer },
	setIdentity: func(c *msdata.Chromatogram, id msdata.Identity) { c.Index, c.ID = id.Index, id.ID },
}

// diffList compares two lists element by element. Lists of different sizes
// yield a single sentinel element on the larger side and nothing else.
func diffList[T msdata.Record[T]](a, b msdata.List[T], cfg *Config, k listKind[T]) (*msdata.ListSimple[T], *msdata.ListSimple[T], error) {
	aB, bA := &msdata.ListSimple[T]{}, &msdata.ListSimple[T]{}
	if a == nil {
		a = &msdata.ListSimple[T]{}
	}
	if b == nil {
		b = &msdata.ListSimple[T]{}
	}

	if !cfg.IgnoreMetadata && !cfg.IgnoreDataProcessing {
		aB.DP, bA.DP = ptrDiff(a.DataProcessing(), b.DataProcessing(), cfg, diffDataProcessing)
	}

	if a.Size() != b.Size() {
		sentinel := k.newElement()
		k.params(sentinel).AddUserParam(k.sizesDiffer, nil, "")
		if a.Size() > b.Size() {
			aB.Elements = []T{sentinel}
		} else {
			bA.Elements = []T{sentinel}
		}
		cfg.Logger().Debug("list sizes differ",
			zap.String("list", k.name),
			zap.Int("a", a.Size()),
			zap.Int("b", b.Size()),
		)
		return aB, bA, nil
	}

	maxDiff := 0.0
	for i := 0; i < a.Size(); i++ {
		x, err := a.Element(i, true)
		if err != nil {
			return nil, nil, fmt.Errorf("diff: %s element %d of A: %w", k.name, i, err)
		}
		y, err := b.Element(i, true)
		if err != nil {
			return nil, nil, fmt.Errorf("diff: %s element %d of B: %w", k.name, i, err)
		}

		xB, yA := k.diff(x, y, cfg)

		xi, yi := x.Identity(), y.Identity()
		aFind, bFind := 0, 0
		if !cfg.IgnoreIdentity && xi.ID == yi.ID {
			aFind, bFind = a.Find(xi.ID), b.Find(yi.ID)
		}

		if xB.Empty() && yA.Empty() && aFind == bFind {
			continue
		}
		if aFind != bFind {
			k.setIdentity(xB, xi)
			k.setIdentity(yA, yi)
			k.params(xB).AddUserParam(FindResult, aFind, "")
			k.params(yA).AddUserParam(FindResult, bFind, "")
		}
		aB.Elements = append(aB.Elements, xB)
		bA.Elements = append(bA.Elements, yA)

		if d := elementDifference(k.params(xB)); d > maxDiff {
			maxDiff = d
		}
	}

	if maxDiff > 0 {
		if aB.DP == nil {
			aB.DP = &msdata.DataProcessing{}
		}
		if len(aB.DP.ProcessingMethods) == 0 {
			aB.DP.ProcessingMethods = []msdata.ProcessingMethod{{}}
		}
		m := &aB.DP.ProcessingMethods[len(aB.DP.ProcessingMethods)-1]
		m.ParamContainer = m.ParamContainer.Clone()
		m.SetUserParam(MaxBinaryDataArrayDifference, maxDiff, "")
	}

	cfg.Logger().Debug("list compared",
		zap.String("list", k.name),
		zap.Int("size", a.Size()),
		zap.Int("different", len(aB.Elements)),
		zap.Float64("max_difference", maxDiff),
	)
	return aB, bA, nil
}

// listMaxDifference reads the maximum recorded by diffList on a residual list.
func listMaxDifference(dp *msdata.DataProcessing) float64 {
	if dp == nil || len(dp.ProcessingMethods) == 0 {
		return 0
	}
	m := dp.ProcessingMethods[len(dp.ProcessingMethods)-1]
	d, _ := recordedDifference(m.UserParam(MaxBinaryDataArrayDifference))
	return d
}

func diffSpectrumList(a, b msdata.SpectrumList, cfg *Config) (*msdata.SpectrumListSimple, *msdata.SpectrumListSimple, error) {
	return diffList(a, b, cfg, spectrumKind)
}

func diffChromatogramList(a, b msdata.ChromatogramList, cfg *Config) (*msdata.ChromatogramListSimple, *msdata.ChromatogramListSimple, error) {
	if cfg.IgnoreChromatograms {
		return &msdata.ChromatogramListSimple{}, &msdata.ChromatogramListSimple{}, nil
	}
	return diffList(a, b, cfg, chromatogramKind)
}
