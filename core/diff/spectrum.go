package diff

import (
	"fmt"

	"msforge/core/msdata"
	"msforge/core/params"
)

const xsdFloat = "xsd:float"

func recordDifference(aB, bA *params.ParamContainer, index int, max float64) {
	for _, pc := range []*params.ParamContainer{aB, bA} {
		pc.AddUserParam(BinaryDataArrayDifference, max, xsdFloat)
		pc.AddUserParam(BinaryDataArrayDifferenceAtIndex, index, xsdFloat)
	}
}

func recordedDifference(p params.UserParam) (float64, bool) {
	if p.Empty() {
		return 0, false
	}
	return p.ValueFloat(), true
}

// diffArrayCounts compares the binary arrays of two elements, recording a count
// annotation or the largest difference on the element residuals.
func diffArrayCounts(a, b []*msdata.BinaryDataArray, aB, bA *params.ParamContainer, cfg *Config) (x, y []*msdata.BinaryDataArray) {
	mismatch := len(a) != len(b)
	if cfg.IgnoreExtraBinaryDataArrays {
		mismatch = len(a) < 2 || len(b) < 2
	}
	if mismatch {
		aB.AddUserParam(fmt.Sprintf("Binary data array count: %d", len(a)), nil, "")
		bA.AddUserParam(fmt.Sprintf("Binary data array count: %d", len(b)), nil, "")
		return nil, nil
	}
	if cfg.IgnoreExtraBinaryDataArrays {
		a, b = a[:2], b[:2]
	}
	x, y, index, max := diffBinaryDataArrays(a, b, cfg)
	if cfg.exceeds(max) {
		recordDifference(aB, bA, index, max)
	}
	return x, y
}

func diffIndex(a, b int) (int, int) {
	return diffScalar(a, b, msdata.IndexNone)
}

func diffSpectrum(a, b *msdata.Spectrum, cfg *Config) (*msdata.Spectrum, *msdata.Spectrum) {
	aB, bA := msdata.NewSpectrum(), msdata.NewSpectrum()

	if !cfg.IgnoreIdentity {
		aB.ID, bA.ID = diffString(a.ID, b.ID)
		aB.Index, bA.Index = diffIndex(a.Index, b.Index)
		aB.NativeID, bA.NativeID = diffString(a.NativeID, b.NativeID)
	}

	aB.DefaultArrayLength, bA.DefaultArrayLength = diffScalar(a.DefaultArrayLength, b.DefaultArrayLength, 0)
	aB.Precursors, bA.Precursors = vectorDiffDiff(a.Precursors, b.Precursors, cfg, diffPrecursor)
	aB.Products, bA.Products = vectorDiffDiff(a.Products, b.Products, cfg, diffProduct)

	if !cfg.IgnoreMetadata {
		aB.DataProcessing, bA.DataProcessing = ptrDiff(a.DataProcessing, b.DataProcessing, cfg, diffDataProcessing)
		aB.SourceFile, bA.SourceFile = ptrDiff(a.SourceFile, b.SourceFile, cfg, diffSourceFile)
		aB.ParamContainer, bA.ParamContainer = diffParams(&a.ParamContainer, &b.ParamContainer, cfg)
		sa, sb := diffScanList(&a.ScanList, &b.ScanList, cfg)
		aB.ScanList, bA.ScanList = *sa, *sb
	}

	aB.BinaryDataArrays, bA.BinaryDataArrays = diffArrayCounts(a.BinaryDataArrays, b.BinaryDataArrays, &aB.ParamContainer, &bA.ParamContainer, cfg)

	if !aB.Empty() || !bA.Empty() {
		aB.ID, bA.ID = a.ID, b.ID
		aB.Index, bA.Index = a.Index, b.Index
		aB.NativeID, bA.NativeID = a.NativeID, b.NativeID
	}
	return aB, bA
}

func diffChromatogram(a, b *msdata.Chromatogram, cfg *Config) (*msdata.Chromatogram, *msdata.Chromatogram) {
	aB, bA := msdata.NewChromatogram(), msdata.NewChromatogram()

	if !cfg.IgnoreIdentity {
		aB.ID, bA.ID = diffString(a.ID, b.ID)
		aB.Index, bA.Index = diffIndex(a.Index, b.Index)
		aB.NativeID, bA.NativeID = diffString(a.NativeID, b.NativeID)
	}

	aB.DefaultArrayLength, bA.DefaultArrayLength = diffScalar(a.DefaultArrayLength, b.DefaultArrayLength, 0)

	if !cfg.IgnoreMetadata {
		aB.DataProcessing, bA.DataProcessing = ptrDiff(a.DataProcessing, b.DataProcessing, cfg, diffDataProcessing)
		aB.ParamContainer, bA.ParamContainer = diffParams(&a.ParamContainer, &b.ParamContainer, cfg)
		pa, pb := diffPrecursor(&a.Precursor, &b.Precursor, cfg)
		aB.Precursor, bA.Precursor = *pa, *pb
		qa, qb := diffProduct(&a.Product, &b.Product, cfg)
		aB.Product, bA.Product = *qa, *qb
	}

	aB.BinaryDataArrays, bA.BinaryDataArrays = diffArrayCounts(a.BinaryDataArrays, b.BinaryDataArrays, &aB.ParamContainer, &bA.ParamContainer, cfg)

	if !aB.Empty() || !bA.Empty() {
		aB.ID, bA.ID = a.ID, b.ID
		aB.Index, bA.Index = a.Index, b.Index
		aB.NativeID, bA.NativeID = a.NativeID, b.NativeID
	}
	return aB, bA
}

// elementDifference reads the difference recorded on an element residual.
func elementDifference(pc *params.ParamContainer) float64 {
	d, _ := recordedDifference(pc.UserParam(BinaryDataArrayDifference))
	return d
}
