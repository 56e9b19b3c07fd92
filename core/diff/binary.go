package diff

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"msforge/core/msdata"
	"msforge/core/utils"
)

// ErrLengthMismatch is returned when two sequences that must align differ in length.
var ErrLengthMismatch = errors.New("diff: length mismatch")

// Annotation names recorded on residuals.
const (
	BinaryDataArrayDifference        = "Binary data array difference"
	BinaryDataArrayDifferenceAtIndex = "Binary data array difference at index"
	MaxBinaryDataArrayDifference     = "Maximum binary data array difference"
	SpectrumBinaryDataDifference     = "Spectrum binary data array difference"
	ChromatogramBinaryDataDifference = "Chromatogram binary data array difference"
	SpectrumListSizesDiffer          = "SpectrumList sizes differ"
	ChromatogramListSizesDiffer      = "ChromatogramList sizes differ"
	FindResult                       = "find() result"
)

// epsilon is the gap between 1 and the next representable float64.
var epsilon = math.Nextafter(1, 2) - 1

// MaxRelativeDifference returns the index and size of the largest relative
// difference |a_i - b_i| / max(min(|a_i|, |b_i|), 1) between two equal length
// sequences.
func MaxRelativeDifference(a, b []float64) (int, float64, error) {
	if len(a) != len(b) {
		return 0, 0, fmt.Errorf("diff: MaxRelativeDifference: %d vs %d values: %w", len(a), len(b), ErrLengthMismatch)
	}
	index, max := 0, 0.0
	for i := range a {
		denominator := math.Max(math.Min(math.Abs(a[i]), math.Abs(b[i])), 1)
		current := math.Abs(a[i]-b[i]) / denominator
		if current > max {
			index, max = i, current
		}
	}
	return index, max, nil
}

// exceeds reports whether d lies beyond the configured tolerance.
func (c *Config) exceeds(d float64) bool {
	return d > c.Precision+epsilon
}

func diffBinaryDataArray(a, b *msdata.BinaryDataArray, cfg *Config) (*msdata.BinaryDataArray, *msdata.BinaryDataArray) {
	aB, bA := &msdata.BinaryDataArray{}, &msdata.BinaryDataArray{}
	if !cfg.IgnoreMetadata {
		aB.DataProcessing, bA.DataProcessing = ptrDiff(a.DataProcessing, b.DataProcessing, cfg, diffDataProcessing)
		aB.ParamContainer, bA.ParamContainer = diffParams(&a.ParamContainer, &b.ParamContainer, cfg)
	}

	index, max, err := MaxRelativeDifference(a.Data, b.Data)
	if err != nil {
		aB.AddUserParam(fmt.Sprintf("Binary data array size: %d", len(a.Data)), nil, "")
		bA.AddUserParam(fmt.Sprintf("Binary data array size: %d", len(b.Data)), nil, "")
	} else if cfg.exceeds(max) {
		recordDifference(&aB.ParamContainer, &bA.ParamContainer, index, max)
	}

	if !aB.Empty() || !bA.Empty() {
		aB.CVParams = slices.Clone(a.CVParams)
		bA.CVParams = slices.Clone(b.CVParams)
	}
	return aB, bA
}

// diffBinaryDataArrays pairs arrays by position; callers guarantee equal counts.
// It keeps only non-empty pairs and returns the largest recorded difference.
func diffBinaryDataArrays(a, b []*msdata.BinaryDataArray, cfg *Config) (aB, bA []*msdata.BinaryDataArray, index int, max float64) {
	for i := range a {
		x, y := diffBinaryDataArray(deref(a[i]), deref(b[i]), cfg)
		if x.Empty() && y.Empty() {
			continue
		}
		aB = append(aB, x)
		bA = append(bA, y)
		if d, ok := recordedDifference(x.UserParam(BinaryDataArrayDifference)); ok && d > max {
			max = d
			index = utils.ToInt(x.UserParam(BinaryDataArrayDifferenceAtIndex).Value)
		}
	}
	return aB, bA, index, max
}
