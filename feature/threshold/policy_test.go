package threshold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kept(values []float64, keep []bool) []float64 {
	out := []float64{}
	for i, k := range keep {
		if k {
			out = append(out, values[i])
		}
	}
	return out
}

func TestKeep_Count(t *testing.T) {
	values := []float64{10, 20, 30, 20, 10}
	tests := []struct {
		name        string
		policy      Policy
		orientation Orientation
		threshold   float64
		expected    []float64
	}{
		{"most 1", Count, MostIntense, 1, []float64{30}},
		{"most 2 drops straddling ties", Count, MostIntense, 2, []float64{30}},
		{"most 3", Count, MostIntense, 3, []float64{20, 30, 20}},
		{"most 4", Count, MostIntense, 4, []float64{20, 30, 20}},
		{"least 1", Count, LeastIntense, 1, []float64{}},
		{"least 2", Count, LeastIntense, 2, []float64{10, 10}},
		{"least 3", Count, LeastIntense, 3, []float64{10, 10}},
		{"least 4", Count, LeastIntense, 4, []float64{10, 20, 20, 10}},
		{"ties most 1", CountAfterTies, MostIntense, 1, []float64{30}},
		{"ties most 2", CountAfterTies, MostIntense, 2, []float64{20, 30, 20}},
		{"ties most 3", CountAfterTies, MostIntense, 3, []float64{20, 30, 20}},
		{"ties most 4", CountAfterTies, MostIntense, 4, []float64{10, 20, 30, 20, 10}},
		{"ties least 1", CountAfterTies, LeastIntense, 1, []float64{10, 10}},
		{"ties least 2", CountAfterTies, LeastIntense, 2, []float64{10, 10}},
		{"ties least 3", CountAfterTies, LeastIntense, 3, []float64{10, 20, 20, 10}},
		{"ties least 4", CountAfterTies, LeastIntense, 4, []float64{10, 20, 20, 10}},
		{"count above size", Count, MostIntense, 9, values},
		{"zero count", Count, MostIntense, 0, []float64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := Thresholder{Policy: tt.policy, Threshold: tt.threshold, Orientation: tt.orientation}
			assert.Equal(t, tt.expected, kept(values, th.Keep(values)))
		})
	}
}

func TestKeep_ValuePolicies(t *testing.T) {
	values := []float64{10, 20, 30, 20, 10}
	tests := []struct {
		name     string
		th       Thresholder
		expected []float64
	}{
		{"absolute most", Thresholder{AbsoluteValue, 20, MostIntense}, []float64{20, 30, 20}},
		{"absolute least inclusive", Thresholder{AbsoluteValue, 30, LeastIntense}, values},
		{"fraction of max", Thresholder{FractionOfMaximum, 0.34, MostIntense}, []float64{20, 30, 20}},
		{"fraction of max one", Thresholder{FractionOfMaximum, 1, MostIntense}, []float64{30}},
		{"fraction of total", Thresholder{FractionOfTotal, 0.12, MostIntense}, []float64{20, 30, 20}},
		{"fraction of total least", Thresholder{FractionOfTotal, 0.12, LeastIntense}, []float64{10, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, kept(values, tt.th.Keep(values)))
		})
	}
}

func TestKeep_FractionOfTotalCutoff(t *testing.T) {
	intensity := []float64{0, 1, 2, 1, 0, 1, 2, 12, 1}
	mz := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	tests := []struct {
		orientation Orientation
		threshold   float64
		expected    []float64
	}{
		{MostIntense, 1.0, []float64{2, 3, 4, 6, 7, 8, 9}},
		{MostIntense, 0.99, []float64{2, 3, 4, 6, 7, 8, 9}},
		{MostIntense, 0.90, []float64{2, 3, 4, 6, 7, 8, 9}},
		{MostIntense, 0.80, []float64{3, 7, 8}},
		{MostIntense, 0.65, []float64{3, 7, 8}},
		{MostIntense, 0.60, []float64{8}},
		{MostIntense, 0.15, []float64{8}},
		{LeastIntense, 1.0, mz},
		{LeastIntense, 0.45, mz},
		{LeastIntense, 0.40, []float64{1, 2, 3, 4, 5, 6, 7, 9}},
		{LeastIntense, 0.35, []float64{1, 2, 3, 4, 5, 6, 7, 9}},
		{LeastIntense, 0.25, []float64{1, 2, 3, 4, 5, 6, 7, 9}},
		{LeastIntense, 0.20, []float64{1, 2, 4, 5, 6, 9}},
		{LeastIntense, 0.15, []float64{1, 2, 4, 5, 6, 9}},
	}
	for _, tt := range tests {
		t.Run(tt.orientation.String(), func(t *testing.T) {
			th := Thresholder{Policy: FractionOfTotalCutoff, Threshold: tt.threshold, Orientation: tt.orientation}
			assert.Equal(t, tt.expected, kept(mz, th.Keep(intensity)), "threshold %v", tt.threshold)
		})
	}
}

func TestKeep_Edges(t *testing.T) {
	th := Thresholder{Policy: Count, Threshold: 5}
	assert.Empty(t, th.Keep(nil))
	assert.Equal(t, []bool{true}, th.Keep([]float64{7}))
	assert.Equal(t, []bool{true, true}, th.Keep([]float64{10, 0}))

	zero := Thresholder{Policy: FractionOfTotalCutoff, Threshold: 0.5}
	assert.Equal(t, []bool{true, true}, zero.Keep([]float64{0, 0}))
}

func TestParse(t *testing.T) {
	for p := Count; p <= FractionOfTotalCutoff; p++ {
		parsed, err := ParsePolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}
	_, err := ParsePolicy("median")
	assert.Error(t, err)

	o, err := ParseOrientation("least-intense")
	require.NoError(t, err)
	assert.Equal(t, LeastIntense, o)
	_, err = ParseOrientation("sideways")
	assert.Error(t, err)
}
