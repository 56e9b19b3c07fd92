package threshold

import (
	"testing"

	"msforge/core/cv"
	"msforge/core/msdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func testSpectrum(index, level int, intensity ...float64) *msdata.Spectrum {
	s := msdata.NewSpectrum()
	s.Index, s.ID = index, "scan="+string(rune('1'+index))
	mz := make([]float64, len(intensity))
	for i := range mz {
		mz[i] = float64(i + 1)
	}
	s.SetMZIntensityArrays(mz, intensity, cv.MSNumberOfDetectorCounts)
	s.Set(cv.MSMSLevel, level)
	return s
}

func TestNew_NilInner(t *testing.T) {
	_, err := New(nil, Thresholder{})
	assert.ErrorIs(t, err, msdata.ErrNilInner)
}

func TestList_Element(t *testing.T) {
	inner := msdata.NewSpectrumListSimple(
		testSpectrum(0, 1, 10, 20, 30, 20, 10),
		testSpectrum(1, 2, 5, 1, 3),
	)
	l, err := New(inner, Thresholder{Policy: Count, Threshold: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, l.Size())

	s, err := l.Element(0, false)
	require.NoError(t, err)
	assert.Equal(t, []float64{3}, s.MZArray().Data)
	assert.Equal(t, []float64{30}, s.IntensityArray().Data)
	assert.Equal(t, 1, s.DefaultArrayLength)
	assert.Same(t, l.DataProcessing(), s.DataProcessing)

	ident, err := l.Identity(1)
	require.NoError(t, err)
	assert.Equal(t, inner.Elements[1].Identity(), ident)

	// inner data stays intact
	assert.Len(t, inner.Elements[0].IntensityArray().Data, 5)
	assert.Equal(t, 5, inner.Elements[0].DefaultArrayLength)
}

func TestList_ArrayLengthMismatch(t *testing.T) {
	s := testSpectrum(0, 1, 10, 20, 30, 20, 10)
	s.BinaryDataArrays = append(s.BinaryDataArrays, msdata.NewBinaryDataArray(cv.MSTimeArray, []float64{1, 2, 3}))
	l, err := New(msdata.NewSpectrumListSimple(s), Thresholder{Policy: Count, Threshold: 1})
	require.NoError(t, err)

	out, err := l.Element(0, true)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrArrayLength)
	assert.ErrorContains(t, err, "array 2 has 3 values, intensity has 5")
}

// nilList returns no spectrum and no error.
type nilList struct {
	*msdata.SpectrumListSimple
}

func (nilList) Element(int, bool) (*msdata.Spectrum, error) {
	return nil, nil
}

func TestList_NilElement(t *testing.T) {
	l, err := New(nilList{msdata.NewSpectrumListSimple(testSpectrum(0, 1, 1))}, Thresholder{Policy: Count, Threshold: 1})
	require.NoError(t, err)

	s, err := l.Element(0, true)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, msdata.ErrNilElement)
}

func TestList_MSLevels(t *testing.T) {
	inner := msdata.NewSpectrumListSimple(
		testSpectrum(0, 1, 10, 20, 30),
		testSpectrum(1, 2, 10, 20, 30),
	)
	opts, err := Config{Policy: "count", Orientation: "most-intense", Value: 1, MSLevels: "2-"}.Options()
	require.NoError(t, err)
	l, err := New(inner, Thresholder{Policy: Count, Threshold: 1}, opts...)
	require.NoError(t, err)

	ms1, err := l.Element(0, true)
	require.NoError(t, err)
	assert.Len(t, ms1.IntensityArray().Data, 3)

	ms2, err := l.Element(1, true)
	require.NoError(t, err)
	assert.Equal(t, []float64{30}, ms2.IntensityArray().Data)
}

func TestList_MissingIntensityWarnsOnce(t *testing.T) {
	a := testSpectrum(0, 1, 1, 2)
	a.BinaryDataArrays = a.BinaryDataArrays[:1]
	b := testSpectrum(1, 1, 1, 2)
	b.BinaryDataArrays = b.BinaryDataArrays[:1]

	core, logs := observer.New(zapcore.WarnLevel)
	l, err := New(msdata.NewSpectrumListSimple(a, b), Thresholder{Policy: Count, Threshold: 1}, WithLogger(zap.New(core)))
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		s, err := l.Element(i, true)
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 2}, s.MZArray().Data)
	}
	assert.Equal(t, 1, logs.Len())
}

func TestList_ProcessingMethod(t *testing.T) {
	inner := msdata.NewSpectrumListSimple(testSpectrum(0, 1, 1))
	inner.DP = msdata.NewDataProcessing("conversion")
	inner.DP.Append(msdata.ProcessingMethod{})

	l, err := New(inner, Thresholder{Policy: FractionOfMaximum, Threshold: 0.5, Orientation: LeastIntense})
	require.NoError(t, err)

	dp := l.DataProcessing()
	require.Len(t, dp.ProcessingMethods, 2)
	assert.Equal(t, "conversion", dp.ID)
	assert.Len(t, inner.DP.ProcessingMethods, 1)

	m := dp.ProcessingMethods[1]
	assert.Equal(t, 1, m.Order)
	assert.True(t, m.HasCVParam(cv.MSThresholding))
	assert.Equal(t, "fraction-of-max", m.UserParam("threshold policy").Value)
	assert.Equal(t, "least-intense", m.UserParam("threshold orientation").Value)
}

func TestConfig_Thresholder(t *testing.T) {
	th, err := Config{Policy: "count-after-ties", Orientation: "least-intense", Value: 3}.Thresholder()
	require.NoError(t, err)
	assert.Equal(t, Thresholder{Policy: CountAfterTies, Threshold: 3, Orientation: LeastIntense}, th)

	_, err = Config{Policy: "count", Orientation: "up"}.Thresholder()
	assert.Error(t, err)

	_, err = Config{MSLevels: "x"}.Options()
	assert.Error(t, err)
}
