package filter

import (
	"fmt"
	"testing"

	"msforge/core/cv"
	"msforge/core/msdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingList records the indexes of elements loaded from it.
type countingList struct {
	*msdata.SpectrumListSimple
	loaded []int
}

func (c *countingList) Element(index int, withBinaryData bool) (*msdata.Spectrum, error) {
	c.loaded = append(c.loaded, index)
	return c.SpectrumListSimple.Element(index, withBinaryData)
}

func newInner(n int) *countingList {
	spectra := make([]*msdata.Spectrum, n)
	for i := range spectra {
		s := msdata.NewSpectrum()
		s.Index, s.ID = i, fmt.Sprintf("scan=%d", i+1)
		s.Set(cv.MSMSLevel, 1+i%2)
		s.SetMZIntensityArrays([]float64{100}, []float64{float64(i)}, cv.MSNumberOfDetectorCounts)
		spectra[i] = s
	}
	return &countingList{SpectrumListSimple: msdata.NewSpectrumListSimple(spectra...)}
}

func TestNew_NilInner(t *testing.T) {
	_, err := New(nil, NewIDSet())
	assert.ErrorIs(t, err, msdata.ErrNilInner)
}

func TestIndexSet(t *testing.T) {
	inner := newInner(10)
	pred, err := NewIndexSet("1,3-4")
	require.NoError(t, err)

	l, err := New(inner, pred)
	require.NoError(t, err)
	assert.Empty(t, inner.loaded, "identity should be enough")
	require.Equal(t, 3, l.Size())

	for i, want := range []int{1, 3, 4} {
		ident, err := l.Identity(i)
		require.NoError(t, err)
		assert.Equal(t, i, ident.Index)
		assert.Equal(t, fmt.Sprintf("scan=%d", want+1), ident.ID)

		innerIndex, err := l.InnerIndex(i)
		require.NoError(t, err)
		assert.Equal(t, want, innerIndex)
	}

	s, err := l.Element(2, true)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Index)
	assert.Equal(t, []float64{4}, s.IntensityArray().Data)
	assert.Equal(t, 4, inner.Elements[4].Index)

	assert.Equal(t, 1, l.Find("scan=4"))
	assert.Equal(t, l.Size(), l.Find("scan=3"))
	assert.Equal(t, l.Size(), l.Find("missing"))

	_, err = l.Element(3, false)
	assert.True(t, msdata.IsIndexOutOfRange(err))
	_, err = l.InnerIndex(-1)
	assert.True(t, msdata.IsIndexOutOfRange(err))
}

func TestIndexSet_Done(t *testing.T) {
	pred, err := NewIndexSet("0-2")
	require.NoError(t, err)
	inner := &doneProbe{countingList: newInner(10)}

	_, err = New(inner, pred)
	require.NoError(t, err)
	assert.Equal(t, 3, inner.identities)
}

type doneProbe struct {
	*countingList
	identities int
}

func (d *doneProbe) Identity(index int) (msdata.Identity, error) {
	d.identities++
	return d.countingList.Identity(index)
}

func TestIDSet(t *testing.T) {
	l, err := New(newInner(5), NewIDSet("scan=5", "scan=2", "nope"))
	require.NoError(t, err)
	require.Equal(t, 2, l.Size())

	first, err := l.Identity(0)
	require.NoError(t, err)
	assert.Equal(t, "scan=2", first.ID)
}

func TestMSLevelSet(t *testing.T) {
	inner := newInner(6)
	pred, err := NewMSLevelSet("2")
	require.NoError(t, err)

	l, err := New(inner, pred)
	require.NoError(t, err)
	assert.Len(t, inner.loaded, 6)
	assert.Equal(t, 3, l.Size())

	for i := 0; i < l.Size(); i++ {
		s, err := l.Element(i, false)
		require.NoError(t, err)
		assert.Equal(t, 2, s.MSLevel())
	}
}

func TestNew_ProcessingMethod(t *testing.T) {
	pred, err := NewMSLevelSet("1")
	require.NoError(t, err)
	l, err := New(newInner(2), pred)
	require.NoError(t, err)

	dp := l.DataProcessing()
	assert.Equal(t, msdata.DefaultProcessingID, dp.ID)
	require.Len(t, dp.ProcessingMethods, 1)
	m := dp.ProcessingMethods[0]
	assert.True(t, m.HasCVParam(cv.MSDataFiltering))
	assert.Equal(t, "ms level 1", m.UserParam("filter").Value)
}

func TestPredicate_Parse(t *testing.T) {
	_, err := NewIndexSet("3-1")
	assert.Error(t, err)
	_, err = NewMSLevelSet("two")
	assert.Error(t, err)

	assert.Equal(t, "id a,b", NewIDSet("b", "a").String())
}
