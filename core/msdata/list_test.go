package msdata

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSpectrum(index int, id string, mz, intensity []float64) *Spectrum {
	s := NewSpectrum()
	s.Index = index
	s.ID = id
	s.SetMZIntensityArrays(mz, intensity, 0)
	return s
}

func TestListSimple_Identity(t *testing.T) {
	l := NewSpectrumListSimple(
		newTestSpectrum(0, "scan=1", []float64{1}, []float64{10}),
		newTestSpectrum(1, "scan=2", []float64{2}, []float64{20}),
	)

	ident, err := l.Identity(1)
	require.NoError(t, err)
	assert.Equal(t, Identity{Index: 1, ID: "scan=2"}, ident)

	tests := []struct {
		name  string
		index int
	}{
		{"negative", -1},
		{"equal to size", 2},
		{"past size", 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.Identity(tt.index)
			assert.ErrorIs(t, err, ErrIndexOutOfRange)
			assert.True(t, IsIndexOutOfRange(err))

			var ie *IndexError
			require.True(t, errors.As(err, &ie))
			assert.Equal(t, tt.index, ie.Index())
			assert.Equal(t, 2, ie.Size())
			assert.Equal(t, "Identity", ie.Op())
		})
	}
}

func TestListSimple_NilElement(t *testing.T) {
	l := NewSpectrumListSimple(nil)

	_, err := l.Element(0, true)
	assert.ErrorIs(t, err, ErrNilElement)
	assert.False(t, IsIndexOutOfRange(err))

	_, err = l.Identity(0)
	assert.ErrorIs(t, err, ErrNilElement)
	assert.Equal(t, 1, l.Find("anything"))
}

func TestListSimple_Find(t *testing.T) {
	l := NewSpectrumListSimple(
		newTestSpectrum(0, "a", nil, nil),
		newTestSpectrum(1, "b", nil, nil),
	)

	assert.Equal(t, 1, l.Find("b"))
	assert.Equal(t, 2, l.Find("missing"))
	assert.Equal(t, 1, FindLinear[*Spectrum](l, "b"))
	assert.Equal(t, 2, FindLinear[*Spectrum](l, "missing"))
}

func TestListSimple_ElementIsCopy(t *testing.T) {
	orig := newTestSpectrum(0, "a", []float64{1, 2}, []float64{3, 4})
	l := NewSpectrumListSimple(orig)

	got, err := l.Element(0, true)
	require.NoError(t, err)
	got.ID = "changed"
	got.SetUserParam("note", "x", "")
	got.BinaryDataArrays = nil

	assert.Equal(t, "a", orig.ID)
	assert.Empty(t, orig.UserParams)
	assert.Len(t, orig.BinaryDataArrays, 2)
}

func TestMaterialize(t *testing.T) {
	dp := NewDataProcessing("dp")
	l := &SpectrumListSimple{
		Elements: []*Spectrum{newTestSpectrum(0, "a", []float64{1}, []float64{2})},
		DP:       dp,
	}

	out, err := Materialize[*Spectrum](l)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Size())
	assert.Same(t, dp, out.DataProcessing())
	assert.NotSame(t, l.Elements[0], out.Elements[0])

	_, err = Materialize[*Spectrum](NewSpectrumListSimple(nil))
	assert.ErrorIs(t, err, ErrNilElement)
}
