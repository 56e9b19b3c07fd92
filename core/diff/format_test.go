package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	a, b := testSpectrum(0, "a"), testSpectrum(0, "b")
	a.BinaryDataArrays, b.BinaryDataArrays = nil, nil
	a.DefaultArrayLength, b.DefaultArrayLength = 0, 0

	r, err := Spectra(a, b)
	require.NoError(t, err)

	want := strings.Join([]string{
		"+",
		"  spectrum:",
		"    index: 0",
		"    id: a",
		"-",
		"  spectrum:",
		"    index: 0",
		"    id: b",
		"",
	}, "\n")
	assert.Equal(t, want, r.String())

	var sb strings.Builder
	require.NoError(t, Format(&sb, r, true))
	assert.True(t, strings.HasPrefix(sb.String(), colorInsert+"+\n"))
	assert.Contains(t, sb.String(), colorClose+colorDelete+"-\n")
}

func TestFormat_Equal(t *testing.T) {
	r, err := Spectra(testSpectrum(0, "a", 1), testSpectrum(0, "a", 1))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, Format(&sb, r, true))
	assert.Empty(t, sb.String())
}

func TestFormatStats(t *testing.T) {
	assert.Equal(t, "no differences.", FormatStats(Stats{}))
	assert.Equal(t,
		"1 spectrum differ. 2 chromatograms differ. max binary difference 0.5 (spectra), 0 (chromatograms).",
		FormatStats(Stats{Different: true, Spectra: 1, Chromatograms: 2, MaxSpectrumDifference: 0.5}),
	)
}
