package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"msforge/core/cv"
	"msforge/core/diff"
	"msforge/core/msdata"
	"msforge/core/snapshot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testDocument(intensity ...float64) *msdata.Document {
	doc := msdata.NewDocument("doc")
	doc.Run.ID = "run"
	var spectra []*msdata.Spectrum
	for i, v := range intensity {
		s := msdata.NewSpectrum()
		s.Index, s.ID = i, "scan="+string(rune('1'+i))
		s.Set(cv.MSMSLevel, 1+i%2)
		s.SetMZIntensityArrays([]float64{100, 200}, []float64{v, v / 2}, cv.MSNumberOfDetectorCounts)
		spectra = append(spectra, s)
	}
	doc.Run.SpectrumList = msdata.NewSpectrumListSimple(spectra...)
	return doc
}

func writeSnapshot(t *testing.T, path string, doc *msdata.Document) {
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	format, err := snapshot.FormatFromPath(path)
	require.NoError(t, err)
	require.NoError(t, snapshot.Encode(f, doc, format))
}

func readSnapshot(t *testing.T, path string) *msdata.Document {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	format, err := snapshot.FormatFromPath(path)
	require.NoError(t, err)
	doc, err := snapshot.Decode(f, format)
	require.NoError(t, err)
	return doc
}

func TestWriteResult(t *testing.T) {
	res, err := diff.Documents(testDocument(10), testDocument(20))
	require.NoError(t, err)

	var text bytes.Buffer
	require.NoError(t, writeResult(&text, res, "text", false))
	assert.True(t, strings.HasPrefix(text.String(), "+\n"))
	assert.Contains(t, text.String(), "\n-\n")
	assert.Contains(t, text.String(), "1 spectrum differ.")

	var out bytes.Buffer
	require.NoError(t, writeResult(&out, res, "yaml", false))
	var rep diff.Report
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &rep))
	assert.True(t, rep.Stats.Different)
	assert.Equal(t, 1, rep.Stats.Spectra)

	assert.Error(t, writeResult(&out, res, "xml", false))
}

func TestUseColor(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, useColor(&buf, "always"))
	assert.False(t, useColor(&buf, "never"))
	assert.False(t, useColor(&buf, "auto"))
}

func TestFilterPredicates(t *testing.T) {
	defer func() { filterIndexes, filterIDs, filterMSLevels = "", nil, "" }()

	_, err := filterPredicates()
	assert.Error(t, err)

	filterIndexes, filterIDs, filterMSLevels = "0-2", []string{"scan=1"}, "2"
	preds, err := filterPredicates()
	require.NoError(t, err)
	require.Len(t, preds, 3)
	assert.Equal(t, "index 0-2", preds[0].String())
	assert.Equal(t, "id scan=1", preds[1].String())
	assert.Equal(t, "ms level 2", preds[2].String())

	filterIndexes = "x"
	_, err = filterPredicates()
	assert.Error(t, err)
}

func TestConvertAndDiff(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.json")
	out := filepath.Join(dir, "out.msgpack")
	writeSnapshot(t, in, testDocument(10, 20, 30))

	RootCmd.SetArgs([]string{"convert", in, out})
	require.NoError(t, RootCmd.Execute())

	var stdout bytes.Buffer
	RootCmd.SetOut(&stdout)
	defer RootCmd.SetOut(nil)
	RootCmd.SetArgs([]string{"diff", "--color", "never", in, out})
	require.NoError(t, RootCmd.Execute())
	assert.Equal(t, "no differences.\n", stdout.String())

	other := filepath.Join(dir, "other.json")
	writeSnapshot(t, other, testDocument(10, 20, 31))
	RootCmd.SetArgs([]string{"diff", "--color", "never", in, other})
	assert.ErrorIs(t, RootCmd.Execute(), errDifferent)
}

func TestFilterCommand(t *testing.T) {
	defer func() { filterIndexes, filterIDs, filterMSLevels = "", nil, "" }()
	dir := t.TempDir()
	in := filepath.Join(dir, "in.json")
	out := filepath.Join(dir, "out.json")
	writeSnapshot(t, in, testDocument(10, 20, 30, 40))

	RootCmd.SetArgs([]string{"filter", "--ms-levels", "2", in, out})
	require.NoError(t, RootCmd.Execute())

	doc := readSnapshot(t, out)
	require.Equal(t, 2, doc.Run.SpectrumList.Size())
	s, err := doc.Run.SpectrumList.Element(1, true)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Index)
	assert.Equal(t, "scan=4", s.ID)
}

func TestMergeCommand(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.json")
	b := filepath.Join(dir, "b.json")
	out := filepath.Join(dir, "merged.json")
	writeSnapshot(t, a, testDocument(10))
	writeSnapshot(t, b, testDocument(20, 30))

	RootCmd.SetArgs([]string{"merge", "--id", "merged", out, a, b})
	require.NoError(t, RootCmd.Execute())

	doc := readSnapshot(t, out)
	assert.Equal(t, "merged", doc.ID)
	assert.Equal(t, 3, doc.Run.SpectrumList.Size())
}
