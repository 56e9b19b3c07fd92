package merge

import (
	"testing"

	"msforge/core/cv"
	"msforge/core/diff"
	"msforge/core/msdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument(id, softwareVersion string, spectra ...string) *msdata.Document {
	doc := msdata.NewDocument(id)
	sw := msdata.NewSoftware("msforge", softwareVersion)
	ic := msdata.NewInstrumentConfiguration("ic1")
	ic.Software = sw
	doc.Softwares = []*msdata.Software{sw}
	doc.InstrumentConfigurations = []*msdata.InstrumentConfiguration{ic}
	doc.FileDescription.FileContent.Set(cv.MSMS1Spectrum, "")
	doc.Run.ID = "run_" + id
	doc.Run.DefaultInstrumentConfiguration = ic

	list := msdata.NewSpectrumListSimple()
	for i, sid := range spectra {
		s := msdata.NewSpectrum()
		s.Index, s.ID = i, sid
		s.SetMZIntensityArrays([]float64{1, 2}, []float64{3, 4}, cv.MSNumberOfDetectorCounts)
		list.Elements = append(list.Elements, s)
	}
	doc.Run.SpectrumList = list
	doc.Run.ChromatogramList = msdata.NewChromatogramListSimple()
	return doc
}

func TestDocuments_Empty(t *testing.T) {
	_, err := Documents(nil)
	assert.ErrorIs(t, err, ErrNoDocuments)

	_, err = Documents([]*msdata.Document{nil})
	assert.Error(t, err)
}

func TestDocuments_UnionAndConcat(t *testing.T) {
	a := testDocument("a", "1.0", "scan=1", "scan=2")
	b := testDocument("b", "1.0", "scan=3")

	out, err := Documents([]*msdata.Document{a, b})
	require.NoError(t, err)

	assert.Equal(t, "a+b", out.ID)
	assert.Equal(t, "run_a", out.Run.ID)
	assert.Len(t, out.Softwares, 1)
	assert.Len(t, out.InstrumentConfigurations, 1)
	assert.Len(t, out.CVs, len(cv.DefaultVocabularies()))
	assert.Len(t, out.FileDescription.FileContent.CVParams, 1)

	require.Equal(t, 3, out.Run.SpectrumList.Size())
	for i, id := range []string{"scan=1", "scan=2", "scan=3"} {
		ident, err := out.Run.SpectrumList.Identity(i)
		require.NoError(t, err)
		assert.Equal(t, msdata.Identity{Index: i, ID: id}, ident)
	}
	assert.Equal(t, 1, out.Run.SpectrumList.Find("scan=2"))

	dp := out.Run.SpectrumList.DataProcessing()
	require.NotNil(t, dp)
	assert.Equal(t, ProcessingID, dp.ID)
	assert.Equal(t, "2", dp.ProcessingMethods[0].UserParam("merged documents").Value)
	assert.Contains(t, out.DataProcessings, dp)

	// inputs keep their own numbering
	assert.Equal(t, 0, b.Run.SpectrumList.(*msdata.SpectrumListSimple).Elements[0].Index)
}

func TestDocuments_DistinctEntities(t *testing.T) {
	a := testDocument("a", "1.0")
	b := testDocument("b", "2.0")

	out, err := Documents([]*msdata.Document{a, b}, WithID("merged"))
	require.NoError(t, err)
	assert.Equal(t, "merged", out.ID)
	assert.Len(t, out.Softwares, 2)

	out, err = Documents([]*msdata.Document{a, b}, WithDiffOptions(diff.IgnoreVersions()))
	require.NoError(t, err)
	assert.Len(t, out.Softwares, 1)
}

func TestDocuments_SameID(t *testing.T) {
	out, err := Documents([]*msdata.Document{testDocument("a", "1.0"), testDocument("a", "1.0")})
	require.NoError(t, err)
	assert.Equal(t, "a", out.ID)
}
