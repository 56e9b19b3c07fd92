package snapshot

import (
	"bytes"
	"strings"
	"testing"

	"msforge/core/cv"
	"msforge/core/diff"
	"msforge/core/msdata"
	"msforge/core/params"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument() *msdata.Document {
	doc := msdata.NewDocument("doc")
	pg := params.NewParamGroup("pg1")
	pg.Set(cv.MSPositiveScan, "")
	sw := msdata.NewSoftware("msforge", "1.0")
	ic := msdata.NewInstrumentConfiguration("ic1")
	ic.Software = sw
	ic.ComponentList = msdata.ComponentList{msdata.NewComponent(msdata.ComponentSource, 1)}
	dp := msdata.NewDataProcessing("dp1")
	dp.Append(msdata.ProcessingMethod{Software: sw})

	doc.ParamGroups = []*params.ParamGroup{pg}
	doc.Softwares = []*msdata.Software{sw}
	doc.InstrumentConfigurations = []*msdata.InstrumentConfiguration{ic}
	doc.DataProcessings = []*msdata.DataProcessing{dp}
	doc.Run.ID = "run"
	doc.Run.DefaultInstrumentConfiguration = ic

	s := msdata.NewSpectrum()
	s.Index, s.ID = 0, "scan=1"
	s.Set(cv.MSMSLevel, 2)
	s.ParamGroups = []*params.ParamGroup{pg}
	s.ScanList.Scans = []msdata.Scan{{InstrumentConfiguration: ic}}
	s.Precursors = []msdata.Precursor{{SelectedIons: []msdata.SelectedIon{msdata.NewSelectedIon(445.3, 2)}}}
	s.SetMZIntensityArrays([]float64{100.1, 200.25, 300.125}, []float64{1e6, 0.5, 3}, cv.MSNumberOfDetectorCounts)
	list := msdata.NewSpectrumListSimple(s)
	list.DP = dp
	doc.Run.SpectrumList = list

	c := msdata.NewChromatogram()
	c.Index, c.ID = 0, "TIC"
	c.SetTimeIntensityArrays([]float64{0, 1}, cv.UOSecond, []float64{5, 6}, cv.MSNumberOfDetectorCounts)
	doc.Run.ChromatogramList = msdata.NewChromatogramListSimple(c)
	return doc
}

func TestRoundTrip(t *testing.T) {
	for _, format := range []Format{JSON, Msgpack} {
		t.Run(string(format), func(t *testing.T) {
			orig := testDocument()
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, orig, format))

			got, err := Decode(&buf, format)
			require.NoError(t, err)

			r, err := diff.Documents(orig, got)
			require.NoError(t, err)
			assert.False(t, r.Different(), r.String())

			s, err := got.Run.SpectrumList.Element(0, true)
			require.NoError(t, err)
			ic := got.InstrumentConfigurations[0]
			assert.Same(t, ic, s.ScanList.Scans[0].InstrumentConfiguration)
			assert.Same(t, ic, got.Run.DefaultInstrumentConfiguration)
			assert.Same(t, got.Softwares[0], ic.Software)
			assert.Same(t, got.ParamGroups[0], s.ParamGroups[0])
			assert.Same(t, got.DataProcessings[0], got.Run.SpectrumList.DataProcessing())
			assert.Equal(t, []float64{1e6, 0.5, 3}, s.IntensityArray().Data)
			assert.Equal(t, 1, got.Run.ChromatogramList.Size())
		})
	}
}

func TestRoundTrip_ListProcessing(t *testing.T) {
	orig := testDocument()
	list := orig.Run.SpectrumList.(*msdata.SpectrumListSimple)
	dp := list.DP.Clone()
	m := msdata.ProcessingMethod{Software: orig.Softwares[0]}
	m.Set(cv.MSThresholding, "")
	dp.Append(m)
	list.DP = dp
	list.Elements[0].DataProcessing = dp

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, orig, JSON))
	got, err := Decode(&buf, JSON)
	require.NoError(t, err)

	gotDP := got.Run.SpectrumList.DataProcessing()
	require.Len(t, gotDP.ProcessingMethods, 2)
	assert.True(t, gotDP.ProcessingMethods[1].HasCVParam(cv.MSThresholding))
	assert.Same(t, got.Softwares[0], gotDP.ProcessingMethods[1].Software)
	assert.Len(t, got.DataProcessings[0].ProcessingMethods, 1)

	s, err := got.Run.SpectrumList.Element(0, true)
	require.NoError(t, err)
	assert.Same(t, gotDP, s.DataProcessing)

	r, err := diff.Documents(orig, got)
	require.NoError(t, err)
	assert.False(t, r.Different(), r.String())
}

func TestEncode_UnknownFormat(t *testing.T) {
	err := Encode(&bytes.Buffer{}, testDocument(), "xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Decode(strings.NewReader("{}"), "xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode(strings.NewReader("not json"), JSON)
	assert.Error(t, err)

	_, err = Decode(strings.NewReader(`{"spectra":[]}`), JSON)
	assert.ErrorContains(t, err, "missing document")
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
		err      bool
	}{
		{"run.json", JSON, false},
		{"storage:a/b.msgpack", Msgpack, false},
		{"RUN.MPK", Msgpack, false},
		{"run.mzML", "", true},
		{"run", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			f, err := FormatFromPath(tt.path)
			if tt.err {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, f)
		})
	}
}
