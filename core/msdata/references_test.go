package msdata

import (
	"testing"

	"msforge/core/cv"
	"msforge/core/params"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveReferences(t *testing.T) {
	doc := NewDocument("doc")
	group := params.NewParamGroup("pg")
	group.Set(cv.MSMS1Spectrum, "")
	sw := NewSoftware("pwiz", "3.0")
	sf := NewSourceFile("sf", "a.raw", "file:///data")
	ic := NewInstrumentConfiguration("ic")
	dp := NewDataProcessing("dp")
	doc.ParamGroups = []*params.ParamGroup{group}
	doc.Softwares = []*Software{sw}
	doc.FileDescription.SourceFiles = []*SourceFile{sf}
	doc.InstrumentConfigurations = []*InstrumentConfiguration{ic}
	doc.DataProcessings = []*DataProcessing{dp}

	// decoded copies carry their own instances of shared entities
	ic.Software = &Software{ID: "pwiz", Version: "3.0"}
	doc.Run.DefaultInstrumentConfiguration = &InstrumentConfiguration{ID: "ic"}
	doc.Run.DefaultSourceFile = &SourceFile{ID: "sf"}
	doc.Run.ParamGroups = []*params.ParamGroup{{ID: "pg"}}
	dp.ProcessingMethods = []ProcessingMethod{{Software: &Software{ID: "pwiz"}}}

	r := ResolveReferences(doc)

	assert.Same(t, sw, ic.Software)
	assert.Same(t, ic, doc.Run.DefaultInstrumentConfiguration)
	assert.Same(t, sf, doc.Run.DefaultSourceFile)
	assert.Same(t, group, doc.Run.ParamGroups[0])
	assert.Same(t, sw, dp.ProcessingMethods[0].Software)
	assert.True(t, doc.Run.HasCVParam(cv.MSMS1Spectrum))

	s := NewSpectrum()
	s.DataProcessing = &DataProcessing{ID: "dp"}
	s.ScanList.Scans = []Scan{{InstrumentConfiguration: &InstrumentConfiguration{ID: "ic"}}}
	s.BinaryDataArrays = []*BinaryDataArray{{DataProcessing: &DataProcessing{ID: "dp"}}, nil}
	s.Precursors = []Precursor{{SourceFile: &SourceFile{ID: "sf"}}}
	r.Spectrum(s)

	assert.Same(t, dp, s.DataProcessing)
	assert.Same(t, ic, s.ScanList.Scans[0].InstrumentConfiguration)
	assert.Same(t, dp, s.BinaryDataArrays[0].DataProcessing)
	assert.Same(t, sf, s.Precursors[0].SourceFile)

	c := NewChromatogram()
	c.DataProcessing = &DataProcessing{ID: "dp"}
	r.Chromatogram(c)
	assert.Same(t, dp, c.DataProcessing)
	assert.Same(t, dp, r.DataProcessing(&DataProcessing{ID: "dp"}))
}

func TestResolveReferences_UnknownIDsKept(t *testing.T) {
	doc := NewDocument("doc")
	orphan := &Sample{ID: "orphan"}
	doc.Run.Sample = orphan

	r := ResolveReferences(doc)
	require.NotNil(t, r)
	assert.Same(t, orphan, doc.Run.Sample)

	other := &DataProcessing{ID: "other"}
	assert.Same(t, other, r.DataProcessing(other))
	assert.Nil(t, r.DataProcessing(nil))
}

func TestResolver_RegisterListProcessing(t *testing.T) {
	doc := NewDocument("doc")
	sw := NewSoftware("pwiz", "3.0")
	dp := NewDataProcessing("dp")
	dp.Append(ProcessingMethod{Software: sw})
	doc.Softwares = []*Software{sw}
	doc.DataProcessings = []*DataProcessing{dp}
	r := ResolveReferences(doc)

	assert.Same(t, dp, r.RegisterListProcessing(dp.Clone()))
	assert.Nil(t, r.RegisterListProcessing(nil))

	extended := dp.Clone()
	extended.ProcessingMethods[0].Software = &Software{ID: "pwiz"}
	extended.Append(ProcessingMethod{Software: &Software{ID: "pwiz"}})
	list := r.RegisterListProcessing(extended)
	assert.Same(t, extended, list)
	assert.Same(t, sw, list.ProcessingMethods[1].Software)
	assert.Same(t, list, r.RegisterListProcessing(extended.Clone()))

	// elements match by content, falling back to the document level record
	assert.Same(t, list, r.DataProcessing(extended.Clone()))
	assert.Same(t, dp, r.DataProcessing(dp.Clone()))
	assert.Same(t, dp, r.DataProcessing(&DataProcessing{ID: "dp"}))
}
