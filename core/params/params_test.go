package params_test

import (
	"testing"

	"msforge/core/cv"
	"msforge/core/params"

	"github.com/stretchr/testify/assert"
)

func TestCVParam(t *testing.T) {
	p := params.NewCVParam(cv.MSScanStartTime, 1.5, cv.UOMinute)
	assert.Equal(t, "1.5", p.Value)
	assert.Equal(t, 90.0, p.TimeInSeconds())
	assert.Equal(t, "scan start time: 1.5 minute", p.String())
	assert.False(t, p.Empty())
	assert.True(t, params.CVParam{}.Empty())

	seconds := params.NewCVParam(cv.MSScanStartTime, "12", cv.UOSecond)
	assert.Equal(t, 12.0, seconds.TimeInSeconds())
	assert.Equal(t, 0.0, params.NewCVParam(cv.MSScanStartTime, 12).TimeInSeconds())
	assert.Equal(t, 2, params.NewCVParam(cv.MSMSLevel, 2).ValueInt())
}

func TestParamEquality(t *testing.T) {
	a := params.NewCVParam(cv.MSMSLevel, 2)
	b := params.NewCVParam(cv.MSMSLevel, "2")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, params.NewCVParam(cv.MSMSLevel, 3))

	u := params.NewUserParam("name", 1, "xsd:int")
	assert.Equal(t, params.UserParam{Name: "name", Value: "1", Type: "xsd:int"}, u)
	assert.Equal(t, "name: 1 (xsd:int)", u.String())
}

func TestLookupPrecedence(t *testing.T) {
	group := params.NewParamGroup("common")
	group.Set(cv.MSMSLevel, 1)
	group.Set(cv.MSCentroidSpectrum, "")

	var pc params.ParamContainer
	pc.ParamGroups = append(pc.ParamGroups, group)

	t.Run("GroupFallback", func(t *testing.T) {
		assert.Equal(t, "1", pc.CVParam(cv.MSMSLevel).Value)
		assert.True(t, pc.HasCVParam(cv.MSCentroidSpectrum))
		assert.True(t, pc.HasCVParamChild(cv.MSSpectrumRepresentation))
	})

	t.Run("LocalWins", func(t *testing.T) {
		pc.Set(cv.MSMSLevel, 2)
		assert.Equal(t, "2", pc.CVParam(cv.MSMSLevel).Value)
		assert.Equal(t, "1", group.CVParam(cv.MSMSLevel).Value)
	})

	t.Run("Missing", func(t *testing.T) {
		assert.True(t, pc.CVParam(cv.MSChargeState).Empty())
		assert.False(t, pc.HasCVParam(cv.MSChargeState))
	})
}

func TestNestedGroups(t *testing.T) {
	inner := params.NewParamGroup("inner")
	inner.Set(cv.MSChargeState, 3)
	inner.SetUserParam("origin", "inner", "")
	outer := params.NewParamGroup("outer")
	outer.ParamGroups = []*params.ParamGroup{inner}

	pc := params.ParamContainer{ParamGroups: []*params.ParamGroup{nil, outer}}
	assert.Equal(t, 3, pc.CVParam(cv.MSChargeState).ValueInt())
	assert.Equal(t, "inner", pc.UserParam("origin").Value)
	assert.True(t, pc.UserParam("absent").Empty())
}

func TestSet(t *testing.T) {
	var pc params.ParamContainer
	pc.Add(params.NewCVParam(cv.MSMSLevel, 1), params.NewCVParam(cv.MSMSLevel, 5))
	pc.Set(cv.MSMSLevel, 2)

	assert.Len(t, pc.CVParams, 2)
	assert.Equal(t, "2", pc.CVParams[0].Value)
	assert.Equal(t, "5", pc.CVParams[1].Value)

	pc.Set(cv.MSPositiveScan, "")
	assert.Len(t, pc.CVParams, 3)

	pc.SetUserParam("x", 1, "")
	pc.SetUserParam("x", 2, "")
	assert.Len(t, pc.UserParams, 1)
	assert.Equal(t, "2", pc.UserParams[0].Value)
}

func TestChildrenAndClone(t *testing.T) {
	group := params.NewParamGroup("arrays")
	group.Set(cv.MSIntensityArray, "")

	pc := params.ParamContainer{ParamGroups: []*params.ParamGroup{group}}
	pc.Set(cv.MSMZArray, "")
	pc.Set(cv.MS64BitFloat, "")

	children := pc.CVParamChildren(cv.MSBinaryDataArray)
	assert.Len(t, children, 2)
	assert.Equal(t, cv.MSMZArray, children[0].CVID)
	assert.Equal(t, cv.MSIntensityArray, children[1].CVID)
	assert.Equal(t, cv.MS64BitFloat, pc.CVParamChild(cv.MSBinaryDataType).CVID)

	clone := pc.Clone()
	clone.Set(cv.MSMZArray, "changed")
	assert.Equal(t, "", pc.CVParam(cv.MSMZArray).Value)
	assert.Same(t, group, clone.ParamGroups[0])

	assert.False(t, pc.Empty())
	pc.Clear()
	assert.True(t, pc.Empty())
}
