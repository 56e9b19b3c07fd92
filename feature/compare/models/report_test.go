package models

import (
	"testing"

	"msforge/core/diff"

	"github.com/stretchr/testify/assert"
)

func TestNewReport(t *testing.T) {
	rep := diff.Report{
		Stats:   diff.Stats{Different: true, Spectra: 2, MaxSpectrumDifference: 0.5, ElapsedMillis: 7},
		AMinusB: "spectrum:\n",
	}
	r := NewReport("id1", "a.json", "b.json", rep)

	assert.Equal(t, "id1", r.ID)
	assert.True(t, r.Different)
	assert.Equal(t, 2, r.Spectra)
	assert.Equal(t, 0.5, r.MaxSpectrumDifference)
	assert.Equal(t, int64(7), r.ElapsedMillis)
	assert.Equal(t, diff.FormatStats(rep.Stats), r.Summary)
	assert.Equal(t, "spectrum:\n", r.AMinusB)
	assert.Empty(t, r.BMinusA)
	assert.False(t, r.CreatedAt.IsZero())
	assert.Equal(t, "diff_reports", Report{}.TableName())
}
