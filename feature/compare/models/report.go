package models

import (
	"time"

	"msforge/core/diff"
)

// Report is a persisted comparison of two snapshots.
type Report struct {
	ID                        string    `gorm:"column:id;primaryKey;size:36" json:"id" yaml:"id"`
	A                         string    `gorm:"column:a;size:512" json:"a" yaml:"a"`
	B                         string    `gorm:"column:b;size:512" json:"b" yaml:"b"`
	Different                 bool      `gorm:"column:different" json:"different" yaml:"different"`
	Spectra                   int       `gorm:"column:spectra" json:"spectra" yaml:"spectra"`
	Chromatograms             int       `gorm:"column:chromatograms" json:"chromatograms" yaml:"chromatograms"`
	MaxSpectrumDifference     float64   `gorm:"column:max_spectrum_difference" json:"max_spectrum_difference" yaml:"max_spectrum_difference"`
	MaxChromatogramDifference float64   `gorm:"column:max_chromatogram_difference" json:"max_chromatogram_difference" yaml:"max_chromatogram_difference"`
	ElapsedMillis             int64     `gorm:"column:elapsed_ms" json:"elapsed_ms" yaml:"elapsed_ms"`
	Summary                   string    `gorm:"column:summary;size:512" json:"summary" yaml:"summary"`
	AMinusB                   string    `gorm:"column:a_minus_b;type:text" json:"a_minus_b,omitempty" yaml:"a_minus_b,omitempty"`
	BMinusA                   string    `gorm:"column:b_minus_a;type:text" json:"b_minus_a,omitempty" yaml:"b_minus_a,omitempty"`
	CreatedAt                 time.Time `gorm:"column:created_at;index" json:"created_at" yaml:"created_at"`
}

// TableName overrides the table name.
func (Report) TableName() string {
	return "diff_reports"
}

// Columns lists the columns queried by the report store.
func Columns() []string {
	return []string{"id", "a", "b", "different", "spectra", "chromatograms",
		"max_spectrum_difference", "max_chromatogram_difference", "elapsed_ms",
		"summary", "a_minus_b", "b_minus_a", "created_at"}
}

// NewReport flattens a diff report for storage.
func NewReport(id, a, b string, rep diff.Report) *Report {
	return &Report{
		ID:                        id,
		A:                         a,
		B:                         b,
		Different:                 rep.Stats.Different,
		Spectra:                   rep.Stats.Spectra,
		Chromatograms:             rep.Stats.Chromatograms,
		MaxSpectrumDifference:     rep.Stats.MaxSpectrumDifference,
		MaxChromatogramDifference: rep.Stats.MaxChromatogramDifference,
		ElapsedMillis:             rep.Stats.ElapsedMillis,
		Summary:                   diff.FormatStats(rep.Stats),
		AMinusB:                   rep.AMinusB,
		BMinusA:                   rep.BMinusA,
		CreatedAt:                 time.Now().UTC(),
	}
}
