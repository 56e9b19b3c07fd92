// Package models defines the database representation of comparison reports.
//
// Report flattens diff.Report into columns so listings can filter and sort on
// the summary figures without decoding the residual text.
package models
