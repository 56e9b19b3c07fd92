// Package utils provides small conversion helpers shared by the parameter model
// and the command line.
//
// Parameter values are stored as text, so the helpers here render arbitrary Go
// values into that text form and parse it back leniently. ParseIntSet turns
// user supplied selections such as "1-3 5" into a membership predicate.
package utils
