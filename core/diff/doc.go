// Package diff computes structural differences between measurement run entities.
//
// For two values A and B of the same entity type, a comparison yields two
// residuals of that type: AMinusB holds what is present only in A and BMinusA
// what is present only in B. The values are equivalent when both residuals are
// empty. Residuals carry identity fields for context, so a differing spectrum
// still shows its id and index.
//
// # Comparison rules
//
//   - Scalars and strings: equal values clear both residual fields.
//   - CVParams and UserParams: multiset difference by value.
//   - Composite collections (scans, precursors, components): an element is kept
//     unless some element on the other side diffs empty against it.
//   - Shared references: compared by content, with nil reading as empty.
//   - Binary data: compared by maximum relative difference against Config.Precision;
//     differences are recorded as UserParams on the residuals.
//   - Lists: lists of different sizes produce a single sentinel element on the
//     larger side; otherwise elements are compared index by index.
//
// Data divergence is never an error. Errors are reserved for failing list access.
//
// # Usage
//
//	result, err := diff.Documents(a, b, diff.WithPrecision(1e-4), diff.IgnoreChromatograms())
//	if err != nil {
//	    return err
//	}
//	if result.Different() {
//	    fmt.Println(result)
//	}
//
// Other entity types go through Compare with one of the package comparators:
//
//	result, err := diff.Compare(a, b, diff.InstrumentConfiguration)
package diff
