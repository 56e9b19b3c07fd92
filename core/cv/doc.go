// Package cv holds the controlled vocabulary terms used to annotate measurement runs.
//
// Terms are identified by the enumerated CVID type. Each id maps to a Term carrying
// its accession ("MS:1000515"), its name ("intensity array") and its direct is-a
// parents, so callers can ask whether a term belongs to a broader category.
//
// # Encoding
//
// CVID implements encoding.TextMarshaler using the accession, which keeps snapshots
// readable and stable across reordering of the constant block.
//
// # Usage
//
//	if cv.IsA(param.CVID, cv.MSBinaryDataArray) {
//	    fmt.Println(cv.Info(param.CVID).Accession)
//	}
package cv
