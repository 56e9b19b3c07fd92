// Package snapshot persists documents in JSON or msgpack.
//
// A snapshot holds the document metadata and the fully loaded content of both
// run lists. Encoding pulls every element with binary data, so a document
// whose lists are wrapped (thresholded, filtered) is written in its processed
// form. Decoding yields in-memory lists and re-links shared references with
// msdata.ResolveReferences.
//
// # Keys
//
// Store addresses snapshots by key: a local path, or an object in the
// configured bucket when prefixed with "storage:". The format always follows
// the extension (.json, .msgpack, .mpk).
//
// # Caching
//
// Loaded documents are cached per key for the configured TTL. Concurrent loads
// of the same key are collapsed with singleflight.
//
// # Usage
//
//	store := snapshot.NewStore(client, cfg.Storage.Bucket, snapshot.WithLogger(logger))
//	doc, err := store.Load(ctx, "storage:runs/a.msgpack")
//	if err != nil {
//	    return err
//	}
//	err = store.Save(ctx, "out.json", doc)
package snapshot
