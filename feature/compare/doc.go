// Package compare exposes snapshot comparison over HTTP.
//
// Both snapshots are loaded concurrently through a Snapshots implementation
// (normally *snapshot.Store), compared with the configured diff defaults and
// summarized as a models.Report. When a database is configured, reports are
// persisted to the diff_reports table and can be listed later.
//
// # Routes
//
//   - POST /compare: body {"a": "...", "b": "...", "precision": 1e-6, "ignore_spectra": true, "record": false}
//   - GET /compare/reports?limit=50&offset=0: stored reports without residual text
//   - GET /compare/reports/:id: one report including both residuals
//
// Every route accepts ?format=yaml. Request errors map to 400, unknown
// snapshots and reports to 404, and report queries without a database to 503.
//
// # Usage
//
//	feature := compare.NewFeature(store, db, cfg.Diff, m, logger)
//	mgr.Register(feature)
package compare
