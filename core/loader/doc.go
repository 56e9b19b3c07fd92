// Package loader registers HTTP features on the fiber app.
//
// A Feature names itself, reports whether it can run with the current
// configuration and mounts its routes in Load. The Manager loads enabled
// features in registration order and stops at the first error, which the start
// command treats as fatal.
//
// # Usage
//
//	mgr := loader.NewManager(logger)
//	mgr.Register(compare.NewFeature(store, db, cfg.Diff, m, logger))
//	if err := mgr.LoadAll(app); err != nil {
//	    return err
//	}
package loader
