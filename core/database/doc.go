// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to configure
// MySQL or SQLite connections based on the application's configuration. The
// database is optional: comparison reports are persisted only when it connects.
//
// # Connect
//
// Connect selects the dialect from Config.Driver. An empty driver yields
// ErrDisabled so callers can skip persistence without treating it as a failure.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns read the live table layout, letting
// features verify that migrations produced the columns they query.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logger.Warn("database unavailable", zap.Error(err))
//	}
//
//	missing, err := database.MissingColumns(db, "diff_reports", "id", "stats")
package database
