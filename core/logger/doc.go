// Package logger builds the zap loggers used across msforge.
//
// Level debug selects zap's development preset (debug level, caller and
// stack traces); other levels use the production preset. Format console
// colors levels and prints ISO8601 timestamps, json is meant for log
// shippers. Field names are fixed to level, time and message.
//
// HTTP handlers derive a request scoped logger with WithRayID, which reads the
// id the rayid middleware stores under RayIDKey.
//
// # Usage
//
//	log, err := logger.New(&cfg.Log)
//	if err != nil {
//	    return err
//	}
//	defer log.Sync()
//
//	l := logger.WithRayID(log, c)
//	l.Error("Comparison failed", zap.Error(err))
package logger
