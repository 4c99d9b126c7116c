// Package database handles the optional database connection.
//
// It provides a wrapper around GORM to configure MySQL or SQLite connections
// from the application's configuration. The only consumer is the publish
// manifest, which remembers the digest of every uploaded asset so unchanged
// assets are skipped on the next run.
//
// # Usage
//
//	if cfg.Database.Enabled() {
//	    db, err := database.Connect(cfg.Database)
//	    if err != nil {
//	        log.Warn("Optional database connection failed", zap.Error(err))
//	    }
//	}
package database
