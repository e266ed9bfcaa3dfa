package main

import (
	"github.com/openclaw/clawdeploy/adapters/store/rdb"
)

// openRunRepository opens the run-history database named by dbURL and
// ensures its schema is current.
func openRunRepository(dbURL string) (*rdb.RunRepository, error) {
	db, err := rdb.OpenFromURL(dbURL)
	if err != nil {
		return nil, err
	}
	if err := rdb.AutoMigrate(db); err != nil {
		return nil, err
	}
	return rdb.NewRunRepository(db), nil
}
