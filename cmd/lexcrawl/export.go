package main

import (
	"fmt"

	"github.com/lexcrawl/lexcrawl/fs"
	"github.com/lexcrawl/lexcrawl/sqlite"
)

// Run executes the export command: read the stored term set and write
// the JSON snapshot without touching the network.
func (c *ExportCmd) Run(deps *Dependencies) error {
	database := c.Database
	if database == "" {
		database = deps.Config.Database
	}
	if database == "" {
		return fmt.Errorf("no database given; use --database or set it in the config file")
	}

	db := sqlite.NewDB(database)
	if err := db.Open(); err != nil {
		return err
	}
	defer db.Close()

	store := sqlite.NewCheckpointStore(db)
	terms, err := store.Terms(deps.Ctx)
	if err != nil {
		return err
	}

	writer := fs.NewSnapshotWriter(c.Output)
	if err := writer.WriteSnapshot(deps.Ctx, terms); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "exported %d terms to %s\n", len(terms), c.Output)
	return nil
}
