package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/vncsmyrnk/bookclub-poll/internal/adapters/store/sqldoc"
	"github.com/vncsmyrnk/bookclub-poll/internal/config"
)

// Applies the embedded SQL migrations of the configured store. An optional
// argument restricts the run to the single migration matching that name.
func main() {
	var migrationName string
	if len(os.Args) > 1 {
		migrationName = os.Args[1]
	}

	if err := run(migrationName); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Migration files executed successfully.")
}

func run(migrationName string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dsn, err := sqlDSN(cfg.Store)
	if err != nil {
		return err
	}

	dialect, err := sqldoc.DialectByName(cfg.Store.Driver)
	if err != nil {
		return err
	}

	ctx := context.Background()
	s, err := sqldoc.Open(ctx, dialect, dsn)
	if err != nil {
		return err
	}
	defer s.Close()

	applied, err := sqldoc.Migrate(ctx, s.DB(), dialect, migrationName)
	if err != nil {
		return fmt.Errorf("failed to execute SQL file: %w", err)
	}

	for _, f := range applied {
		fmt.Printf("applied %s\n", f)
	}
	return nil
}

func sqlDSN(cfg config.Store) (string, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return cfg.PostgresDSN(), nil
	case config.DriverSQLite:
		return cfg.SQLitePath, nil
	}
	return "", fmt.Errorf("store driver %q has no SQL migrations", cfg.Driver)
}
