package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vncsmyrnk/bookclub-poll/internal/adapters/store/firestore"
	"github.com/vncsmyrnk/bookclub-poll/internal/adapters/store/memory"
	"github.com/vncsmyrnk/bookclub-poll/internal/adapters/store/mongo"
	"github.com/vncsmyrnk/bookclub-poll/internal/adapters/store/sqldoc"
	"github.com/vncsmyrnk/bookclub-poll/internal/config"
	"github.com/vncsmyrnk/bookclub-poll/internal/core/ports"
)

// Open connects the document store selected by cfg.Driver. SQL stores are
// migrated first when cfg.AutoMigrate is set.
func Open(ctx context.Context, cfg config.Store, log *slog.Logger) (ports.DocumentStore, error) {
	log = log.With(slog.String("driver", cfg.Driver))

	switch cfg.Driver {
	case config.DriverMemory:
		log.Warn("using in-memory store, data is lost on restart")
		return memory.NewStore(), nil

	case config.DriverFirestore:
		return firestore.Open(ctx, firestore.Config{
			ProjectID:       cfg.FirestoreProjectID,
			CredentialsFile: cfg.CredentialsFile,
			CredentialsJSON: cfg.CredentialsJSON,
		})

	case config.DriverMongo:
		return mongo.Open(ctx, cfg.MongoURI, cfg.MongoDatabase)

	case config.DriverPostgres:
		return openSQL(ctx, sqldoc.Postgres, cfg.PostgresDSN(), cfg.AutoMigrate, log)

	case config.DriverSQLite:
		return openSQL(ctx, sqldoc.SQLite, cfg.SQLitePath, cfg.AutoMigrate, log)
	}

	return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
}

func openSQL(ctx context.Context, dialect sqldoc.Dialect, dsn string, migrate bool, log *slog.Logger) (ports.DocumentStore, error) {
	s, err := sqldoc.Open(ctx, dialect, dsn)
	if err != nil {
		return nil, err
	}

	if !migrate {
		return s, nil
	}

	applied, err := sqldoc.Migrate(ctx, s.DB(), dialect, "")
	if err != nil {
		s.Close()
		return nil, err
	}
	log.Debug("migrations applied", slog.Any("files", applied))

	return s, nil
}
