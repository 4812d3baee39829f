package sqldoc

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strings"
)

//go:embed migrations
var migrationFiles embed.FS

// Migrate executes the dialect's *up.sql files in name order. When name is not
// empty only the file matching it runs. Every statement is idempotent, so
// running the full set twice is harmless.
func Migrate(ctx context.Context, db *sql.DB, dialect Dialect, name string) ([]string, error) {
	files, err := migrationFileNames(dialect, name)
	if err != nil {
		return nil, err
	}

	dir := path.Join("migrations", dialect.Name)
	for _, f := range files {
		content, err := fs.ReadFile(migrationFiles, path.Join(dir, f))
		if err != nil {
			return nil, fmt.Errorf("failed to read migration file %s: %w", f, err)
		}

		if _, err := db.ExecContext(ctx, string(content)); err != nil {
			return nil, fmt.Errorf("failed to execute migration %s: %w", f, err)
		}
	}

	return files, nil
}

func migrationFileNames(dialect Dialect, name string) ([]string, error) {
	entries, err := fs.ReadDir(migrationFiles, path.Join("migrations", dialect.Name))
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var pattern *regexp.Regexp
	if name != "" {
		pattern = regexp.MustCompile(fmt.Sprintf(`^.*%s\.up\.sql$`, regexp.QuoteMeta(name)))
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), "up.sql") {
			continue
		}
		if pattern != nil && !pattern.MatchString(entry.Name()) {
			continue
		}
		files = append(files, entry.Name())
	}

	if name != "" && len(files) == 0 {
		return nil, fmt.Errorf("migration file not found")
	}

	sort.Strings(files)
	return files, nil
}
