package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/habitlog/internal/storage/postgres"
	"github.com/julianstephens/habitlog/internal/storage/sqlite"
)

var (
	_ Provider = (*sqlite.Store)(nil)
	_ Provider = (*postgres.Store)(nil)
	_ Migrator = (*sqlite.Store)(nil)
	_ Migrator = (*postgres.Store)(nil)
)

// New picks a store for config: PostgreSQL for connection URLs and DSNs,
// SQLite for anything else, treated as a file path.
func New(config string) Provider {
	if IsPostgres(config) {
		return postgres.New(config)
	}
	return sqlite.NewStore(ExpandPath(config))
}

// IsPostgres reports whether config names a PostgreSQL database.
func IsPostgres(config string) bool {
	return postgres.IsURL(config) || postgres.IsDSN(config)
}

// HasEmbeddedCredentials reports whether a PostgreSQL connection string
// carries a password.
func HasEmbeddedCredentials(connStr string) bool {
	_, err := postgres.ValidateConnString(connStr)
	return errors.Is(err, postgres.ErrEmbeddedCredentials)
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
