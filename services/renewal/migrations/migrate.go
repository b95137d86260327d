package migrations

import (
	"database/sql"
	"embed"
	"path"
	"sort"

	bindata "github.com/status-im/migrate/v4/source/go_bindata"

	"github.com/grailsmarket/ens-referrals/sqlite"
)

const assetsDir = "sql"

//go:embed sql/*.sql
var assets embed.FS

// AssetNames returns the names of the migration files in apply order.
func AssetNames() []string {
	entries, err := assets.ReadDir(assetsDir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names
}

func Asset(name string) ([]byte, error) {
	return assets.ReadFile(path.Join(assetsDir, name))
}

// Migrate applies migrations.
func Migrate(db *sql.DB) error {
	resources := bindata.Resource(
		AssetNames(),
		func(name string) ([]byte, error) {
			return Asset(name)
		},
	)
	return sqlite.Migrate(db, resources)
}
