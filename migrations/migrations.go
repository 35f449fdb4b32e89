// Package migrations embeds the SQL schema migrations for every supported driver.
// Each driver has its own directory named after its database/sql driver name.
package migrations

import "embed"

// FS holds the migration files laid out as <driver>/<version>_<name>.<up|down>.sql.
//
//go:embed postgresql/*.sql mysql/*.sql sqlite3/*.sql
var FS embed.FS
