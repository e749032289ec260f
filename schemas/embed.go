// Package schemas embeds the SQL migrations for the definition cache table.
package schemas

import "embed"

// Migrations are applied in file name order by database.Migrate.
//
//go:embed migrations/*.sql
var Migrations embed.FS
