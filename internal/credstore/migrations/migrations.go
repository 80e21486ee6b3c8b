// Package migrations embeds the credstore schema migration files.
package migrations

import "embed"

// Migrations holds the SQL migration files applied at startup.
//
//go:embed *.sql
var Migrations embed.FS
