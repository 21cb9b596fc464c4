// Package db holds the SQL schema migrations and the code that applies them.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
