// Package sql holds the embedded DDL for the analytical store: base
// tables in dependency order, then the five analytical views the
// dashboard layer reads. All DDL is idempotent.
package sql

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
