package migrations

import "embed"

// FS SQL-миграции, встроенные в бинарник cmd/migrate
//
//go:embed *.sql
var FS embed.FS
