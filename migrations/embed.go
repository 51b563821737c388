// Package migrations embeds the goose SQL migrations so binaries and tests
// apply the same schema without a migrations directory on disk.
package migrations

import "embed"

// FS holds the *.sql migration files.
//
//go:embed *.sql
var FS embed.FS
