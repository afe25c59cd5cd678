// Package migrations embeds the goose SQL migrations so that the server and
// the tests apply the same schema without a path on disk.
package migrations

import "embed"

// FS holds every *.sql migration in this directory.
//
//go:embed *.sql
var FS embed.FS
