// Package migrations embeds the goose SQL migrations so that both the server
// binary and the repository test helper can apply them without a checkout.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
