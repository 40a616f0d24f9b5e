// Package migrations embeds the schema so the binaries migrate without a
// checkout of the repository.
package migrations

import "embed"

// Postgres holds the numbered up/down scripts under postgres/.
//
//go:embed postgres/*.sql
var Postgres embed.FS

const PostgresDir = "postgres"
