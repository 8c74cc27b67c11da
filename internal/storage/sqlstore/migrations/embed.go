package migrations

import "embed"

// FS contains the embedded schema files, one directory per dialect.
//
//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
