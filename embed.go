// Package studybuddy exposes repository-level embedded assets, currently the
// goose SQL migrations applied by the migrate command.
package studybuddy

import "embed"

// Migrations contains the goose SQL migration files.
//
//go:embed migrations/*.sql
var Migrations embed.FS
