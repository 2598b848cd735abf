// Package schema holds the canonical DDL for every dataset, embedded at
// build time. The SQL files are hand-maintained and applied verbatim.
package schema

import _ "embed"

// FootballSQL is the football match results schema. It drops and recreates
// the raw table, so applying it resets the target database.
//
//go:embed football.sql
var FootballSQL string

// HousingSQL is the housing market schema (raw/staging/marts). All statements
// use IF NOT EXISTS or CREATE OR REPLACE, so re-applying it is a no-op.
//
//go:embed housing.sql
var HousingSQL string
