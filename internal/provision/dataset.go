// Package provision drives DDL application across the known dataset
// databases: one database per (dataset, environment) pair, provisioned in a
// fixed declared order.
package provision

import "github.com/filipelima1990/schemactl/schema"

// Dataset describes one logical dataset and the databases it provisions.
type Dataset struct {
	// Name is the stable identifier used on the command line.
	Name string

	// DisplayName is the human-readable group header.
	DisplayName string

	// DBPrefix is the target database name prefix. The football dataset
	// keeps the legacy "football_data" prefix, which predates the dataset
	// being named "football" — it is configuration, not derived.
	DBPrefix string

	// Glyph decorates the dataset's group header in console output.
	Glyph string

	// Environments in apply order.
	Environments []string

	// SQL is the full DDL text applied to every target of this dataset.
	SQL string
}

// TargetDB returns the target database name for an environment,
// following the {prefix}_{env} convention.
func (d Dataset) TargetDB(env string) string {
	return d.DBPrefix + "_" + env
}

// Target is a single (dataset, environment) pair to provision.
type Target struct {
	Dataset Dataset
	Env     string
}

// DB returns the target's database name.
func (t Target) DB() string {
	return t.Dataset.TargetDB(t.Env)
}

// Datasets returns all datasets in declared apply order.
// The slice is freshly allocated; callers may filter it.
func Datasets() []Dataset {
	return []Dataset{
		{
			Name:         "football",
			DisplayName:  "Football Data",
			DBPrefix:     "football_data",
			Glyph:        "📊",
			Environments: []string{"dev", "prod"},
			SQL:          schema.FootballSQL,
		},
		{
			Name:         "housing",
			DisplayName:  "Housing Market",
			DBPrefix:     "portugal_houses",
			Glyph:        "🏠",
			Environments: []string{"dev", "prod"},
			SQL:          schema.HousingSQL,
		},
	}
}

// DatasetByName looks up a dataset by its command-line name.
func DatasetByName(name string) (Dataset, bool) {
	for _, d := range Datasets() {
		if d.Name == name {
			return d, true
		}
	}
	return Dataset{}, false
}

// Targets flattens datasets into the full run order: datasets in declared
// order, then environments in each dataset's declared order.
func Targets(datasets []Dataset) []Target {
	var targets []Target
	for _, d := range datasets {
		for _, env := range d.Environments {
			targets = append(targets, Target{Dataset: d, Env: env})
		}
	}
	return targets
}
