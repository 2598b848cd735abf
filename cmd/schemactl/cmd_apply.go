package main

import (
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/filipelima1990/schemactl/internal/provision"
	"github.com/filipelima1990/schemactl/internal/style"
)

func newApplyCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		dataset   string
		env       string
		dryRun    bool
		container string
		psqlUser  string
		dsn       string
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply every dataset schema to its dev and prod databases",
		Long: `Apply the embedded DDL to every target database, in declared order:
datasets first, then each dataset's environments.

The run stops at the first failure. Targets provisioned before the failure
keep their new schema; targets after it are not attempted.

By default statements are run with psql inside the Postgres container
(docker exec). With --dsn they run over a direct connection instead.

EXAMPLES:
  schemactl apply                      # All datasets, all environments
  schemactl apply --dataset housing    # One dataset, both environments
  schemactl apply --env dev            # Every dataset, dev only
  schemactl apply --dry-run            # Print the plan without executing
  schemactl apply --dsn postgres://postgres@localhost:5432/postgres?sslmode=disable`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			datasets, err := selectDatasets(dataset, env)
			if err != nil {
				return err
			}

			var executor provision.Executor
			switch {
			case dryRun:
				// Never invoked; the runner short-circuits before Apply.
				executor = provision.NewDockerPsql(container, psqlUser)
			case dsn != "":
				executor = &provision.Postgres{DSN: dsn}
			default:
				if _, err := exec.LookPath("docker"); err != nil {
					return fmt.Errorf("docker not found in PATH — run 'schemactl doctor', or use --dsn for a direct connection")
				}
				executor = provision.NewDockerPsql(container, psqlUser)
			}

			return runApply(cmd.Context(), stdout, executor, datasets, dryRun)
		},
	}

	cmd.Flags().StringVar(&dataset, "dataset", "", "Restrict the run to one dataset (football, housing)")
	cmd.Flags().StringVar(&env, "env", "", "Restrict the run to one environment (dev, prod)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the plan without executing")
	cmd.Flags().StringVar(&container, "container", "postgres", "Postgres container name for docker exec")
	cmd.Flags().StringVar(&psqlUser, "psql-user", "postgres", "Database user for psql -U")
	cmd.Flags().StringVar(&dsn, "dsn", "", "Connect directly with this postgres:// DSN instead of docker exec")

	return cmd
}

// runApply drives the sequential provisioning run and prints the summary line.
func runApply(ctx context.Context, stdout io.Writer, executor provision.Executor, datasets []provision.Dataset, dryRun bool) error {
	fmt.Fprintf(stdout, "🔧 Creating database schemas...\n")

	r := &provision.Runner{Exec: executor, Stdout: stdout, DryRun: dryRun}
	if err := r.Run(ctx, datasets); err != nil {
		return err
	}

	if dryRun {
		fmt.Fprintf(stdout, "\n%s Dry run — nothing applied.\n", style.Bold.Render("~"))
		return nil
	}
	fmt.Fprintf(stdout, "\n%s All schemas created successfully!\n", style.Success.Render(style.IconPass))
	return nil
}

// selectDatasets filters the declared datasets by the --dataset and --env
// flags, preserving declared order. Empty flags select everything.
func selectDatasets(name, env string) ([]provision.Dataset, error) {
	datasets := provision.Datasets()

	if name != "" {
		d, ok := provision.DatasetByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown dataset %q (want football or housing)", name)
		}
		datasets = []provision.Dataset{d}
	}

	if env == "" {
		return datasets, nil
	}

	var filtered []provision.Dataset
	for _, d := range datasets {
		for _, e := range d.Environments {
			if e == env {
				d.Environments = []string{env}
				filtered = append(filtered, d)
				break
			}
		}
	}
	if len(filtered) == 0 {
		return nil, fmt.Errorf("unknown environment %q (want dev or prod)", env)
	}
	return filtered, nil
}
