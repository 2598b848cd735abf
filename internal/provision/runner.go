package provision

import (
	"context"
	"fmt"
	"io"

	"github.com/filipelima1990/schemactl/internal/style"
)

// Runner applies every target of the given datasets in declared order,
// writing one progress line per target. The first failure stops the run:
// later targets are not attempted, and already-provisioned targets are left
// as they are (DDL application is not transactional across databases).
type Runner struct {
	Exec   Executor
	Stdout io.Writer

	// DryRun prints the plan without invoking the executor.
	DryRun bool
}

// Run provisions all targets sequentially. It returns nil once every target
// succeeded, or an error naming the first target that failed.
func (r *Runner) Run(ctx context.Context, datasets []Dataset) error {
	for _, d := range datasets {
		fmt.Fprintf(r.Stdout, "\n%s %s:\n", d.Glyph, d.DisplayName)
		for _, env := range d.Environments {
			db := d.TargetDB(env)
			if r.DryRun {
				fmt.Fprintf(r.Stdout, "  %s would apply %s schema to %s\n",
					style.Dim.Render("~"), d.Name, db)
				continue
			}
			sp := style.StartSpinner(r.Stdout, fmt.Sprintf("  Creating schema in %s...", db))
			err := r.Exec.Apply(ctx, db, d.SQL)
			sp.Stop()
			if err != nil {
				fmt.Fprintf(r.Stdout, "  %s %s schema failed: %v\n",
					style.Error.Render(style.IconFail), db, err)
				return fmt.Errorf("provisioning %s: %w", db, err)
			}
			fmt.Fprintf(r.Stdout, "  %s %s schema created\n",
				style.Success.Render(style.IconPass), db)
		}
	}
	return nil
}
