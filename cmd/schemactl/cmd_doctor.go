package main

import (
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/filipelima1990/schemactl/internal/style"
)

func newDoctorCmd(stdout io.Writer) *cobra.Command {
	var check bool
	var container, psqlUser string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the provisioning setup for common issues",
		Long: `Run diagnostic checks on the provisioning setup.

Verifies that docker is installed, the Postgres container is running,
and Postgres inside it accepts connections.

Use --check to exit non-zero if any warnings or failures (useful for CI).

Examples:
  schemactl doctor
  schemactl doctor --container pg-main
  schemactl doctor --check`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			deps := &doctorDeps{
				lookPath: exec.LookPath,
				runCmd:   runCommand,
			}
			return runDoctor(stdout, deps, container, psqlUser, check)
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Exit non-zero if any warnings or failures")
	cmd.Flags().StringVar(&container, "container", "postgres", "Postgres container name to inspect")
	cmd.Flags().StringVar(&psqlUser, "psql-user", "postgres", "Database user for the readiness probe")

	return cmd
}

// diagnostic holds a single check result.
type diagnostic struct {
	name    string
	status  string // "pass", "warn", "fail"
	message string
	fixHint string // manual fix instructions
}

// doctorDeps holds injectable dependencies for testing.
type doctorDeps struct {
	lookPath func(string) (string, error)
	runCmd   func(name string, args ...string) (string, error)
}

// runCommand runs an external command and returns its combined output.
func runCommand(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).CombinedOutput()
	return strings.TrimSpace(string(out)), err
}

func runDoctor(stdout io.Writer, deps *doctorDeps, container, psqlUser string, check bool) error {
	results := runDoctorChecks(stdout, deps, container, psqlUser)

	for _, d := range results {
		if d.fixHint != "" && d.status != "pass" {
			fmt.Fprintf(stdout, "    %s\n", style.Dim.Render(d.fixHint))
		}
	}

	// --check: exit non-zero if any issues.
	if check {
		for _, d := range results {
			if d.status == "fail" || d.status == "warn" {
				return errExit
			}
		}
	}

	return nil
}

func runDoctorChecks(stdout io.Writer, deps *doctorDeps, container, psqlUser string) []diagnostic {
	var results []diagnostic

	// 1. docker installed
	d := checkDocker(stdout, deps)
	results = append(results, d)
	if d.status == "fail" {
		// Container checks are meaningless without docker.
		return results
	}

	// 2. container running
	d = checkContainer(stdout, deps, container)
	results = append(results, d)
	if d.status == "fail" {
		return results
	}

	// 3. postgres accepting connections
	results = append(results, checkPostgres(stdout, deps, container, psqlUser))

	return results
}

func checkDocker(stdout io.Writer, deps *doctorDeps) diagnostic {
	dockerPath, err := deps.lookPath("docker")
	if err != nil {
		d := diagnostic{
			name: "docker", status: "fail", message: "not found in PATH",
			fixHint: "Install docker: https://docs.docker.com/engine/install/",
		}
		fmt.Fprintf(stdout, "  %s docker: %s\n", style.Error.Render(style.IconFail), d.message)
		return d
	}

	output, err := deps.runCmd(dockerPath, "version", "--format", "{{.Client.Version}}")
	if err != nil {
		d := diagnostic{name: "docker", status: "warn", message: fmt.Sprintf("found but 'docker version' failed: %v", err)}
		fmt.Fprintf(stdout, "  %s docker: %s\n", style.Warning.Render(style.IconWarn), d.message)
		return d
	}
	fmt.Fprintf(stdout, "  %s docker: %s\n", style.Success.Render(style.IconPass), output)
	return diagnostic{name: "docker", status: "pass", message: output}
}

func checkContainer(stdout io.Writer, deps *doctorDeps, container string) diagnostic {
	output, err := deps.runCmd("docker", "inspect", "-f", "{{.State.Running}}", container)
	if err != nil {
		d := diagnostic{
			name: "container", status: "fail",
			message: fmt.Sprintf("container %q not found", container),
			fixHint: fmt.Sprintf("Start it: docker start %s", container),
		}
		fmt.Fprintf(stdout, "  %s container: %s\n", style.Error.Render(style.IconFail), d.message)
		return d
	}
	if output != "true" {
		d := diagnostic{
			name: "container", status: "fail",
			message: fmt.Sprintf("container %q exists but is not running", container),
			fixHint: fmt.Sprintf("Start it: docker start %s", container),
		}
		fmt.Fprintf(stdout, "  %s container: %s\n", style.Error.Render(style.IconFail), d.message)
		return d
	}
	fmt.Fprintf(stdout, "  %s container: %s running\n", style.Success.Render(style.IconPass), container)
	return diagnostic{name: "container", status: "pass", message: "running"}
}

func checkPostgres(stdout io.Writer, deps *doctorDeps, container, psqlUser string) diagnostic {
	output, err := deps.runCmd("docker", "exec", container, "pg_isready", "-U", psqlUser)
	if err != nil {
		d := diagnostic{
			name: "postgres", status: "fail",
			message: fmt.Sprintf("not accepting connections: %v", err),
			fixHint: "Check the container logs: docker logs " + container,
		}
		fmt.Fprintf(stdout, "  %s postgres: %s\n", style.Error.Render(style.IconFail), d.message)
		return d
	}
	fmt.Fprintf(stdout, "  %s postgres: %s\n", style.Success.Render(style.IconPass), output)
	return diagnostic{name: "postgres", status: "pass", message: output}
}
