package provision

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Executor applies a DDL blob to one target database. Implementations report
// success iff the statement ran to completion; the returned error carries
// whatever diagnostic the backend produced.
type Executor interface {
	Apply(ctx context.Context, targetDB, ddl string) error
}

// DockerPsql applies DDL by running psql inside a Postgres container via
// docker exec. No timeout is imposed: a hung psql blocks the run, matching
// the operator expectation that provisioning either finishes or is killed
// by hand.
type DockerPsql struct {
	// Container is the container name passed to docker exec.
	Container string

	// User is the database user passed to psql -U.
	User string
}

// NewDockerPsql returns a DockerPsql executor with defaults filled in.
func NewDockerPsql(container, user string) *DockerPsql {
	if container == "" {
		container = "postgres"
	}
	if user == "" {
		user = "postgres"
	}
	return &DockerPsql{Container: container, User: user}
}

// args builds the docker exec argv for one target. Split out for testing.
func (e *DockerPsql) args(targetDB, ddl string) []string {
	return []string{
		"exec", e.Container,
		"psql", "-U", e.User, "-d", targetDB,
		"-v", "ON_ERROR_STOP=1",
		"-c", ddl,
	}
}

// Apply runs the DDL against targetDB through docker exec. On a nonzero
// exit the error message is the trimmed stderr of the psql invocation.
func (e *DockerPsql) Apply(ctx context.Context, targetDB, ddl string) error {
	cmd := exec.CommandContext(ctx, "docker", e.args(targetDB, ddl)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		diag := strings.TrimSpace(stderr.String())
		if diag == "" {
			return fmt.Errorf("docker exec psql: %w", err)
		}
		return fmt.Errorf("docker exec psql: %w: %s", err, diag)
	}
	return nil
}
