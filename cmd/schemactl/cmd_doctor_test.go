package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// fakeDoctorDeps builds doctorDeps whose commands answer from a canned map
// keyed by the joined argv.
func fakeDoctorDeps(lookPathErr error, outputs map[string]string, failures map[string]error) *doctorDeps {
	return &doctorDeps{
		lookPath: func(string) (string, error) {
			if lookPathErr != nil {
				return "", lookPathErr
			}
			return "/usr/bin/docker", nil
		},
		runCmd: func(name string, args ...string) (string, error) {
			key := name + " " + strings.Join(args, " ")
			if err, ok := failures[key]; ok {
				return "", err
			}
			return outputs[key], nil
		},
	}
}

func TestRunDoctor_AllHealthy(t *testing.T) {
	deps := fakeDoctorDeps(nil, map[string]string{
		"/usr/bin/docker version --format {{.Client.Version}}": "27.1.1",
		"docker inspect -f {{.State.Running}} postgres":        "true",
		"docker exec postgres pg_isready -U postgres":          "/var/run/postgresql:5432 - accepting connections",
	}, nil)

	var out bytes.Buffer
	if err := runDoctor(&out, deps, "postgres", "postgres", true); err != nil {
		t.Fatalf("runDoctor() error = %v, want nil with healthy setup", err)
	}
	for _, want := range []string{"docker: 27.1.1", "container: postgres running", "accepting connections"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRunDoctor_DockerMissing(t *testing.T) {
	deps := fakeDoctorDeps(errors.New("not found"), nil, nil)

	var out bytes.Buffer
	err := runDoctor(&out, deps, "postgres", "postgres", true)
	if !errors.Is(err, errExit) {
		t.Fatalf("runDoctor() error = %v, want errExit with --check", err)
	}
	if !strings.Contains(out.String(), "not found in PATH") {
		t.Errorf("output missing docker failure:\n%s", out.String())
	}
	// Without docker the container checks are skipped.
	if strings.Contains(out.String(), "container:") {
		t.Errorf("container check ran despite missing docker:\n%s", out.String())
	}
}

func TestRunDoctor_ContainerStopped(t *testing.T) {
	deps := fakeDoctorDeps(nil, map[string]string{
		"/usr/bin/docker version --format {{.Client.Version}}": "27.1.1",
		"docker inspect -f {{.State.Running}} pg-main":         "false",
	}, nil)

	var out bytes.Buffer
	err := runDoctor(&out, deps, "pg-main", "postgres", true)
	if !errors.Is(err, errExit) {
		t.Fatalf("runDoctor() error = %v, want errExit", err)
	}
	if !strings.Contains(out.String(), "not running") {
		t.Errorf("output missing stopped-container diagnosis:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "docker start pg-main") {
		t.Errorf("output missing fix hint:\n%s", out.String())
	}
}

func TestRunDoctor_PostgresNotReady(t *testing.T) {
	deps := fakeDoctorDeps(nil, map[string]string{
		"/usr/bin/docker version --format {{.Client.Version}}": "27.1.1",
		"docker inspect -f {{.State.Running}} postgres":        "true",
	}, map[string]error{
		"docker exec postgres pg_isready -U postgres": errors.New("exit status 2"),
	})

	var out bytes.Buffer
	err := runDoctor(&out, deps, "postgres", "postgres", true)
	if !errors.Is(err, errExit) {
		t.Fatalf("runDoctor() error = %v, want errExit", err)
	}
	if !strings.Contains(out.String(), "not accepting connections") {
		t.Errorf("output missing readiness failure:\n%s", out.String())
	}
}

func TestRunDoctor_NoCheckFlagAlwaysNil(t *testing.T) {
	deps := fakeDoctorDeps(errors.New("not found"), nil, nil)

	var out bytes.Buffer
	if err := runDoctor(&out, deps, "postgres", "postgres", false); err != nil {
		t.Errorf("runDoctor() without --check error = %v, want nil", err)
	}
}
