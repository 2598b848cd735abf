package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/filipelima1990/schemactl/internal/provision"
)

func TestRunApply_FullSuccess(t *testing.T) {
	exec := newFakeExecutor()
	var out bytes.Buffer

	err := runApply(context.Background(), &out, exec, provision.Datasets(), false)
	if err != nil {
		t.Fatalf("runApply() error = %v, want nil", err)
	}

	want := []string{
		"football_data_dev",
		"football_data_prod",
		"portugal_houses_dev",
		"portugal_houses_prod",
	}
	if len(exec.applied) != len(want) {
		t.Fatalf("applied = %v, want %v", exec.applied, want)
	}
	if !strings.Contains(out.String(), "All schemas created successfully!") {
		t.Errorf("output missing final success line:\n%s", out.String())
	}
}

func TestRunApply_FailureStopsRun(t *testing.T) {
	exec := newFakeExecutor()
	exec.failOn["football_data_prod"] = errors.New("could not connect to server")
	var out bytes.Buffer

	err := runApply(context.Background(), &out, exec, provision.Datasets(), false)
	if err == nil {
		t.Fatal("runApply() error = nil, want failure")
	}
	if len(exec.applied) != 2 {
		t.Errorf("applied = %v, want the run to stop after football_data_prod", exec.applied)
	}
	if strings.Contains(out.String(), "All schemas created successfully!") {
		t.Error("final success line printed despite a failure")
	}
}

func TestRunApply_DryRun(t *testing.T) {
	exec := newFakeExecutor()
	var out bytes.Buffer

	err := runApply(context.Background(), &out, exec, provision.Datasets(), true)
	if err != nil {
		t.Fatalf("runApply() error = %v", err)
	}
	if len(exec.applied) != 0 {
		t.Errorf("dry run applied %v, want nothing", exec.applied)
	}
	if !strings.Contains(out.String(), "Dry run — nothing applied.") {
		t.Errorf("output missing dry run footer:\n%s", out.String())
	}
}

func TestSelectDatasets_All(t *testing.T) {
	datasets, err := selectDatasets("", "")
	if err != nil {
		t.Fatalf("selectDatasets() error = %v", err)
	}
	if len(datasets) != 2 {
		t.Errorf("selectDatasets() returned %d datasets, want 2", len(datasets))
	}
}

func TestSelectDatasets_ByName(t *testing.T) {
	datasets, err := selectDatasets("housing", "")
	if err != nil {
		t.Fatalf("selectDatasets() error = %v", err)
	}
	if len(datasets) != 1 || datasets[0].Name != "housing" {
		t.Errorf("selectDatasets(housing) = %v", datasets)
	}
	if len(datasets[0].Environments) != 2 {
		t.Errorf("environments = %v, want both kept", datasets[0].Environments)
	}
}

func TestSelectDatasets_ByEnv(t *testing.T) {
	datasets, err := selectDatasets("", "prod")
	if err != nil {
		t.Fatalf("selectDatasets() error = %v", err)
	}
	if len(datasets) != 2 {
		t.Fatalf("selectDatasets(env=prod) returned %d datasets, want 2", len(datasets))
	}
	for _, d := range datasets {
		if len(d.Environments) != 1 || d.Environments[0] != "prod" {
			t.Errorf("%s environments = %v, want [prod]", d.Name, d.Environments)
		}
	}
}

func TestSelectDatasets_UnknownDataset(t *testing.T) {
	if _, err := selectDatasets("weather", ""); err == nil {
		t.Error("selectDatasets(weather) error = nil, want unknown dataset")
	}
}

func TestSelectDatasets_UnknownEnv(t *testing.T) {
	if _, err := selectDatasets("", "staging"); err == nil {
		t.Error("selectDatasets(env=staging) error = nil, want unknown environment")
	}
}
