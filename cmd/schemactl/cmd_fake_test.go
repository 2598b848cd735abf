package main

import "context"

// fakeExecutor is a local in-memory provision.Executor for cmd package tests.
type fakeExecutor struct {
	applied []string
	failOn  map[string]error
}

func newFakeExecutor() *fakeExecutor {
	return &fakeExecutor{failOn: make(map[string]error)}
}

func (f *fakeExecutor) Apply(_ context.Context, targetDB, _ string) error {
	f.applied = append(f.applied, targetDB)
	if err, ok := f.failOn[targetDB]; ok {
		return err
	}
	return nil
}
