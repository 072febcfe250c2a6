// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package supervisor

import (
	"context"
	"errors"
	"sync/atomic"
)

// mockService fails a configurable number of times and then blocks until
// its context ends.
type mockService struct {
	name      string
	starts    atomic.Int32
	stops     atomic.Int32
	failures  atomic.Int32
	failUntil atomic.Int32
}

func newMockService(name string) *mockService {
	return &mockService{name: name}
}

func (m *mockService) Serve(ctx context.Context) error {
	m.starts.Add(1)
	defer m.stops.Add(1)

	if m.failures.Add(1) <= m.failUntil.Load() {
		return errors.New("simulated failure")
	}

	<-ctx.Done()
	return ctx.Err()
}

// failFirst makes the first n calls to Serve fail.
func (m *mockService) failFirst(n int32) {
	m.failUntil.Store(n)
}

func (m *mockService) String() string {
	return m.name
}
