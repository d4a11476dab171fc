// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/pinvent/internal/config"
	"github.com/MKhiriev/pinvent/internal/logger"
	"github.com/MKhiriev/pinvent/internal/metrics"
	"github.com/MKhiriev/pinvent/internal/store"
	"github.com/stretchr/testify/assert"
)

// countingWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type countingWorker struct {
	mu       sync.Mutex
	runCount int
}

func (m *countingWorker) Run(ctx context.Context) {
	m.mu.Lock()
	m.runCount++
	m.mu.Unlock()
	<-ctx.Done()
}

func (m *countingWorker) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.runCount
}

func runUntilCancelled(t *testing.T, ws *Workers) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Workers.Run did not return after cancellation")
	}
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &countingWorker{}
	w2 := &countingWorker{}
	w3 := &countingWorker{}

	runUntilCancelled(t, &Workers{workers: []Worker{w1, w2, w3}})

	for i, w := range []*countingWorker{w1, w2, w3} {
		if w.count() != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.count())
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{workers: []Worker{}}

	// Should return immediately on an empty workers list
	ws.Run(context.Background())
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run(context.Background())
}

func TestNewWorkers_CleanerEnabled(t *testing.T) {
	ws := NewWorkers(&store.Storages{}, metrics.New(), config.Workers{ResetTokenCleanupInterval: time.Minute}, logger.Nop())

	assert.Len(t, ws.workers, 1)
	assert.IsType(t, &ResetTokenCleaner{}, ws.workers[0])
}

func TestNewWorkers_NegativeIntervalDisables(t *testing.T) {
	ws := NewWorkers(&store.Storages{}, metrics.New(), config.Workers{ResetTokenCleanupInterval: -1}, logger.Nop())

	assert.Empty(t, ws.workers)
}
