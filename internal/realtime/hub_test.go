package realtime

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestHub() *Hub {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewHub(logger)
}

func TestHub_StopEndsLoop(t *testing.T) {
	hub := newTestHub()
	hub.Start()

	hub.Publish("created", "transaction", "abc")

	done := make(chan struct{})
	go func() {
		hub.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}
}

func TestHub_StopIsIdempotent(t *testing.T) {
	hub := newTestHub()
	hub.Start()

	hub.Stop()
	assert.NotPanics(t, func() { hub.Stop() })
}

func TestHub_PublishAfterStopDoesNotBlock(t *testing.T) {
	hub := newTestHub()
	hub.Start()
	hub.Stop()

	done := make(chan struct{})
	go func() {
		// The loop is gone; events land in the buffer or are dropped.
		for i := 0; i < 100; i++ {
			hub.Publish("updated", "item", "xyz")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked after Stop")
	}
}
