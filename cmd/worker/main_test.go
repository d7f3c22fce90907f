package main

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeComponent struct {
	stopped bool
}

func (f *fakeComponent) Shutdown() { f.stopped = true }

func TestAwaitShutdownOnSignal(t *testing.T) {
	quit := make(chan os.Signal, 1)
	quit <- os.Interrupt
	scheduler, server := &fakeComponent{}, &fakeComponent{}

	err := awaitShutdown(quit, make(chan error, 1), scheduler, server)

	assert.NoError(t, err)
	assert.True(t, scheduler.stopped)
	assert.True(t, server.stopped)
}

func TestAwaitShutdownOnFatalError(t *testing.T) {
	fatal := make(chan error, 1)
	down := errors.New("redis connection lost")
	fatal <- down
	scheduler, server := &fakeComponent{}, &fakeComponent{}

	err := awaitShutdown(make(chan os.Signal, 1), fatal, scheduler, server)

	// A component failure still drains through the ordered shutdown path.
	assert.ErrorIs(t, err, down)
	assert.True(t, scheduler.stopped)
	assert.True(t, server.stopped)
}
