package main

import (
	"context"
	"os"
	"time"

	"github.com/user/framepump/pkg/orchestrator"
	"github.com/user/framepump/pkg/ports"
)

// shutdownGrace bounds how long a read or write blocked on a stalled pipe
// may hold the process after an interrupt.
const shutdownGrace = 3 * time.Second

// interruptHandler turns the first SIGINT/SIGTERM into a cancellation.
// Signal delivery is then handed back to the runtime, so a second signal
// terminates the process with the default action.
type interruptHandler struct {
	signals <-chan os.Signal
	stop    func()
	cancel  context.CancelFunc
	logger  ports.Logger
	grace   time.Duration
	exit    func(int)
}

// watch returns when done is closed, or after exit has been called because
// the run did not return within the grace period.
func (h *interruptHandler) watch(done <-chan struct{}) {
	select {
	case <-h.signals:
	case <-done:
		return
	}

	h.stop()
	h.logger.Warn("Interrupted, shutting down...")
	h.cancel()

	timer := time.NewTimer(h.grace)
	defer timer.Stop()

	select {
	case <-done:
	case <-timer.C:
		h.logger.Error("Did not stop within %s, exiting", h.grace)
		h.exit(orchestrator.ExitInterrupted)
	}
}
