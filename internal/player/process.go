package player

import (
	"context"
	"fmt"
	"os/exec"
	"sync"
	"time"
)

// startupGrace is how long Start watches a freshly spawned process before
// declaring playback underway. Players reject an unplayable source by exiting
// within this window.
const startupGrace = 1500 * time.Millisecond

// process tracks the lifecycle of one spawned player process. Starting a new
// one replaces whatever was running; there is never more than one active
// playback per backend.
type process struct {
	mu   sync.Mutex
	cmd  *exec.Cmd
	done chan error
}

func (p *process) start(ctx context.Context, bin string, args ...string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()

	cmd := exec.CommandContext(ctx, bin, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", bin, err)
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("%s rejected source: %w", bin, err)
		}
		// Exited cleanly right away; openers like xdg-open hand the URL
		// off and return, which still counts as a successful start.
		return nil
	case <-time.After(startupGrace):
		p.cmd = cmd
		p.done = done
		return nil
	}
}

func (p *process) stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stopLocked()
}

func (p *process) stopLocked() error {
	if p.cmd == nil || p.cmd.Process == nil {
		return nil
	}
	_ = p.cmd.Process.Kill()
	<-p.done
	p.cmd = nil
	p.done = nil
	return nil
}
