package spinner

import (
	"fmt"
	"io"
	"sync"
	"time"
)

/*
Console spinner. One background goroutine owns the frame index; request
handlers never touch it. It exists purely as a liveness indicator on the
diagnostic stream.
*/

var DefaultFrames = []string{"|", "/", "-", "\\"}

type Spinner struct {
	out      io.Writer
	frames   []string
	interval time.Duration

	mu      sync.Mutex
	idx     int
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

func New(out io.Writer, interval time.Duration) *Spinner {
	if interval <= 0 {
		interval = time.Second
	}
	return &Spinner{
		out:      out,
		frames:   DefaultFrames,
		interval: interval,
	}
}

// Start begins rotating frames. Calling Start on a running spinner is a
// no-op.
func (s *Spinner) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})
	s.mu.Unlock()

	go s.loop()
}

// Stop halts the spinner and waits for the goroutine to exit.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	stopCh := s.stopCh
	doneCh := s.doneCh
	s.running = false
	s.mu.Unlock()

	close(stopCh)
	<-doneCh

	fmt.Fprint(s.out, "\r\033[K")
}

func (s *Spinner) loop() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.tick()
		case <-s.stopCh:
			close(s.doneCh)
			return
		}
	}
}

func (s *Spinner) tick() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.idx = (s.idx + 1) % len(s.frames)
	frame := s.frames[s.idx]
	s.mu.Unlock()

	fmt.Fprintf(s.out, "\r%s", frame)
}
