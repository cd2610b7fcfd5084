package cmd

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

//nolint:gochecknoglobals // Spinner frames
var spinnerFrames = []string{"|", "/", "-", "\\"}

// spinner draws a rotating frame after a message while a slow call runs.
type spinner struct {
	message  string
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
	mu       sync.Mutex
	active   bool
}

func newSpinner(message string) (s *spinner) {
	s = &spinner{
		message:  message,
		interval: 100 * time.Millisecond,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	return s
}

func (s *spinner) start() {
	s.mu.Lock()
	if s.active {
		s.mu.Unlock()
		return
	}
	s.active = true
	s.mu.Unlock()

	go s.run()
}

func (s *spinner) run() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	fmt.Printf("%s ", s.message)
	for frame := 0; ; frame++ {
		select {
		case <-s.stop:
			// Blank the line so following output starts clean.
			fmt.Printf("\r%s\r", strings.Repeat(" ", len(s.message)+2))
			s.done <- struct{}{}
			return
		case <-ticker.C:
			fmt.Printf("\r%s %s", s.message, spinnerFrames[frame%len(spinnerFrames)])
		}
	}
}

func (s *spinner) stopSpinner() {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	s.stop <- struct{}{}
	<-s.done

	s.mu.Lock()
	s.active = false
	s.mu.Unlock()
}

// withProgress runs fn behind a spinner, or prints message first in verbose mode.
func withProgress(message string, fn func()) {
	if getVerbose() {
		fmt.Println(message)
		fn()
		return
	}

	s := newSpinner(message)
	s.start()
	defer s.stopSpinner()
	fn()
}
