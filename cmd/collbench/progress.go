package main

import (
	"fmt"
	"io"
	"time"

	"github.com/gosuri/uilive"
)

// progress renders live counters for a running workload. A nil *progress
// renders nothing.
type progress struct {
	writer   *uilive.Writer
	lines    []io.Writer
	interval time.Duration
	last     time.Time
}

func newProgress(lines int) *progress {
	if flagQuiet {
		return nil
	}

	p := &progress{
		writer:   uilive.New(),
		interval: progressInterval(),
	}

	p.lines = append(p.lines, p.writer)
	for i := 1; i < lines; i++ {
		p.lines = append(p.lines, p.writer.Newline())
	}

	// start listening for updates and render
	p.writer.Start()
	return p
}

func (p *progress) due() bool {
	if p == nil {
		return false
	}

	return time.Since(p.last) >= p.interval
}

func (p *progress) render(counters ...string) {
	if p == nil {
		return
	}

	for i, line := range counters {
		if i < len(p.lines) {
			fmt.Fprintln(p.lines[i], line)
		}
	}

	p.last = time.Now()
}

func (p *progress) stop() {
	if p == nil {
		return
	}

	p.writer.Stop()
}
