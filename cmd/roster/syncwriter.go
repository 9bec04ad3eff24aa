package main

import (
	"io"
	"sync"
)

// syncWriter serialises writes from the printer and command goroutines so
// pages and error lines never interleave mid-line.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) do(fn func(io.Writer) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.w)
}

func (s *syncWriter) printf(format string, args ...any) error {
	return s.do(func(w io.Writer) error { return writef(w, format, args...) })
}
