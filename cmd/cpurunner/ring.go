package main

import (
	"io"
	"strings"
)

// traceRing keeps the last n trace lines written to it. Each Write is
// taken as one line.
type traceRing struct {
	lines []string
	idx   int
	fill  int
}

func newTraceRing(n int) *traceRing {
	if n < 1 {
		n = 1
	}
	return &traceRing{lines: make([]string, n)}
}

func (r *traceRing) Write(p []byte) (int, error) {
	r.lines[r.idx] = strings.TrimRight(string(p), "\n")
	r.idx = (r.idx + 1) % len(r.lines)
	if r.fill < len(r.lines) {
		r.fill++
	}
	return len(p), nil
}

func (r *traceRing) Len() int { return r.fill }

// WriteTo prints the retained lines oldest first.
func (r *traceRing) WriteTo(w io.Writer) (int64, error) {
	var total int64
	start := (r.idx - r.fill + len(r.lines)) % len(r.lines)
	for j := 0; j < r.fill; j++ {
		n, err := io.WriteString(w, r.lines[(start+j)%len(r.lines)]+"\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// byteRing keeps the last n bytes written to it.
type byteRing struct {
	buf  []byte
	idx  int
	fill int
}

func newByteRing(n int) *byteRing {
	return &byteRing{buf: make([]byte, n)}
}

func (r *byteRing) Write(p []byte) (int, error) {
	for _, ch := range p {
		r.buf[r.idx] = ch
		r.idx = (r.idx + 1) % len(r.buf)
		if r.fill < len(r.buf) {
			r.fill++
		}
	}
	return len(p), nil
}

func (r *byteRing) Len() int { return r.fill }

// Bytes returns a copy of the retained bytes, oldest first.
func (r *byteRing) Bytes() []byte {
	out := make([]byte, 0, r.fill)
	start := (r.idx - r.fill + len(r.buf)) % len(r.buf)
	for j := 0; j < r.fill; j++ {
		out = append(out, r.buf[(start+j)%len(r.buf)])
	}
	return out
}
