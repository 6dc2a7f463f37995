package irclib

import (
	"bytes"
	"io"
)

// scriptWire is an in-memory wire with scripted reads and a throttled write
// side, standing in for a non-blocking socket in tests.
type scriptWire struct {
	reads  [][]byte // consumed front to back; a nil entry reports would-block once
	eof    bool     // once the script is exhausted, report EOF instead of would-block
	sent   bytes.Buffer
	budget int // bytes Write accepts before reporting would-block; -1 is unlimited
	closed bool
}

func (s *scriptWire) Read(p []byte) (int, error) {
	if len(s.reads) == 0 {
		if s.eof {
			return 0, io.EOF
		}
		return 0, errWouldBlock
	}
	chunk := s.reads[0]
	s.reads = s.reads[1:]
	if chunk == nil {
		return 0, errWouldBlock
	}
	n := copy(p, chunk)
	if n < len(chunk) {
		s.reads = append([][]byte{chunk[n:]}, s.reads...)
	}
	return n, nil
}

func (s *scriptWire) Write(p []byte) (int, error) {
	if s.budget == 0 {
		return 0, errWouldBlock
	}
	n := len(p)
	if s.budget > 0 && n > s.budget {
		n = s.budget
	}
	s.sent.Write(p[:n])
	if s.budget > 0 {
		s.budget -= n
	}
	return n, nil
}

func (s *scriptWire) Close() error {
	s.closed = true
	return nil
}

// newTestClient returns a Client already in the connected state over w.
func newTestClient(w wire) *Client {
	c := New()
	c.w = w
	c.state = stateConnected
	return c
}
