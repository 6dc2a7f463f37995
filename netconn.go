package irclib

import (
	"errors"
	"net"
	"os"
	"time"
)

// connPollInterval is the deadline slack used to emulate non-blocking I/O on
// a net.Conn. A Poll over an idle adapted conn parks for at most this long.
const connPollInterval = time.Millisecond

// netWire adapts a blocking net.Conn to the wire contract by giving every
// operation a near-immediate deadline and mapping the resulting timeout to
// errWouldBlock. Used for streams attached via UseConn.
type netWire struct {
	conn net.Conn
}

func (w *netWire) Read(p []byte) (int, error) {
	w.conn.SetReadDeadline(time.Now().Add(connPollInterval))
	n, err := w.conn.Read(p)
	if err != nil && errors.Is(err, os.ErrDeadlineExceeded) {
		if n > 0 {
			return n, nil
		}
		return 0, errWouldBlock
	}
	return n, err
}

func (w *netWire) Write(p []byte) (int, error) {
	w.conn.SetWriteDeadline(time.Now().Add(connPollInterval))
	n, err := w.conn.Write(p)
	if err != nil && errors.Is(err, os.ErrDeadlineExceeded) {
		if n > 0 {
			return n, nil
		}
		return 0, errWouldBlock
	}
	return n, err
}

func (w *netWire) Close() error {
	return w.conn.Close()
}
