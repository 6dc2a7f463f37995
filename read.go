package irclib

import "io"

// read pulls whatever bytes the socket has ready and feeds them through the
// line framer, dispatching every completed line. It stops when the socket
// has nothing more (returning nil) and tears the transport down when the
// peer has closed the stream.
func (c *Client) read() error {
	if c.state != stateConnected {
		return nil
	}
	for {
		n, err := c.w.Read(c.scratch)
		if err != nil {
			switch err {
			case errWouldBlock:
				return nil
			case io.EOF:
				// peer closed the stream; silent teardown, the
				// disconnect callback is reserved for explicit
				// Disconnect calls
				c.logf("connection closed by peer")
				c.teardown()
				return nil
			default:
				return err
			}
		}
		c.feed(c.scratch[:n])
	}
}

// feed runs the framing state machine over one chunk of the inbound stream.
//
// A line ends at CR LF. The CR is kept only as one byte of lookback, never
// stored in the accumulator, so the dispatched line is exactly the content
// between terminators. A bare LF with no preceding CR is NOT a terminator
// and stays in the line as content; this mirrors the observed protocol
// contract even though mainstream servers treat bare LF as a line break.
// Partial lines persist in the accumulator across read calls, whatever the
// packet boundaries were.
func (c *Client) feed(chunk []byte) {
	for _, b := range chunk {
		switch {
		case b == '\n' && c.lastB == '\r':
			line := string(c.acc)
			c.acc = c.acc[:0]
			c.lastB = 0
			c.receive(line)
		case b == '\r':
			c.lastB = b
		default:
			c.acc = append(c.acc, b)
			c.lastB = b
		}
	}
}

// receive dispatches one framed line: the raw hook first, then the parsed
// form to OnCommand and any per-command handler. Tokenization is skipped
// entirely when nobody consumes it.
func (c *Client) receive(line string) {
	if c.OnMessage != nil {
		c.OnMessage(c, line)
	}
	if c.OnCommand == nil && len(c.handlers) == 0 {
		return
	}
	msg := ParseMessage(line)
	if c.OnCommand != nil {
		c.OnCommand(c, msg)
	}
	c.dispatch(msg)
}
