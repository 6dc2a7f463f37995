package irclib

// Send enqueues one outbound protocol line. The OnSend filter, when set, may
// rewrite the line first; the result is framed with CRLF and appended to the
// queue. Queueing works while disconnected, and queued lines survive a
// disconnect, so a caller that wants a clean slate on reconnect must decide
// that for itself.
//
// The line must not contain CR or LF; framing appends the terminator, it
// does not escape content.
func (c *Client) Send(line string) {
	if c.OnSend != nil {
		line = c.OnSend(c, line)
	}
	c.enqueue(line)
}

// SendRaw enqueues a line without consulting the OnSend filter. Meant for
// protocol-critical lines that user logic must not rewrite, like the
// keep-alive PONG.
func (c *Client) SendRaw(line string) {
	c.enqueue(line)
}

func (c *Client) enqueue(line string) {
	buf := make([]byte, 0, len(line)+2)
	buf = append(buf, line...)
	buf = append(buf, '\r', '\n')
	c.outq = append(c.outq, buf)
}

// write drains the outbound queue head-first until the socket stops
// accepting bytes. A partially written head stays at the front with only its
// unwritten remainder, so the next pump resumes exactly where this one
// stopped. Zero progress ends the drain without error; the caller's next
// Poll tries again.
func (c *Client) write() error {
	if c.state != stateConnected {
		return nil
	}
	for len(c.outq) > 0 {
		head := c.outq[0]
		n, err := c.w.Write(head)
		if n > 0 {
			if n == len(head) {
				c.outq = c.outq[1:]
			} else {
				c.outq[0] = head[n:]
			}
		}
		if err != nil {
			if err == errWouldBlock {
				return nil
			}
			return err
		}
		if n == 0 {
			// no error and no progress, treat like a full buffer
			return nil
		}
	}
	return nil
}
