package irclib

import (
	"context"
	"net"

	"github.com/KarpelesLab/emitter"
)

// Connect establishes the connection, or makes progress toward it.
//
// The connect handshake is asynchronous: the first call initiates a
// non-blocking TCP connect and later calls complete it, so Connect normally
// has to be invoked repeatedly (with the caller providing its own delay
// between attempts) until it returns true. It returns true exactly when the
// connection is established on this call, and immediately when already
// connected. On the transition into the connected state the OnConnect
// callback fires once, before Connect returns.
//
// addr is "host:port" and is sticky: pass "" on follow-up calls to keep
// completing the pending attempt. Dial failures are returned verbatim; the
// client never retries on its own.
func (c *Client) Connect(addr string) (bool, error) {
	switch c.state {
	case stateConnected:
		return true, nil
	case stateConnecting:
		ok, err := c.sock.finishConnect()
		if err != nil {
			c.logf("connect to %s failed: %s", c.addr, err)
			c.teardown()
			return false, err
		}
		if !ok {
			return false, nil
		}
	default:
		if addr != "" {
			c.addr = addr
		}
		if c.addr == "" {
			return false, ErrNoAddress
		}
		s, ok, err := dialSock(c.addr)
		if err != nil {
			return false, err
		}
		c.sock = s
		if !ok {
			c.state = stateConnecting
			return false, nil
		}
	}

	c.w = c.sock
	c.established()
	return true, nil
}

// UseConn attaches an already-established stream (a tls.Conn, a WebSocket
// gateway stream, a net.Pipe end) in place of the built-in TCP socket. The
// conn is adapted to the client's polled model and OnConnect fires before
// UseConn returns. Fails with ErrAlreadyAttached unless the client is
// disconnected.
func (c *Client) UseConn(conn net.Conn) error {
	if c.state != stateDisconnected {
		return ErrAlreadyAttached
	}
	c.w = &netWire{conn: conn}
	c.established()
	return nil
}

// established flips the state and propagates the connect event.
func (c *Client) established() {
	c.state = stateConnected
	if c.addr != "" {
		c.logf("connected to %s", c.addr)
	} else {
		c.logf("transport attached")
	}
	emitter.Global.Emit(context.Background(), "irc:connect")
	if c.OnConnect != nil {
		c.OnConnect(c)
	}
}

// Disconnect tears the connection down immediately. The outbound queue is
// not flushed and not cleared. OnDisconnect fires before the socket closes.
// For the built-in TCP socket the descriptor is put back into blocking mode
// first so the close itself is deterministic. Returns ErrNotConnected when
// there is nothing to tear down.
func (c *Client) Disconnect() error {
	if c.state == stateDisconnected {
		return ErrNotConnected
	}
	if c.state == stateConnected {
		c.logf("disconnecting")
		emitter.Global.Emit(context.Background(), "irc:disconnect")
		if c.OnDisconnect != nil {
			c.OnDisconnect(c)
		}
	}
	return c.teardown()
}

// Poll performs one cooperative I/O pump: every inbound line available right
// now is framed and dispatched in arrival order, then the outbound queue is
// drained as far as the socket accepts. Poll never blocks; when the peer has
// closed the stream the transport is torn down silently (IsConnected turns
// false, OnDisconnect does not fire) and Poll returns nil.
func (c *Client) Poll() error {
	if err := c.read(); err != nil {
		return err
	}
	return c.write()
}

// teardown releases the transport and resets framer state. The outbound
// queue survives so a later connection can flush it.
func (c *Client) teardown() error {
	var err error
	if c.w != nil {
		err = c.w.Close()
	} else if c.sock != nil {
		err = c.sock.Close()
	}
	c.sock = nil
	c.w = nil
	c.state = stateDisconnected
	c.acc = c.acc[:0]
	c.lastB = 0
	return err
}
