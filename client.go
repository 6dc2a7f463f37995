package irclib

import (
	"fmt"
	"log/slog"
)

// readChunk bounds how many bytes a single read syscall may return. It
// bounds syscall granularity only; line length is unbounded at this layer.
const readChunk = 4096

// connState is the lifecycle of the one connection a Client owns.
type connState int

const (
	stateDisconnected connState = iota
	stateConnecting
	stateConnected
)

// wire is a non-blocking byte stream. Read and Write return errWouldBlock
// when no progress is possible; Read returns io.EOF once the peer has closed
// the stream.
type wire interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
	Close() error
}

// Client is a single-connection IRC client. It is not safe for concurrent
// use; one goroutine must own it for its whole life.
//
// All callback fields are optional. They are invoked synchronously from
// Connect, Disconnect, Send and Poll, and may themselves call Send.
type Client struct {
	// OnConnect fires once each time a connection is established, before
	// Connect returns.
	OnConnect func(*Client)
	// OnDisconnect fires once per explicit Disconnect call, before the
	// socket closes. It does not fire when the peer closes the stream;
	// see Poll.
	OnDisconnect func(*Client)
	// OnMessage receives every framed inbound line, CRLF excluded, before
	// any parsing.
	OnMessage func(*Client, string)
	// OnCommand receives the parsed form of every inbound line. Lines are
	// only tokenized when OnCommand is set or a command handler is
	// registered.
	OnCommand func(*Client, *Message)
	// OnSend may rewrite an outbound line before it is framed. It is not
	// consulted by SendRaw.
	OnSend func(*Client, string) string

	addr  string
	sock  *sockFD // socket owned by Connect, nil otherwise
	w     wire    // active transport once connected
	state connState

	outq    [][]byte // framed outbound lines, FIFO; head may be partly written
	acc     []byte   // partial inbound line, CR and LF excluded
	lastB   byte     // one byte of lookback for CRLF detection
	scratch []byte

	handlers map[string]CommandHandler
}

// New returns a Client with no address and no connection. Register callbacks
// and then call Connect or UseConn.
func New() *Client {
	return &Client{
		scratch:  make([]byte, readChunk),
		handlers: make(map[string]CommandHandler),
	}
}

// IsConnected reports whether a connection is established.
func (c *Client) IsConnected() bool {
	return c.state == stateConnected
}

// IsConnectionPending reports whether a connect attempt has been initiated
// but not yet completed.
func (c *Client) IsConnectionPending() bool {
	return c.state == stateConnecting
}

func (c *Client) logf(msg string, args ...any) {
	slog.Debug("irc client: "+fmt.Sprintf(msg, args...), "event", "irc:client")
}
