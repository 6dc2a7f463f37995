// Package irclib provides a minimal, poll-driven client for the IRC wire
// protocol over a single TCP connection.
//
// The client owns three things and nothing else: a non-blocking connection
// lifecycle, reassembly of the inbound byte stream into CRLF-delimited lines,
// and tokenization of each line into prefix, command and parameters. Channel
// state, user tracking and command semantics are left to the caller.
//
// # Basic Usage
//
// Create a client, register the callbacks you care about, then drive it from
// your own loop:
//
//	c := irclib.New()
//	c.OnConnect = func(c *irclib.Client) {
//	    c.Send("USER johndoe * * :John Doe")
//	    c.Send("NICK johndoe")
//	}
//	c.OnMessage = func(c *irclib.Client, line string) {
//	    fmt.Println(line)
//	}
//	c.SetDefaultHandlers() // opt-in PING/PONG keep-alive
//
//	for ok, _ := c.Connect("irc.example.net:6667"); !ok; ok, _ = c.Connect("") {
//	    time.Sleep(50 * time.Millisecond)
//	}
//	for c.IsConnected() {
//	    if err := c.Poll(); err != nil {
//	        break
//	    }
//	    time.Sleep(10 * time.Millisecond)
//	}
//
// # Concurrency Model
//
// There is no internal goroutine. All I/O happens inside Poll, Connect and
// Disconnect, on the caller's goroutine, and none of it blocks: a Poll with
// nothing to do returns immediately. Callbacks run synchronously during Poll
// and may themselves call Send; the enqueued line goes out in the write half
// of the same Poll. A Client must be driven from a single goroutine.
//
// # Transports
//
// Connect dials a raw non-blocking TCP socket. Streams established by other
// means (a tls.Conn, a WebSocket gateway via DialWebSocket, a net.Pipe in
// tests) can be attached with UseConn instead.
package irclib
