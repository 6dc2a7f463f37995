package irclib

import (
	"context"

	"github.com/coder/websocket"
)

// DialWebSocket connects to an IRC server reachable through a WebSocket
// gateway (e.g. "wss://irc-ws.example.net") and attaches the resulting
// stream to the client. ctx bounds the dial only; once attached the stream
// is driven by Poll like any other transport.
//
// The gateway is expected to relay the raw CRLF-delimited byte stream in
// text frames; framing stays with the client.
func (c *Client) DialWebSocket(ctx context.Context, url string) error {
	if c.state != stateDisconnected {
		return ErrAlreadyAttached
	}

	ws, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return err
	}
	ws.SetReadLimit(1024 * 1024) // 1MB max frame size

	return c.UseConn(websocket.NetConn(context.Background(), ws, websocket.MessageText))
}
