package irclib

// SetDefaultHandlers installs the stock protocol policies the library can
// provide without taking over the connection. Currently that is exactly one:
// the PING keep-alive reply. It is opt-in so the core stays policy-free.
//
// The PING handler answers "PING :token" with "PONG :token", bypassing the
// OnSend filter so user logic cannot break the keep-alive.
func (c *Client) SetDefaultHandlers() {
	c.SetHandler("PING", func(c *Client, msg *Message) {
		if len(msg.Params) > 0 {
			c.SendRaw("PONG :" + msg.Params[len(msg.Params)-1])
		} else {
			c.SendRaw("PONG")
		}
	})
}
