package irclib

import "strings"

// CommandHandler processes one parsed inbound command.
type CommandHandler func(c *Client, msg *Message)

// SetHandler registers a handler for a specific command token ("PING",
// "001", ...). Command matching is case-insensitive, as IRC command tokens
// are. A nil handler removes any existing registration. Handlers run after
// the OnCommand hook, synchronously, and may call Send.
func (c *Client) SetHandler(command string, handler CommandHandler) {
	if c.handlers == nil {
		c.handlers = make(map[string]CommandHandler)
	}
	command = strings.ToUpper(command)
	if handler == nil {
		delete(c.handlers, command)
	} else {
		c.handlers[command] = handler
	}
}

// dispatch routes a parsed message to its registered handler, if any.
func (c *Client) dispatch(msg *Message) {
	if h, ok := c.handlers[strings.ToUpper(msg.Command)]; ok {
		h(c, msg)
	}
}
