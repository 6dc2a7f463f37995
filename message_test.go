package irclib_test

import (
	"testing"

	"github.com/ryansmarcil/irclib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMessage(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		prefix  string
		command string
		params  []string
	}{
		{
			name:    "prefix and trailing",
			line:    ":irc.example.net NOTICE AUTH :*** Looking up your hostname",
			prefix:  "irc.example.net",
			command: "NOTICE",
			params:  []string{"AUTH", "*** Looking up your hostname"},
		},
		{
			name:    "no prefix no trailing",
			line:    "JOIN #channel",
			command: "JOIN",
			params:  []string{"#channel"},
		},
		{
			name:    "trailing only",
			line:    "PING :server123",
			command: "PING",
			params:  []string{"server123"},
		},
		{
			name:    "colons inside trailing survive",
			line:    ":nick!user@host PRIVMSG #go :see: this stays:whole",
			prefix:  "nick!user@host",
			command: "PRIVMSG",
			params:  []string{"#go", "see: this stays:whole"},
		},
		{
			name:    "command only",
			line:    "QUIT",
			command: "QUIT",
		},
		{
			name:   "prefix only",
			line:   ":irc.example.net",
			prefix: "irc.example.net",
		},
		{
			name:    "consecutive spaces dropped",
			line:    "MODE #chan  +o   guest",
			command: "MODE",
			params:  []string{"#chan", "+o", "guest"},
		},
		{
			name:    "empty trailing dropped",
			line:    "TOPIC #chan :",
			command: "TOPIC",
			params:  []string{"#chan"},
		},
		{
			name:    "numeric with trailing",
			line:    ":irc.example.net 251 guest :There are 3 users",
			prefix:  "irc.example.net",
			command: "251",
			params:  []string{"guest", "There are 3 users"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := irclib.ParseMessage(tc.line)
			require.NotNil(t, msg)
			assert.Equal(t, tc.prefix, msg.Prefix)
			assert.Equal(t, tc.command, msg.Command)
			assert.Equal(t, tc.params, msg.Params)
		})
	}
}
