package irclib

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Lines drained from the queue appear on the wire in enqueue order, each
// with exactly one CRLF appended.
func TestWriteFramingRoundTrip(t *testing.T) {
	w := &scriptWire{budget: -1}
	c := newTestClient(w)

	lines := []string{"NICK guest", "USER guest * * :Guest", "JOIN #go"}
	for _, l := range lines {
		c.Send(l)
	}
	require.NoError(t, c.write())
	require.Equal(t, strings.Join(lines, "\r\n")+"\r\n", w.sent.String())
}

// A short write leaves the unwritten remainder at the queue head; later
// drains resume there without resending or dropping bytes.
func TestWritePartialResumption(t *testing.T) {
	w := &scriptWire{budget: 5}
	c := newTestClient(w)

	c.Send("0123456789") // 12 bytes framed
	require.NoError(t, c.write())
	require.Equal(t, "01234", w.sent.String())
	require.Len(t, c.outq, 1, "partially written line stays queued")

	w.budget = 5
	require.NoError(t, c.write())
	require.Equal(t, "0123456789", w.sent.String())

	w.budget = -1
	require.NoError(t, c.write())
	require.Equal(t, "0123456789\r\n", w.sent.String())
	require.Empty(t, c.outq)
}

// The OnSend filter may rewrite lines; SendRaw bypasses it.
func TestSendFilter(t *testing.T) {
	w := &scriptWire{budget: -1}
	c := newTestClient(w)

	c.OnSend = func(_ *Client, line string) string {
		return strings.ToUpper(line)
	}
	c.Send("privmsg #go :hi")
	c.SendRaw("pong :tok")

	require.NoError(t, c.write())
	require.Equal(t, "PRIVMSG #GO :HI\r\npong :tok\r\n", w.sent.String())
}

// Queueing while disconnected is allowed and the queue survives until a
// transport shows up to flush it.
func TestQueueSurvivesDisconnect(t *testing.T) {
	c := New()
	c.Send("NICK early")
	require.NoError(t, c.write(), "draining without a transport is a no-op")

	w := &scriptWire{budget: -1}
	c.w = w
	c.state = stateConnected
	require.NoError(t, c.write())
	require.Equal(t, "NICK early\r\n", w.sent.String())
}
