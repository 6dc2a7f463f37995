package irclib

import "errors"

// Sentinel errors returned by the client.
var (
	// ErrNotConnected indicates Disconnect was called with no connection
	// established or pending.
	ErrNotConnected = errors.New("irclib: not connected")

	// ErrNoAddress indicates Connect was called before any server address
	// was given.
	ErrNoAddress = errors.New("irclib: no server address specified")

	// ErrAlreadyAttached indicates UseConn was called while a connection
	// is already established or pending.
	ErrAlreadyAttached = errors.New("irclib: transport already attached")
)

// errWouldBlock is the internal marker for "no progress possible right now"
// on a non-blocking transport. It never escapes to the caller.
var errWouldBlock = errors.New("operation would block")
