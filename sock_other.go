//go:build !unix

package irclib

import "errors"

// Direct TCP dialing needs raw non-blocking sockets, which this build does
// not provide. UseConn still works with any net.Conn.

var errNoRawSockets = errors.New("irclib: raw TCP sockets unsupported on this platform, attach a net.Conn with UseConn")

type sockFD struct{}

func dialSock(addr string) (*sockFD, bool, error) { return nil, false, errNoRawSockets }

func (s *sockFD) finishConnect() (bool, error) { return false, errNoRawSockets }

func (s *sockFD) Read(p []byte) (int, error) { return 0, errNoRawSockets }

func (s *sockFD) Write(p []byte) (int, error) { return 0, errNoRawSockets }

func (s *sockFD) Close() error { return nil }
