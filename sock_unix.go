//go:build unix

package irclib

import (
	"io"
	"net"
	"os"

	"golang.org/x/sys/unix"
)

// sockFD is a non-blocking TCP socket held as a raw descriptor. Keeping the
// descriptor out of the net package is what makes the two-phase connect and
// the EAGAIN-driven read/write loops possible without goroutines.
type sockFD struct {
	fd int
	sa unix.Sockaddr
}

// dialSock opens a non-blocking socket for addr and initiates the connect.
// The returned bool is true when the connect completed synchronously, which
// the kernel is allowed to do (loopback typically does not).
func dialSock(addr string) (*sockFD, bool, error) {
	sa, family, err := resolveSockaddr(addr)
	if err != nil {
		return nil, false, err
	}

	fd, err := unix.Socket(family, unix.SOCK_STREAM, 0)
	if err != nil {
		return nil, false, os.NewSyscallError("socket", err)
	}
	if err := unix.SetNonblock(fd, true); err != nil {
		unix.Close(fd)
		return nil, false, os.NewSyscallError("setnonblock", err)
	}
	unix.CloseOnExec(fd)

	s := &sockFD{fd: fd, sa: sa}
	switch err := unix.Connect(fd, sa); err {
	case nil:
		return s, true, nil
	case unix.EINPROGRESS, unix.EINTR:
		return s, false, nil
	default:
		unix.Close(fd)
		return nil, false, os.NewSyscallError("connect", err)
	}
}

// finishConnect probes a pending connect by reissuing it: EALREADY means
// still in flight, EISCONN means done. A real error here is the outcome of
// the handshake (ECONNREFUSED and friends).
func (s *sockFD) finishConnect() (bool, error) {
	switch err := unix.Connect(s.fd, s.sa); err {
	case nil, unix.EISCONN:
		return true, nil
	case unix.EALREADY, unix.EINPROGRESS, unix.EINTR:
		return false, nil
	default:
		return false, os.NewSyscallError("connect", err)
	}
}

func (s *sockFD) Read(p []byte) (int, error) {
	n, err := unix.Read(s.fd, p)
	if err != nil {
		if err == unix.EAGAIN || err == unix.EWOULDBLOCK || err == unix.EINTR {
			return 0, errWouldBlock
		}
		return 0, os.NewSyscallError("read", err)
	}
	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}

func (s *sockFD) Write(p []byte) (int, error) {
	n, err := unix.Write(s.fd, p)
	if err != nil {
		if err == unix.EAGAIN || err == unix.EWOULDBLOCK || err == unix.EINTR {
			return 0, errWouldBlock
		}
		return 0, os.NewSyscallError("write", err)
	}
	return n, nil
}

// Close restores blocking mode before closing so the close cannot return
// early with unflushed kernel buffers.
func (s *sockFD) Close() error {
	unix.SetNonblock(s.fd, false)
	return os.NewSyscallError("close", unix.Close(s.fd))
}

// resolveSockaddr turns "host:port" into a connectable sockaddr, preferring
// IPv4. Name resolution goes through the resolver and may block; it happens
// once, on the first Connect call for an address.
func resolveSockaddr(addr string) (unix.Sockaddr, int, error) {
	host, service, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, 0, err
	}
	port, err := net.LookupPort("tcp", service)
	if err != nil {
		return nil, 0, err
	}
	ips, err := net.LookupIP(host)
	if err != nil {
		return nil, 0, err
	}

	for _, ip := range ips {
		if ip4 := ip.To4(); ip4 != nil {
			sa := &unix.SockaddrInet4{Port: port}
			copy(sa.Addr[:], ip4)
			return sa, unix.AF_INET, nil
		}
	}
	for _, ip := range ips {
		if ip16 := ip.To16(); ip16 != nil {
			sa := &unix.SockaddrInet6{Port: port}
			copy(sa.Addr[:], ip16)
			return sa, unix.AF_INET6, nil
		}
	}
	return nil, 0, &net.AddrError{Err: "no usable address", Addr: addr}
}
