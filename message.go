package irclib

import "strings"

// Message is one IRC protocol line broken into its fields.
//
// Params holds the middle parameters in wire order; if the line carried a
// trailing parameter it is the last element and may contain spaces.
type Message struct {
	Prefix  string   // origin of the message, without the leading ':'; empty if absent
	Command string   // command token or three-digit numeric
	Params  []string
}

// ParseMessage tokenizes a single protocol line (CRLF already stripped).
//
// Grammar: [':' prefix ' '] command [' ' middle]* [' :' trailing]. The
// trailing parameter is everything after the first ':' of the parameter
// section and is never split further, so colons inside it survive. Empty
// middle tokens produced by runs of spaces are dropped, and an empty
// trailing parameter is dropped as well.
func ParseMessage(line string) *Message {
	m := &Message{}
	rest := line

	if strings.HasPrefix(rest, ":") {
		if i := strings.IndexByte(rest, ' '); i >= 0 {
			m.Prefix = rest[1:i]
			rest = rest[i+1:]
		} else {
			// the line is nothing but a prefix
			m.Prefix = rest[1:]
			rest = ""
		}
	}

	if i := strings.IndexByte(rest, ' '); i >= 0 {
		m.Command = rest[:i]
		rest = rest[i+1:]
	} else {
		m.Command = rest
		rest = ""
	}
	if rest == "" {
		return m
	}

	trailing := ""
	hasTrailing := false
	if i := strings.IndexByte(rest, ':'); i >= 0 {
		trailing = rest[i+1:]
		hasTrailing = true
		rest = rest[:i]
	}

	for _, p := range strings.Split(rest, " ") {
		if p != "" {
			m.Params = append(m.Params, p)
		}
	}
	if hasTrailing && trailing != "" {
		m.Params = append(m.Params, trailing)
	}
	return m
}
