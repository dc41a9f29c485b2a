// Package bytereader implements a positioned sequential reader over a fixed
// range of bytes
//
// bytes.Reader gets most of the way there but hides the backing slice and
// couples seeking to the io.Seeker whence dance, while decoding length
// prefixed formats mostly wants "where am I" and "jump there" as plain
// integers. this (tries) to implement a minimal reader wrapper that gives
// the freedom to move around and read from anywhere you want
package bytereader

import "io"

// Reader defines an abstraction for an object that allows reading of binary
// values anywhere within a fixed range
type Reader interface {
	io.Reader
	Bytes() []byte
	Pos() int
	SetPos(int) error
	Len() int
}
