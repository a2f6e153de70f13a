/*

Package repparser implements Rocket League replay parsing.

The package is safe for concurrent use across distinct replays; decoding a
single replay is inherently sequential, since the replication decoder's
live-actor map and bit cursor carry state across frames.

Information sources:

tfausak/aftershock, a Rust replay decoder this package's wire-level
understanding is grounded on.

*/
package repparser

import (
	"errors"
	"log"
	"os"
	"runtime"

	"github.com/rlreplay/rlrep/rep"
)

const (
	// Version is a Semver2 compatible version of the parser.
	Version = "v0.1.0"
)

// ErrParsing indicates that an unexpected error occurred, which may be due
// to a corrupt/invalid replay file or an implementation bug.
var ErrParsing = errors.New("parsing")

// Config holds parser configuration.
type Config struct {
	// Frames tells if the frame stream is to be decoded. Skipping it
	// makes for a much faster header-only parse.
	Frames bool

	// Lists tells if the bulky, rarely-consumed content lists (messages,
	// marks, packages) are retained in the returned Replay.
	Lists bool

	// Debug tells if debug and replay internal binaries is to be
	// retained in the returned Replay.
	Debug bool

	_ struct{} // To prevent unkeyed literals
}

// Parse parses a full Rocket League replay from the given byte slice.
func Parse(repData []byte) (*rep.Replay, error) {
	return ParseConfig(repData, Config{Frames: true, Lists: true})
}

// ParseConfig parses a Rocket League replay from the given byte slice
// based on the given parser configuration.
func ParseConfig(repData []byte, cfg Config) (*rep.Replay, error) {
	return parseProtected(repData, cfg)
}

// ParseFile parses all sections from a replay file.
func ParseFile(name string) (*rep.Replay, error) {
	return ParseFileConfig(name, Config{Frames: true, Lists: true})
}

// ParseFileConfig parses a replay file based on the given parser
// configuration.
func ParseFileConfig(name string, cfg Config) (*rep.Replay, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data, cfg)
}

// parseProtected calls parse(), but protects the function call from
// panics (the only way this package signals a decode failure), in which
// case it returns the recovered *Error, or ErrParsing for anything else.
func parseProtected(repData []byte, cfg Config) (r *rep.Replay, err error) {
	// Input is untrusted data, protect the parsing logic.
	// It also protects against implementation bugs.
	defer func() {
		if v := recover(); v != nil {
			if e, ok := v.(*Error); ok {
				err = e
				return
			}
			log.Printf("Parsing error: %v", v)
			buf := make([]byte, 2000)
			n := runtime.Stack(buf, false)
			log.Printf("Stack: %s", buf[:n])
			err = ErrParsing
		}
	}()

	return parse(repData, cfg)
}

// parse reads the two top-level sections of a replay: a size-and-CRC
// framed Header, then a size-and-CRC framed Content.
func parse(repData []byte, cfg Config) (*rep.Replay, error) {
	r := newByteReader(repData)

	headerSize := r.GetUint32()
	headerCRC := r.GetUint32()
	headerBytes := r.GetBytes(headerSize)
	checkCRC32(headerBytes, headerCRC)

	header := decodeHeader(newByteReader(headerBytes))

	contentSize := r.GetUint32()
	contentCRC := r.GetUint32()
	contentBytes := r.GetBytes(contentSize)
	checkCRC32(contentBytes, contentCRC)

	content := decodeContent(newByteReader(contentBytes), header, cfg)

	replay := &rep.Replay{
		Header:  &rep.Section[*rep.Header]{Size: headerSize, CRC: headerCRC, Value: header},
		Content: &rep.Section[*rep.Content]{Size: contentSize, CRC: contentCRC, Value: content},
	}

	if cfg.Debug {
		replay.Header.Value.Debug = &rep.HeaderDebug{Data: headerBytes}
	}

	return replay, nil
}
