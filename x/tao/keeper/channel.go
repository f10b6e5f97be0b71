package keeper

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/rnbguy/ibc-eureka-tao/x/tao/types"
)

// ConnectionKey renders a Connection as the canonical, injective byte
// encoding used as the commitment-store map key.
//
// spec.md's design notes flag that the original Rust contracts used a
// debug-style rendering (format!("{:?}-{:?}", ...)) as their map key and call
// that out as unsafe for a production port: two distinct client refs could in
// principle render identically under Debug. This encoding instead
// length-prefixes every variable-length component before concatenating, so
// no two distinct connections can ever collide.
func ConnectionKey(c types.Connection) string {
	buf := make([]byte, 0, 64)
	buf = appendClientRef(buf, c.Source)
	buf = appendClientRef(buf, c.Destination)
	return hex.EncodeToString(buf)
}

func appendClientRef(buf []byte, ref types.ClientRef) []byte {
	buf = appendLenPrefixed(buf, []byte(ref.Address))
	buf = appendLenPrefixed(buf, ref.Prefix)
	return buf
}

func appendLenPrefixed(buf []byte, b []byte) []byte {
	var lenBuf [8]byte
	binary.BigEndian.PutUint64(lenBuf[:], uint64(len(b)))
	buf = append(buf, lenBuf[:]...)
	buf = append(buf, b...)
	return buf
}

// ChannelKey renders a Channel the same way, for callers that key a map by
// the full application-to-application addressing unit rather than by the
// coarser client-pair Connection.
func ChannelKey(c types.Channel) string {
	buf := make([]byte, 0, 96)
	buf = appendClientRef(buf, c.Source.Client)
	buf = appendLenPrefixed(buf, []byte(c.Source.Application))
	buf = appendClientRef(buf, c.Destination.Client)
	buf = appendLenPrefixed(buf, []byte(c.Destination.Application))
	buf = appendLenPrefixed(buf, c.Prefix)
	return hex.EncodeToString(buf)
}
