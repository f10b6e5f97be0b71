package types

import "cosmossdk.io/collections"

const (
	// ModuleName defines the module name used both as the error codespace and
	// as the collections schema name.
	ModuleName = "tao"

	// StoreKey defines the primary module store key.
	StoreKey = ModuleName
)

// KVStore key prefixes, one byte each, mirroring the single-byte prefixes the
// original Rust contract used for its cw-storage-plus/cw-storey containers
// (tao/src/lib.rs: Map::new(b'A') .. Map::new(b'D')).
var (
	ParamsKey          = collections.NewPrefix(0)
	SentNonceKey       = collections.NewPrefix(1)
	SentPacketKey      = collections.NewPrefix(2)
	ReceivedNonceKey   = collections.NewPrefix(3)
	ReceivedPacketKey  = collections.NewPrefix(4)
	PacketStatusKey    = collections.NewPrefix(5)
	RegistryKey        = collections.NewPrefix(6)
	PendingDeployKey   = collections.NewPrefix(7)
	NextReplyIDKey     = collections.NewPrefix(8)
)

// PacketKey builds the (connection, nonce) pair key used for both the sent
// and received packet maps.
func PacketKey(connection string, nonce uint64) collections.Pair[string, uint64] {
	return collections.Join(connection, nonce)
}
