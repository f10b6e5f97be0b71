package keeper

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"

	errorsmod "cosmossdk.io/errors"

	"github.com/rnbguy/ibc-eureka-tao/x/tao/types"
)

// commitmentDigest hashes the canonical JSON encoding of a packet, the value
// ReceivePacket asks the source light client to prove membership of. The
// engine's own sent/received stores keep the packet itself, not this digest;
// hashing keeps the proved value constant size regardless of payload count.
func commitmentDigest(packet types.Packet) ([]byte, error) {
	bz, err := json.Marshal(packet)
	if err != nil {
		return nil, errorsmod.Wrap(err, "marshal packet for commitment")
	}
	sum := sha256.Sum256(bz)
	return sum[:], nil
}

// commitmentDirection names which half of a connection's commitment space a
// nonce belongs to, so the sent and received commitment spaces for the same
// connection and nonce never collide.
type commitmentDirection string

const (
	directionSent     commitmentDirection = "sent"
	directionReceived commitmentDirection = "received"
)

// commitmentPath renders the (connection, direction, nonce) triple the
// original contracts serialize as the map key for a packet commitment.
func commitmentPath(connKey string, direction commitmentDirection, nonce uint64) string {
	return fmt.Sprintf("%s/%s/%d", connKey, direction, nonce)
}
