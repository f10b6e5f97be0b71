package types

// ConnectionState is the persisted per-connection commitment state exported
// at genesis time: the sent/received nonce counters and every recorded
// packet, keyed by nonce.
type ConnectionState struct {
	Connection     Connection         `json:"connection"`
	SentNonce      uint64             `json:"sent_nonce"`
	SentPackets    map[uint64]Packet  `json:"sent_packets,omitempty"`
	ReceivedNonce  uint64             `json:"received_nonce"`
	ReceivedPackets map[uint64]Packet `json:"received_packets,omitempty"`
}

// GenesisState is the module's exported state: parameters, the registry, and
// every connection's commitment state.
type GenesisState struct {
	Params      Params            `json:"params"`
	Registry    []Address         `json:"registry,omitempty"`
	Connections []ConnectionState `json:"connections,omitempty"`
}

// DefaultGenesisState returns genesis state with default parameters and an
// empty registry/commitment store, matching
// x/pse/types/genesis.go's DefaultGenesisState shape.
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
	}
}

// Validate validates genesis parameters.
func (m *GenesisState) Validate() error {
	return m.Params.ValidateBasic()
}
