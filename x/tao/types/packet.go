package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// PayloadHeader carries the application endpoints and optional funds for a
// single payload within a packet. Nonce is a pass-through field reserved for
// application-level sequencing; the engine itself never reads or assigns it.
type PayloadHeader struct {
	ApplicationSource      Address   `json:"application_source"`
	ApplicationDestination Address   `json:"application_destination"`
	Funds                  sdk.Coins `json:"funds,omitempty"`
	Nonce                  *uint64   `json:"nonce,omitempty"`
}

// Payload is one opaque unit of application data plus its endpoint header.
// The data is opaque to the engine; only the destination application parses
// it.
type Payload struct {
	Header PayloadHeader `json:"header"`
	Data   []byte        `json:"data,omitempty"`
}

// PacketHeader carries the client endpoints, sequencing nonce, and absolute
// wall-clock timeout of a packet.
//
// Nonce of 0 means "engine-chosen"; the engine assigns the next value. Any
// other value MUST match the next expected nonce for the connection (see the
// Params.AllowZeroNonce Open Question decision in SPEC_FULL.md).
type PacketHeader struct {
	Source      ClientRef `json:"source"`
	Destination ClientRef `json:"destination"`
	Nonce       uint64    `json:"nonce"`
	Timeout     uint64    `json:"timeout"`
}

// Packet is the unit of the engine's pipeline: a header plus an ordered
// sequence of payloads.
type Packet struct {
	Header   PacketHeader `json:"header"`
	Payloads []Payload    `json:"payloads"`
}

// Connection derives the (source, destination) client pair this packet
// travels over.
func (p Packet) Connection() Connection {
	return Connection{Source: p.Header.Source, Destination: p.Header.Destination}
}

// TotalFunds sums every payload's funds by denom.
func (p Packet) TotalFunds() sdk.Coins {
	total := sdk.NewCoins()
	for _, payload := range p.Payloads {
		total = total.Add(payload.Header.Funds...)
	}
	return total
}
