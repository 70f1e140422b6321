// Package cbe is the convenience entry point for the codec: thin
// wrappers around encoder.Encoder and decoder.Decoder for callers who
// don't need direct access to the state machines' lower-level resumable
// Feed/Add* API.
//
// There is deliberately no in-memory document tree here — CBE is a
// schema-less wire format, not a DOM. Callers who need to inspect a
// document either drive decoder.Callbacks themselves or use Dump for a
// one-shot textual rendering.
package cbe

import (
	"github.com/cbe-go/cbe/decoder"
	"github.com/cbe-go/cbe/encoder"
)

// Encoder and Decoder are re-exported so callers only need to import
// this one package for the common case.
type (
	Encoder = encoder.Encoder
	Decoder = decoder.Decoder
	Status  = encoder.Status
)

// NewEncoder creates an Encoder and points it at buf, ready for Add*
// calls. It is equivalent to encoder.New followed by Begin.
func NewEncoder(buf []byte, opts ...encoder.Option) (*Encoder, error) {
	enc, err := encoder.New(opts...)
	if err != nil {
		return nil, err
	}
	enc.Begin(buf)

	return enc, nil
}

// NewDecoder creates a Decoder and points it at cb, ready for Feed
// calls. It is equivalent to decoder.New followed by Begin.
func NewDecoder(cb decoder.Callbacks, opts ...decoder.Option) (*Decoder, error) {
	dec, err := decoder.New(opts...)
	if err != nil {
		return nil, err
	}
	dec.Begin(cb)

	return dec, nil
}

// Decode feeds the whole of data through a fresh Decoder driven by cb in
// one call, returning the number of bytes consumed. It is a convenience
// for callers who have the entire document in memory and don't need
// streaming or resumable decode.
func Decode(data []byte, cb decoder.Callbacks) (int, decoder.Status) {
	dec, err := decoder.New()
	if err != nil {
		return 0, decoder.StatusInvalidArgument
	}
	dec.Begin(cb)

	var consumed int
	st := dec.Feed(data, &consumed)
	if !st.OK() {
		return consumed, st
	}

	return consumed, dec.End()
}
