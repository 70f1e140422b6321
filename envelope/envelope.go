// Package envelope wraps a fully encoded CBE document (the output of
// encoder.Encoder.End) in an optional at-rest container: a small fixed
// header naming the compression algorithm, the compressed payload, and
// an optional trailing xxHash64 checksum of the original document.
//
// The CBE wire format itself has no header and needs none — a raw tag
// stream is self-delimiting by construction. This package exists purely
// for callers who want to store or transmit documents compressed and/or
// checksummed, the way cmd/cbedump does.
package envelope

import (
	"encoding/binary"

	"github.com/cbe-go/cbe"
	"github.com/cbe-go/cbe/compress"
	"github.com/cbe-go/cbe/errs"
	"github.com/cbe-go/cbe/format"
	"github.com/cbe-go/cbe/internal/digest"
	"github.com/cbe-go/cbe/internal/pool"
)

// Magic identifies an envelope-wrapped document. It is not part of the
// CBE grammar; a raw CBE document never begins with these four bytes
// unless the very unlikely tag sequence happens to collide, which
// Unwrap does not attempt to disambiguate — callers choose envelope
// framing explicitly.
var Magic = [4]byte{'C', 'B', 'E', '1'}

// HeaderSize is the fixed size, in bytes, of the envelope header:
// 4-byte magic, 2-byte Flags, 4-byte little-endian payload length.
const HeaderSize = 4 + 2 + 4

// ChecksumSize is the size, in bytes, of the trailing xxHash64 checksum
// footer present when Flags.HasChecksum is set.
const ChecksumSize = 8

// Option configures Wrap.
type Option func(*options)

type options struct {
	compression format.CompressionType
	checksum    bool
	log         cbe.Logger
}

// WithCompression selects the compression algorithm applied to the
// document payload. The default, if no Option is given, is
// format.CompressionNone.
func WithCompression(c format.CompressionType) Option {
	return func(o *options) { o.compression = c }
}

// WithChecksum appends an xxHash64 checksum of the original,
// uncompressed document after the payload, verified by Unwrap.
func WithChecksum() Option {
	return func(o *options) { o.checksum = true }
}

// WithLogger attaches a Logger that receives a Debugf line describing the
// chosen compression/checksum settings on Wrap, and a Warnf line if Unwrap
// rejects a document. The default, if no Option is given, discards both.
func WithLogger(l cbe.Logger) Option {
	return func(o *options) { o.log = l }
}

// Wrap compresses doc per the given options and returns it framed with
// an envelope header (and trailing checksum, if requested).
func Wrap(doc []byte, opts ...Option) ([]byte, error) {
	cfg := options{compression: format.CompressionNone, log: cbe.NopLogger{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	codec, err := compress.CreateCodec(cfg.compression, "envelope")
	if err != nil {
		return nil, err
	}

	payload, err := codec.Compress(doc)
	if err != nil {
		return nil, err
	}

	cfg.log.Debugf("envelope: wrapping %d bytes as %d (compression=%s checksum=%v)",
		len(doc), len(payload), cfg.compression, cfg.checksum)

	flags := newFlags(cfg.compression, cfg.checksum)

	out := pool.GetDocumentBuffer()
	defer pool.PutDocumentBuffer(out)

	var header [HeaderSize]byte
	copy(header[0:4], Magic[:])
	binary.LittleEndian.PutUint16(header[4:6], uint16(flags))
	binary.LittleEndian.PutUint32(header[6:10], uint32(len(payload)))

	_, _ = out.Write(header[:])
	_, _ = out.Write(payload)

	if cfg.checksum {
		var sum [ChecksumSize]byte
		binary.LittleEndian.PutUint64(sum[:], digest.Checksum(doc))
		_, _ = out.Write(sum[:])
	}

	result := make([]byte, out.Len())
	copy(result, out.Bytes())

	return result, nil
}

// Unwrap parses an envelope header from data, decompresses the payload,
// and verifies the trailing checksum if the header's Flags say one is
// present. It returns the original document. A WithLogger Option may be
// given to receive a Warnf line on rejection; other Wrap-only options
// are accepted but ignored.
func Unwrap(data []byte, opts ...Option) ([]byte, error) {
	cfg := options{log: cbe.NopLogger{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(data) < HeaderSize {
		cfg.log.Warnf("envelope: %d bytes shorter than the %d-byte header", len(data), HeaderSize)
		return nil, errs.ErrEnvelopeTooShort
	}
	if [4]byte(data[0:4]) != Magic {
		cfg.log.Warnf("envelope: bad magic %q", data[0:4])
		return nil, errs.ErrInvalidEnvelopeMagic
	}

	flags := Flags(binary.LittleEndian.Uint16(data[4:6]))
	if !flags.Valid() {
		cfg.log.Warnf("envelope: invalid flags %#04x", uint16(flags))
		return nil, errs.ErrInvalidEnvelopeFlags
	}

	payloadLen := binary.LittleEndian.Uint32(data[6:10])
	rest := data[HeaderSize:]

	want := int(payloadLen)
	if flags.HasChecksum() {
		want += ChecksumSize
	}
	if len(rest) < want {
		cfg.log.Warnf("envelope: payload shorter than declared length %d", payloadLen)
		return nil, errs.ErrEnvelopeTooShort
	}

	payload := rest[:payloadLen]

	codec, err := compress.CreateCodec(flags.Compression(), "envelope")
	if err != nil {
		return nil, err
	}

	doc, err := codec.Decompress(payload)
	if err != nil {
		cfg.log.Warnf("envelope: %s decompression failed: %v", flags.Compression(), err)
		return nil, err
	}

	if flags.HasChecksum() {
		sum := binary.LittleEndian.Uint64(rest[payloadLen : payloadLen+ChecksumSize])
		if digest.Checksum(doc) != sum {
			cfg.log.Warnf("envelope: checksum mismatch")
			return nil, errs.ErrChecksumMismatch
		}
	}

	return doc, nil
}
