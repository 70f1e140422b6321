// Command cbedump is a thin diagnostic CLI around the cbe package: it
// dumps a CBE document (optionally envelope-wrapped) as an indented
// textual tree, and can wrap/unwrap documents with compression and a
// checksum footer for at-rest storage.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cbe-go/cbe"
	"github.com/cbe-go/cbe/envelope"
	"github.com/cbe-go/cbe/format"
)

func main() {
	var (
		wrap        = flag.Bool("wrap", false, "wrap stdin as a raw CBE document into an envelope on stdout")
		unwrap      = flag.Bool("unwrap", false, "unwrap an enveloped document from stdin, writing the raw document to stdout")
		compression = flag.String("compress", "none", "compression algorithm for -wrap: none, zstd, s2, lz4")
		checksum    = flag.Bool("checksum", false, "append an xxHash64 checksum when -wrap is set")
		debug       = flag.Bool("debug", false, "log envelope wrap/unwrap details to stderr")
	)
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("cbedump: ")

	logger := cbe.Logger(cbe.NopLogger{})
	if *debug {
		stderr := log.New(os.Stderr, "cbedump: ", 0)
		logger = cbe.StdLogger{Printf: stderr.Printf}
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatalf("read stdin: %v", err)
	}

	switch {
	case *wrap:
		runWrap(data, *compression, *checksum, logger)
	case *unwrap:
		runUnwrap(data, logger)
	default:
		runDump(data)
	}
}

func runWrap(data []byte, compression string, checksum bool, logger cbe.Logger) {
	c, err := parseCompression(compression)
	if err != nil {
		log.Fatal(err)
	}

	opts := []envelope.Option{envelope.WithCompression(c), envelope.WithLogger(logger)}
	if checksum {
		opts = append(opts, envelope.WithChecksum())
	}

	out, err := envelope.Wrap(data, opts...)
	if err != nil {
		log.Fatalf("wrap: %v", err)
	}
	if _, err := os.Stdout.Write(out); err != nil {
		log.Fatalf("write stdout: %v", err)
	}
}

func runUnwrap(data []byte, logger cbe.Logger) {
	doc, err := envelope.Unwrap(data, envelope.WithLogger(logger))
	if err != nil {
		log.Fatalf("unwrap: %v", err)
	}
	if _, err := os.Stdout.Write(doc); err != nil {
		log.Fatalf("write stdout: %v", err)
	}
}

func runDump(data []byte) {
	if err := cbe.Dump(os.Stdout, data); err != nil {
		log.Fatalf("decode: %v", err)
	}
}

func parseCompression(s string) (format.CompressionType, error) {
	switch s {
	case "none":
		return format.CompressionNone, nil
	case "zstd":
		return format.CompressionZstd, nil
	case "s2":
		return format.CompressionS2, nil
	case "lz4":
		return format.CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression algorithm %q", s)
	}
}
