package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	carlaserde "github.com/Eclipse-SDV-Hackathon-Chapter-Three/carla-data-serde"
	"github.com/Eclipse-SDV-Hackathon-Chapter-Three/carla-data-serde/codec"
	"github.com/Eclipse-SDV-Hackathon-Chapter-Three/carla-data-serde/compress"
	"github.com/Eclipse-SDV-Hackathon-Chapter-Three/carla-data-serde/serde"
)

func main() {
	var (
		inFile      = flag.String("in", "", "Path to a recording of length-framed sensor records")
		kind        = flag.String("kind", "", "Sensor kind: image, imu, lane, radar")
		codecName   = flag.String("codec", "json", "Wire codec: json, cbor, msgpack")
		compName    = flag.String("compress", "", "Payload compression: gzip, lz4, snappy, zlib")
		full        = flag.Bool("full", false, "Render full payloads instead of bounded previews")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Log decode failures")
	)
	flag.Parse()

	if *inFile == "" || *kind == "" {
		fmt.Fprintln(os.Stderr, "Usage: sensorview -in <recording> -kind <image|imu|lane|radar> [-codec json] [-compress gzip] [-full]")
		fmt.Fprintln(os.Stderr, "       sensorview -in <recording> -kind <kind> -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		serde.SetLogger(logger)
	}

	c, err := pickCodec(*codecName, *compName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	decode, err := pickDecoder(*kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(*inFile, *kind, c, decode); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*inFile, c, decode, *full); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func pickCodec(codecName, compName string) (carlaserde.Codec, error) {
	c, ok := codec.ByName(codecName)
	if !ok {
		return nil, fmt.Errorf("unknown codec %q", codecName)
	}
	if compName == "" {
		return c, nil
	}

	var comp carlaserde.Compressor
	switch compName {
	case "gzip":
		comp = compress.Gzip{}
	case "lz4":
		comp = compress.LZ4{}
	case "snappy":
		comp = compress.Snappy{}
	case "zlib":
		comp = compress.Zlib{}
	default:
		return nil, fmt.Errorf("unknown compression %q", compName)
	}
	return codec.Compressed{Codec: c, Compressor: comp}, nil
}

// pickDecoder maps a sensor kind to its decode entry point. The adapters all
// implement fmt.Formatter, so the caller renders them uniformly.
func pickDecoder(kind string) (func(carlaserde.Codec, []byte) (any, error), error) {
	switch kind {
	case "image":
		return func(c carlaserde.Codec, data []byte) (any, error) {
			return serde.DecodeImage(c, data)
		}, nil
	case "imu":
		return func(c carlaserde.Codec, data []byte) (any, error) {
			return serde.DecodeIMU(c, data)
		}, nil
	case "lane":
		return func(c carlaserde.Codec, data []byte) (any, error) {
			return serde.DecodeLaneInvasion(c, data)
		}, nil
	case "radar":
		return func(c carlaserde.Codec, data []byte) (any, error) {
			return serde.DecodeRadar(c, data)
		}, nil
	default:
		return nil, fmt.Errorf("unknown sensor kind %q", kind)
	}
}

// readRecords splits a recording into payloads. Each record is a big-endian
// u32 byte length followed by that many payload bytes.
func readRecords(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open recording: %w", err)
	}
	defer f.Close()

	var records [][]byte
	var header [4]byte
	for {
		if _, err := io.ReadFull(f, header[:]); err != nil {
			if err == io.EOF {
				return records, nil
			}
			return nil, fmt.Errorf("record %d header: %w", len(records), err)
		}
		payload := make([]byte, binary.BigEndian.Uint32(header[:]))
		if _, err := io.ReadFull(f, payload); err != nil {
			return nil, fmt.Errorf("record %d payload: %w", len(records), err)
		}
		records = append(records, payload)
	}
}

func run(inFile string, c carlaserde.Codec, decode func(carlaserde.Codec, []byte) (any, error), full bool) error {
	records, err := readRecords(inFile)
	if err != nil {
		return err
	}

	fmt.Printf("Recording: %s\n", inFile)
	fmt.Printf("Codec: %s\n", c.Name())
	fmt.Printf("Records: %d\n", len(records))

	failed := 0
	for i, payload := range records {
		ev, err := decode(c, payload)
		if err != nil {
			failed++
			fmt.Printf("\n--- record %d (%d bytes) ---\n", i, len(payload))
			fmt.Printf("decode failed: %v\n", err)
			continue
		}
		fmt.Printf("\n--- record %d (%d bytes) ---\n", i, len(payload))
		if full {
			fmt.Printf("%+v\n", ev)
		} else {
			fmt.Printf("%v\n", ev)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d records failed to decode", failed, len(records))
	}
	return nil
}
