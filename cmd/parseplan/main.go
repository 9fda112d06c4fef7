// Command parseplan extracts a trip plan from a markdown file (or stdin) and
// writes it as JSON, CSV or an Excel workbook.
// Usage: go run ./cmd/parseplan [-format json|csv|xlsx] [-o out] [file.md]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"wanderplan/internal/export"
	"wanderplan/internal/service"
	"wanderplan/internal/tripplan"
)

const defaultMaxBytes = 512 * 1024

func main() {
	format := flag.String("format", "json", "output format: json, csv or xlsx")
	outPath := flag.String("o", "", "output file (default stdout)")
	maxBytes := flag.Int64("max-bytes", defaultMaxBytes, "reject documents larger than this; 0 disables the limit")
	flag.Parse()

	if err := run(flag.Arg(0), *format, *outPath, *maxBytes); err != nil {
		log.Fatal(err)
	}
}

func run(inPath, format, outPath string, maxBytes int64) error {
	encode, err := encoderFor(format)
	if err != nil {
		return err
	}

	in := io.Reader(os.Stdin)
	if inPath != "" && inPath != "-" {
		f, err := os.Open(inPath)
		if err != nil {
			return fmt.Errorf("open document: %w", err)
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	raw, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}
	document := string(raw)
	if err := service.ValidateDocument(document, maxBytes); err != nil {
		return err
	}

	plan := tripplan.Parse(document)
	if outPath == "" {
		return encode(os.Stdout, plan)
	}
	return writeFile(outPath, func(w io.Writer) error { return encode(w, plan) })
}

type encoder func(w io.Writer, plan *tripplan.TripPlan) error

func encoderFor(format string) (encoder, error) {
	if format == "json" {
		return func(w io.Writer, plan *tripplan.TripPlan) error {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(plan)
		}, nil
	}

	exportFormat, err := export.ParseFormat(format)
	if err != nil {
		return nil, fmt.Errorf("format %q: %w", format, err)
	}
	return func(w io.Writer, plan *tripplan.TripPlan) error {
		return export.Write(w, exportFormat, plan)
	}, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}
