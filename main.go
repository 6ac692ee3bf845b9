package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mustafagonen/ekstreparse/internal/api"
	"github.com/mustafagonen/ekstreparse/internal/config"
	"github.com/mustafagonen/ekstreparse/internal/extractor"
	"github.com/mustafagonen/ekstreparse/internal/models"
	"github.com/mustafagonen/ekstreparse/internal/parser"
	"github.com/mustafagonen/ekstreparse/internal/writer"
)

const version = "1.0.0"

func main() {
	formatFlag := flag.String("format", "csv", "Output format: csv, xlsx, json")
	outputFlag := flag.String("output", "", "Output file path (defaults to input filename with the format's extension)")
	summaryFlag := flag.Bool("summary", true, "Include per-category summary rows in CSV output")
	categoriesFlag := flag.String("categories", "", "YAML file overriding the category keyword tables")
	serveFlag := flag.Bool("serve", false, "Start the HTTP API instead of converting files")
	addrFlag := flag.String("addr", ":8080", "Listen address for --serve")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	helpFlag := flag.Bool("help", false, "Show usage help")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Statement Text to Expense Groups Converter

Parses Turkish bank and credit-card statements (PDF or pre-extracted
text) into transactions grouped by spending category.

Usage:
  ekstreparse [flags] <input.pdf|input.txt> [input2.pdf ...]
  ekstreparse --serve [--addr :8080]

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Convert a statement PDF to CSV
  ekstreparse ekstre.pdf

  # XLSX report with custom categories
  ekstreparse --format=xlsx --categories=categories.yml ekstre.pdf

  # Parse already-extracted text
  ekstreparse --format=json ekstre.txt

  # Run the upload API
  ekstreparse --serve --addr :9000
`)
	}

	flag.Parse()

	if *versionFlag {
		fmt.Printf("ekstreparse v%s\n", version)
		os.Exit(0)
	}

	var classifier *parser.Classifier
	if *categoriesFlag != "" {
		cfg, err := config.Load(*categoriesFlag)
		if err != nil {
			fatalf("Error: %v\n", err)
		}
		classifier = cfg.Classifier()
	}

	if *serveFlag {
		if classifier != nil {
			api.SetClassifier(classifier)
		}
		app := api.NewApp()
		fmt.Printf("Listening on %s\n", *addrFlag)
		if err := app.Listen(*addrFlag); err != nil {
			fatalf("Server error: %v\n", err)
		}
		return
	}

	if *helpFlag || flag.NArg() == 0 {
		flag.Usage()
		os.Exit(0)
	}

	format := strings.ToLower(*formatFlag)
	switch format {
	case "csv", "xlsx", "json":
	default:
		fatalf("Unknown format %q. Supported: csv, xlsx, json\n", *formatFlag)
	}

	for _, inputPath := range flag.Args() {
		if err := processFile(inputPath, format, *outputFlag, *summaryFlag, classifier); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", inputPath, err)
			os.Exit(1)
		}
	}
}

func processFile(inputPath, format, outputPath string, includeSummary bool, classifier *parser.Classifier) error {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("input file not found: %s", inputPath)
	}

	fmt.Printf("Processing: %s\n", inputPath)

	text, err := readInput(inputPath)
	if err != nil {
		return err
	}

	p := &parser.StatementParser{Classifier: classifier}
	result := p.Parse(text)
	if !result.Success {
		return fmt.Errorf("parsing failed: %s", result.Error)
	}

	count := 0
	for _, g := range result.Data {
		count += g.Count
	}
	fmt.Printf("  Found %d transaction(s) in %d group(s)\n", count, len(result.Data))
	if result.StatementTotal != nil {
		fmt.Printf("  Statement total: %.2f TL\n", *result.StatementTotal)
	}
	if count == 0 {
		fmt.Println("  Warning: No transactions found. The statement layout may not match expected patterns.")
	}

	outPath := outputPath
	if outPath == "" {
		base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
		outPath = base + "." + format
	}

	if err := writeResult(outPath, format, includeSummary, result); err != nil {
		return err
	}

	fmt.Printf("  Output: %s\n", outPath)
	fmt.Println("  Done.")
	return nil
}

// readInput accepts either a statement PDF or a plain-text file holding
// already-extracted statement text.
func readInput(inputPath string) (string, error) {
	switch strings.ToLower(filepath.Ext(inputPath)) {
	case ".pdf":
		text, err := extractor.ExtractText(inputPath)
		if err != nil {
			return "", fmt.Errorf("PDF extraction failed: %w", err)
		}
		return text, nil
	case ".txt":
		data, err := os.ReadFile(inputPath)
		if err != nil {
			return "", fmt.Errorf("failed to read text file: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("expected a .pdf or .txt file, got %q", filepath.Ext(inputPath))
	}
}

func writeResult(outPath, format string, includeSummary bool, result *models.ParseResult) error {
	switch format {
	case "csv":
		w := &writer.CSVWriter{IncludeSummary: includeSummary}
		if err := w.WriteToFile(outPath, result); err != nil {
			return fmt.Errorf("CSV write failed: %w", err)
		}
	case "xlsx":
		w := &writer.XLSXWriter{}
		if err := w.WriteToFile(outPath, result); err != nil {
			return fmt.Errorf("XLSX write failed: %w", err)
		}
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("JSON encode failed: %w", err)
		}
		if err := os.WriteFile(outPath, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("JSON write failed: %w", err)
		}
	}
	return nil
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}
