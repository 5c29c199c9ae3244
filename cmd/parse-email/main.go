// parse-email is a debug tool: it runs the extraction engine over one
// saved email body file and prints the result.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joseph-ayodele/orders-tracker/internal/extract"
	"github.com/joseph-ayodele/orders-tracker/internal/htmltext"
)

func main() {
	var (
		file      = flag.String("file", "", "path to a saved email body (.html or .txt) (required)")
		dumpLines = flag.Bool("lines", false, "print the normalized text lines instead of extracting")
		rules     = flag.String("rules", "", "JSON extraction-rules override file")
		window    = flag.Int("window", 2, "bounded scan window after a marker line")
	)
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Error: --file is required")
		os.Exit(1)
	}
	body, err := os.ReadFile(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: read %s: %v\n", *file, err)
		os.Exit(1)
	}

	if *dumpLines {
		for _, line := range htmltext.Lines(string(body)) {
			fmt.Println(line)
		}
		return
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	extractRules := extract.DefaultRules(*window)
	if *rules != "" {
		loaded, err := extract.LoadRules(*rules, *window)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: load rules: %v\n", err)
			os.Exit(1)
		}
		extractRules = loaded
	}

	parser := extract.NewParser(logger, extractRules)
	rec, err := parser.Parse(string(body), *file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rejected: %v\n", err)
		os.Exit(2)
	}
	out, _ := json.MarshalIndent(rec, "", "  ")
	fmt.Println(string(out))
}
