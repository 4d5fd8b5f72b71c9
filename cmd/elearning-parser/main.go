// Command elearning-parser is a thin demonstration CLI over the core
// parser library (outside the core package scope of spec §1, wired
// here per SPEC_FULL.md's Domain Stack): parse a package root, print
// its extracted metadata and validation findings, with a --strict flag
// mirroring Options.StrictMode and a --validate-xsd flag mirroring the
// opt-in SCORM 2004 schema pass.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/elearning-parser/internal/config"
	"github.com/standardbeagle/elearning-parser/internal/logging"
	"github.com/standardbeagle/elearning-parser/internal/parser"
	"github.com/standardbeagle/elearning-parser/pkg/pathutil"
)

var log = logging.Default()

func main() {
	app := &cli.App{
		Name:  "elearning-parser",
		Usage: "Parse and validate SCORM/AICC/cmi5/xAPI e-learning packages",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "strict", Usage: "Fail on any validation error instead of returning findings"},
			&cli.BoolFlag{Name: "validate-xsd", Usage: "Run the opt-in SCORM 2004 XSD schema validator"},
			&cli.BoolFlag{Name: "json", Aliases: []string{"j"}, Usage: "Output as JSON"},
			&cli.IntFlag{Name: "concurrency", Aliases: []string{"c"}, Usage: "Parallel workers when given multiple paths", Value: 4},
		},
		Action: runParse,
	}

	if err := app.Run(os.Args); err != nil {
		log.Errorf("main", "%v", err)
		os.Exit(1)
	}
}

func runParse(c *cli.Context) error {
	paths := c.Args().Slice()
	if len(paths) == 0 {
		return cli.Exit("usage: elearning-parser [flags] <package-path> [package-path...]", 1)
	}

	cfg, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	options := parser.Options{
		StrictMode:               c.Bool("strict") || cfg.StrictMode,
		ValidateXMLAgainstSchema: c.Bool("validate-xsd") || cfg.ValidateXMLAgainstSchema,
	}

	items, err := parser.ParseAll(context.Background(), paths, options, c.Int("concurrency"))
	if err != nil {
		return fmt.Errorf("batch parse failed: %w", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}
	for i := range items {
		items[i].Path = pathutil.ToRelative(items[i].Path, cwd)
	}

	exitCode := 0
	for _, item := range items {
		if item.Err != nil {
			exitCode = 1
		} else if item.Result.Validation.HasErrors() {
			exitCode = 1
		}
		if c.Bool("json") {
			printJSON(item)
			continue
		}
		printHuman(item)
	}

	if exitCode != 0 {
		return cli.Exit("", exitCode)
	}
	return nil
}

func printJSON(item parser.BatchItem) {
	type jsonItem struct {
		Path       string `json:"path"`
		ModuleType string `json:"moduleType,omitempty"`
		Error      string `json:"error,omitempty"`
		Identifier string `json:"identifier,omitempty"`
		Title      string `json:"title,omitempty"`
		HasErrors  bool   `json:"hasErrors"`
	}
	out := jsonItem{Path: item.Path, ModuleType: string(item.ModuleType)}
	if item.Err != nil {
		out.Error = item.Err.Error()
	} else {
		out.Identifier = item.Result.Metadata.Identifier
		out.Title = item.Result.Metadata.Title
		out.HasErrors = item.Result.Validation.HasErrors()
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(out)
}

func printHuman(item parser.BatchItem) {
	if item.Err != nil {
		fmt.Printf("%s: FAILED: %v\n", item.Path, item.Err)
		return
	}
	fmt.Printf("%s: %s %q (%s)\n", item.Path, item.Result.Metadata.Identifier, item.Result.Metadata.Title, item.ModuleType)
	if item.Result.Validation.HasErrors() {
		fmt.Print(item.Result.Validation.FormatErrors())
	}
}
