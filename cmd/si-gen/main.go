// Command si-gen generates the prefix kinds and unit aliases from a
// definitions table.
//
//	si-gen -prefix-output pkg/prefix/prefix_gen.go -units-output pkg/units/units_gen.go
//
// Without -defs the table embedded in package definitions is used.
package main

import (
	"cmp"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"

	"github.com/exactsi/si-go/pkg/definitions"
)

const defaultModule = "github.com/exactsi/si-go"

func main() {
	defsPath := flag.String("defs", "", "Path to a definitions YAML (default: embedded SI table)")
	prefixOutput := flag.String("prefix-output", "", "Output path for the generated prefix kinds")
	unitsOutput := flag.String("units-output", "", "Output path for the generated unit aliases")
	module := flag.String("module", defaultModule, "Import path of the module the generated code belongs to")
	verbose := flag.Bool("v", false, "Log debug output")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *prefixOutput == "" && *unitsOutput == "" {
		fmt.Fprintln(os.Stderr, "Usage: si-gen [-defs <path>] [-prefix-output <path>] [-units-output <path>] [-module <path>] [-v]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(logger, *defsPath, *prefixOutput, *unitsOutput, *module); err != nil {
		logger.Error("generation failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, defsPath, prefixOutput, unitsOutput, module string) error {
	table, err := loadTable(defsPath)
	if err != nil {
		return err
	}
	logger.Debug("loaded definitions",
		"source", cmp.Or(defsPath, "embedded"),
		"version", table.Version,
		"units", len(table.Units),
		"prefixes", len(table.Prefixes))

	if prefixOutput != "" {
		code, err := GeneratePrefixes(table)
		if err != nil {
			return fmt.Errorf("generating prefixes: %w", err)
		}
		if err := writeFormatted(prefixOutput, code); err != nil {
			return fmt.Errorf("writing %s: %w", filepath.Base(prefixOutput), err)
		}
		logger.Info("generated", "path", prefixOutput)
	}

	if unitsOutput != "" {
		code, err := GenerateUnits(table, module)
		if err != nil {
			return fmt.Errorf("generating units: %w", err)
		}
		if err := writeFormatted(unitsOutput, code); err != nil {
			return fmt.Errorf("writing %s: %w", filepath.Base(unitsOutput), err)
		}
		logger.Info("generated", "path", unitsOutput)
	}

	return nil
}

func loadTable(path string) (*definitions.Table, error) {
	if path == "" {
		return definitions.Default()
	}
	table, err := definitions.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading definitions: %w", err)
	}
	return table, nil
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Write unformatted so you can debug the generator output
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, formatted, 0o644)
}
