package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/term"

	schema "github.com/lukateras/go-concordium-schema"
	"github.com/lukateras/go-concordium-schema/embedded"
)

func main() {
	var (
		schemaFile   = flag.String("schema", "", "Path to raw schema bytes")
		moduleFile   = flag.String("module", "", "Path to contract wasm module with embedded schema")
		contractName = flag.String("contract", "", "Show a single contract (optional)")
		maxDepth     = flag.Int("max-depth", schema.DefaultMaxDepth, "Type nesting bound")
		interactive  = flag.Bool("i", false, "Interactive mode with TUI")
		verbose      = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if (*schemaFile == "") == (*moduleFile == "") {
		fmt.Fprintln(os.Stderr, "Usage: inspect -schema <file> [-contract name]")
		fmt.Fprintln(os.Stderr, "       inspect -module <file.wasm> [-contract name]")
		fmt.Fprintln(os.Stderr, "       inspect -schema <file> -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		schema.SetLogger(logger)
		embedded.SetLogger(logger)
	}

	mod, source, err := load(*schemaFile, *moduleFile, *maxDepth)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(source, mod); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := dump(mod, source, *contractName); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func load(schemaFile, moduleFile string, maxDepth int) (*schema.Module, string, error) {
	opts := []schema.Option{schema.WithMaxDepth(maxDepth)}

	if moduleFile != "" {
		data, err := os.ReadFile(moduleFile)
		if err != nil {
			return nil, "", fmt.Errorf("read file: %w", err)
		}
		mod, err := embedded.ModuleSchema(context.Background(), data, opts...)
		if err != nil {
			return nil, "", err
		}
		return mod, moduleFile, nil
	}

	data, err := os.ReadFile(schemaFile)
	if err != nil {
		return nil, "", fmt.Errorf("read file: %w", err)
	}
	mod, err := schema.DecodeModule(bytes.NewReader(data), opts...)
	if err != nil {
		return nil, "", err
	}
	return mod, schemaFile, nil
}

func contractNames(mod *schema.Module) []string {
	names := make([]string, 0, len(mod.Contracts))
	for name := range mod.Contracts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func dump(mod *schema.Module, source, only string) error {
	fmt.Printf("Schema: %s\n", source)
	fmt.Printf("Contracts: %d\n", len(mod.Contracts))

	names := contractNames(mod)
	if only != "" {
		if _, ok := mod.Contracts[only]; !ok {
			return fmt.Errorf("no contract named %q (have %v)", only, names)
		}
		names = []string{only}
	}

	for _, name := range names {
		c := mod.Contracts[name]
		fmt.Printf("\n%s\n", name)
		fmt.Printf("  state: %s\n", schema.FormatType(c.State))
		fmt.Printf("  init:  %s\n", schema.FormatType(c.Init))
		if len(c.Receive) == 0 {
			fmt.Printf("  receive: none\n")
			continue
		}
		fmt.Printf("  receive:\n")
		entries := make([]string, 0, len(c.Receive))
		for entry := range c.Receive {
			entries = append(entries, entry)
		}
		sort.Strings(entries)
		for _, entry := range entries {
			fmt.Printf("    %s(%s)\n", entry, schema.FormatType(c.Receive[entry]))
		}
	}
	return nil
}
