// Command sassgo compiles Sass stylesheets to CSS, adapted from the
// teacher's cmd/lessgo/main.go (github.com/titpetric/lessgo) flag-set-per-
// subcommand shape. The "fmt" subcommand is dropped since package
// serializer renders the evaluator's output tree, not a reformatted source
// AST, so in-place reformatting of the original source isn't meaningful
// here the way it was for LESS's source-to-source formatter.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/titpetric/sassgo"
	"github.com/titpetric/sassgo/importer"
	"github.com/titpetric/sassgo/logger"
	"github.com/titpetric/sassgo/parser"
	"github.com/titpetric/sassgo/serializer"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "compile":
		compileCmd := flag.NewFlagSet("compile", flag.ExitOnError)
		compressed := compileCmd.Bool("compressed", false, "emit compressed output instead of expanded")
		quietDeps := compileCmd.Bool("quiet-deps", false, "set Config.QuietDeps (warnings are not filtered by it)")
		compileCmd.Parse(os.Args[2:])

		args := compileCmd.Args()
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: sassgo compile [-compressed] [-quiet-deps] <file>")
			os.Exit(1)
		}
		if err := compileFile(args[0], *compressed, *quietDeps); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: sassgo <command> [args]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  compile <file>  Compile a Sass stylesheet to CSS")
}

func compileFile(filePath string, compressed, quietDeps bool) error {
	source, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	sheet, err := parser.Parse(string(source), filepath.Base(filePath))
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	dir := filepath.Dir(filePath)
	imp := importer.New(os.DirFS(dir), parser.Parse)

	style := serializer.Expanded
	if compressed {
		style = serializer.Compressed
	}

	cfg := sassgo.Config{
		Importer:  imp,
		Logger:    logger.Default(),
		QuietDeps: quietDeps,
	}
	output, warnings, err := sassgo.Compile(sheet, cfg)
	if err != nil {
		return fmt.Errorf("compile error: %w", err)
	}
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, w)
	}

	ser := serializer.New(style, 2)
	fmt.Print(ser.Render(output))
	return nil
}
