// aliasrefs replays a log of observed import bindings into a reference index
// and answers queries against it.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"

	"github.com/stackb/aliasrefs/pkg/collections"
	"github.com/stackb/aliasrefs/pkg/importobserver"
	"github.com/stackb/aliasrefs/pkg/refindex"
)

type flags struct {
	recordsFile string
	configFile  string
	skip        collections.StringSlice
	forward     string
	reverse     string
	original    string
	patch       string
	dump        bool
	debug       bool
}

func main() {
	log.SetPrefix("aliasrefs: ")
	log.SetFlags(0) // don't print timestamps

	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func parseFlags(args []string, stderr io.Writer) (*flags, error) {
	var f flags
	fs := flag.NewFlagSet("aliasrefs", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.recordsFile, "records", "", "JSON lines file of observed import bindings")
	fs.StringVar(&f.configFile, "config", "", "optional TOML file with observer skip rules")
	fs.Var(&f.skip, "skip", "additional module prefix to skip (repeatable)")
	fs.StringVar(&f.forward, "forward", "", "forward lookup, as MODULE:ALIAS")
	fs.StringVar(&f.reverse, "reverse", "", "reverse lookup, as MODULE:NAME")
	fs.StringVar(&f.original, "original", "", "resolve original name, as MODULE:ALIAS")
	fs.StringVar(&f.patch, "patch", "", "list patch targets, as MODULE:NAME")
	fs.BoolVar(&f.dump, "dump", false, "write the index tables as JSON")
	fs.BoolVar(&f.debug, "debug", false, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if f.recordsFile == "" {
		return nil, fmt.Errorf("-records is required")
	}
	return &f, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	f, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := zerolog.InfoLevel
	if f.debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Logger()

	config := importobserver.DefaultConfig()
	if f.configFile != "" {
		loaded, err := importobserver.LoadConfig(f.configFile)
		if err != nil {
			return err
		}
		config = *loaded
	}
	config.SkipModules = append(config.SkipModules, f.skip...)

	ix := refindex.New(refindex.WithLogger(logger))
	observer, err := importobserver.New(ix, config, importobserver.WithLogger(logger))
	if err != nil {
		return err
	}

	bindings, err := importobserver.ReadBindingsFile(f.recordsFile)
	if err != nil {
		return err
	}
	recorded, err := observer.ObserveAll(context.Background(), bindings)
	if err != nil {
		return err
	}
	logger.Debug().Int("bindings", len(bindings)).Int("recorded", recorded).Msg("replayed records")
	if f.debug {
		spew.Fdump(stderr, ix.Stats())
	}

	if f.forward != "" {
		module, alias, err := parseQuery("forward", f.forward)
		if err != nil {
			return err
		}
		printNames(stdout, ix.LookupForward(module, alias).Strings())
	}
	if f.reverse != "" {
		module, name, err := parseQuery("reverse", f.reverse)
		if err != nil {
			return err
		}
		printNames(stdout, ix.LookupReverse(module, name).Strings())
	}
	if f.original != "" {
		module, alias, err := parseQuery("original", f.original)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, ix.ResolveOriginalName(module, alias))
	}
	if f.patch != "" {
		module, name, err := parseQuery("patch", f.patch)
		if err != nil {
			return err
		}
		printNames(stdout, refindex.PatchTargets(ix, module, name).Strings())
	}
	if f.dump {
		if err := ix.Dump().WriteJSON(stdout); err != nil {
			return err
		}
	}

	return nil
}

// parseQuery splits a MODULE:NAME flag value.
func parseQuery(flagName, value string) (module, name string, err error) {
	module, name, ok := strings.Cut(value, ":")
	if !ok {
		return "", "", fmt.Errorf("-%s: want MODULE:NAME, got %q", flagName, value)
	}
	return module, name, nil
}

func printNames(w io.Writer, names []string) {
	for _, name := range names {
		fmt.Fprintln(w, name)
	}
}
