// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	amlerrors "aml/internal/errors"
	"aml/internal/keywords"
	"aml/internal/lexer"
	"aml/token"
)

var log = commonlog.GetLogger("aml.lex")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("aml-lex", flag.ContinueOnError)
	flags.SetOutput(stderr)
	keywordsPath := flags.String("keywords", "", "YAML keyword table (default: built-in table)")
	showRules := flags.Bool("rules", false, "print the rule priority order and exit")
	verbose := flags.Int("v", 0, "log verbosity")
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage: aml-lex [-keywords file.yaml] [-rules] [-v N] <file.aml>")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return 2
	}
	commonlog.Configure(*verbose, nil)

	table := keywords.Default()
	if *keywordsPath != "" {
		loaded, err := keywords.LoadFile(*keywordsPath)
		if err != nil {
			fmt.Fprint(stderr, amlerrors.NewErrorReporter(*keywordsPath, "").FormatError(amlerrors.KeywordConfig(*keywordsPath, err)))
			return 1
		}
		table = loaded
		log.Infof("loaded %d keywords from %s", table.Len(), *keywordsPath)
	}

	scanner, err := lexer.New(table)
	if err != nil {
		fmt.Fprintf(stderr, "failed to build lexer: %v\n", err)
		return 1
	}

	if *showRules {
		printRules(stdout, scanner.Registry())
		return 0
	}

	if flags.NArg() != 1 {
		flags.Usage()
		return 2
	}

	startTime := time.Now()
	path := flags.Arg(0)

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "failed to read file: %v\n", err)
		return 1
	}

	tokens, err := scanner.Scan(string(source))
	duration := formatDuration(time.Since(startTime))
	if err != nil {
		if diag, ok := amlerrors.FromScanError(err); ok {
			fmt.Fprint(stderr, amlerrors.NewErrorReporter(path, string(source)).FormatError(diag))
		} else {
			fmt.Fprintf(stderr, "%s: %v\n", path, err)
		}
		fmt.Fprintln(stderr, color.RedString("Tokenization failed after %s", duration))
		return 1
	}

	printTokens(stdout, tokens)
	log.Debugf("%s: %d tokens", path, len(tokens))
	fmt.Fprintln(stderr, color.GreenString("Tokenized %s (%d tokens) in %s", path, len(tokens), duration))
	return 0
}

func printTokens(w io.Writer, tokens []token.Token) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, tok := range tokens {
		value := ""
		if tok.Value != nil {
			value = fmt.Sprintf("%v", tok.Value)
		}
		fmt.Fprintf(tw, "%d:%d\t%s\t%s\t%s\n", tok.Line, tok.Pos.Column, tok.Kind, tok.Lexeme, value)
	}
	tw.Flush()
}

func printRules(w io.Writer, registry *lexer.Registry) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tCLASS\tRULE\tPATTERN")
	for i, r := range registry.Rules() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i, r.Class, r.Name, r.Pattern)
	}
	tw.Flush()
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
