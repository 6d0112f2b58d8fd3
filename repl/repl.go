// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"

	amlerrors "aml/internal/errors"
	"aml/internal/lexer"
)

const PROMPT = ">> "

// Start tokenizes each line read from in and prints the result to out.
// It returns when in is exhausted.
func Start(in io.Reader, out io.Writer, scanner *lexer.Scanner) error {
	input := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, PROMPT)
		if !input.Scan() {
			fmt.Fprintln(out)
			return input.Err()
		}

		line := input.Text()
		tokens, err := scanner.Scan(line)
		if err != nil {
			if diag, ok := amlerrors.FromScanError(err); ok {
				fmt.Fprint(out, amlerrors.NewErrorReporter("<repl>", line).FormatError(diag))
			} else {
				fmt.Fprintln(out, color.RedString("%v", err))
			}
			continue
		}

		for _, tok := range tokens {
			fmt.Fprintf(out, "%s\n", tok)
		}
	}
}
