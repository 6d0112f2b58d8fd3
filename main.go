// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"os/user"

	"aml/internal/keywords"
	"aml/internal/lexer"
	"aml/repl"
)

func main() {
	currentUser, err := user.Current()
	if err != nil {
		fmt.Printf("Error getting current user: %v\n", err)
		return
	}

	scanner, err := lexer.New(keywords.Default())
	if err != nil {
		fmt.Printf("Error building lexer: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Welcome to the AML tokenizer, %s!\n", currentUser.Username)
	if err := repl.Start(os.Stdin, os.Stdout, scanner); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
}
