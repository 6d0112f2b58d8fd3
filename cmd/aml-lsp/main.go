// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"aml/internal/keywords"
	"aml/internal/lexer"
	"aml/internal/lsp"
)

const lsName = "aml" // Name identifier for the language server

func main() {
	keywordsPath := flag.String("keywords", "", "YAML keyword table (default: built-in table)")
	verbose := flag.Int("v", 1, "log verbosity")
	logPath := flag.String("log", "", "log file (default: stderr)")
	flag.Parse()

	var logFile *string
	if *logPath != "" {
		logFile = logPath
	}
	commonlog.Configure(*verbose, logFile)
	log := commonlog.GetLogger("aml.lsp")

	table := keywords.Default()
	if *keywordsPath != "" {
		loaded, err := keywords.LoadFile(*keywordsPath)
		if err != nil {
			log.Errorf("%s", err)
			os.Exit(1)
		}
		table = loaded
	}

	scanner, err := lexer.New(table)
	if err != nil {
		log.Errorf("failed to build lexer: %s", err)
		os.Exit(1)
	}

	h := lsp.NewHandler(scanner)
	handler := protocol.Handler{
		Initialize:                     h.Initialize,
		Initialized:                    h.Initialized,
		Shutdown:                       h.Shutdown,
		SetTrace:                       h.SetTrace,
		TextDocumentDidOpen:            h.TextDocumentDidOpen,
		TextDocumentDidClose:           h.TextDocumentDidClose,
		TextDocumentDidChange:          h.TextDocumentDidChange,
		TextDocumentCompletion:         h.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: h.TextDocumentSemanticTokensFull,
	}

	// Editors talk to the server over stdin/stdout.
	s := server.NewServer(&handler, lsName, false)

	log.Info("starting AML language server")
	if err := s.RunStdio(); err != nil {
		log.Errorf("language server stopped: %s", err)
		os.Exit(1)
	}
}
