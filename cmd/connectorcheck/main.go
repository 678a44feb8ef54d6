// connectorcheck validates a merchant connector account document: it
// parses the credential blob, runs the generic and connector-specific
// checks, and reports the result. Exit status is non-zero on any
// validation failure.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/kevin07696/connector-switch/internal/connectors"
	"github.com/kevin07696/connector-switch/internal/connectors/braintree"
)

// accountDocument is the on-disk shape of a merchant connector
// account: the connector name, its credential blob, and the
// connector-specific metadata blob.
type accountDocument struct {
	ConnectorName     string          `json:"connector_name"`
	ConnectorAccount  json.RawMessage `json:"connector_account_details"`
	ConnectorMetaData json.RawMessage `json:"metadata"`
}

func main() {
	var (
		file    = flag.String("file", "", "Path to a connector account JSON document")
		list    = flag.Bool("list", false, "List registered connectors and exit")
		verbose = flag.Bool("v", false, "Enable debug logging")
	)
	flag.Parse()

	logger := newLogger(*verbose)
	defer logger.Sync()

	registry := connectors.NewRegistry()
	registry.Register(braintree.New(logger))

	if *list {
		for _, name := range registry.Names() {
			fmt.Println(name)
		}
		return
	}

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Usage: connectorcheck -file=<account.json>")
		fmt.Fprintln(os.Stderr, "       connectorcheck -list")
		os.Exit(2)
	}

	raw, err := os.ReadFile(*file)
	if err != nil {
		logger.Fatal("failed to read account document", zap.Error(err))
	}

	var doc accountDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		logger.Fatal("failed to parse account document", zap.Error(err))
	}
	if doc.ConnectorName == "" {
		logger.Fatal("account document has no connector_name")
	}

	auth, err := registry.ValidateCredentials(doc.ConnectorName, doc.ConnectorAccount, doc.ConnectorMetaData)
	if err != nil {
		logger.Error("credential validation failed",
			zap.String("connector", doc.ConnectorName),
			zap.Error(err))
		os.Exit(1)
	}

	logger.Info("credentials are valid",
		zap.String("connector", doc.ConnectorName),
		zap.String("auth_type", auth.AuthKind()))
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to build logger:", err)
		os.Exit(1)
	}
	return logger
}
