// Command sqlread is a minimal, read-only explorer for SQLite-format
// database files: it decodes the header, walks table btrees, and answers a
// small subset of SQL SELECT statements against the schema it finds.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"github.com/lindeneg/litepage/internal/config"
	"github.com/lindeneg/litepage/internal/storage"
)

var cli struct {
	Database string `arg:"" required:"" type:"existingfile" help:"path to a SQLite-format database file"`
	Exec     string `arg:"" optional:"" help:"one-shot command (.dbinfo, .tables, or a SQL SELECT); omit to start an interactive prompt"`

	Config   string `name:"config" type:"path" help:"optional YAML config file"`
	LogLevel string `name:"log-level" help:"override the configured logrus level: trace|debug|info|warn|error"`
}

func main() {
	kong.Parse(&cli,
		kong.Name("sqlread"),
		kong.Description("read-only explorer for SQLite-format database files"),
		kong.UsageOnError(),
	)

	cfg, err := config.Load(cli.Config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if cli.LogLevel != "" {
		cfg.LogLevel = cli.LogLevel
	}

	logger := logrus.New()
	logger.SetLevel(cfg.ParsedLogLevel())

	db, err := storage.Open(cli.Database, logger)
	if err != nil {
		logger.Fatalf("open database: %v", err)
	}
	defer db.Close()

	if cli.Exec != "" {
		if err := runCommand(db, cli.Exec, os.Stdout); err != nil {
			logger.Fatal(err)
		}
		return
	}
	if err := repl(db, logger); err != nil {
		logger.Fatal(err)
	}
}
