package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/lindeneg/litepage/internal/storage"
)

// repl runs an interactive prompt, reading one command per line until
// ".exit"/".quit" or end of input.
func repl(db *storage.Database, log *logrus.Logger) error {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("sqlread> ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == ".exit" || line == ".quit" {
			return nil
		}
		if err := runCommand(db, line, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			log.WithError(err).Debug("command failed")
		}
	}
}
