package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/xwb1989/sqlparser"

	"github.com/lindeneg/litepage/internal/storage"
)

// runCommand dispatches a single one-shot command or SQL statement against
// an open database and writes its output to w.
func runCommand(db *storage.Database, cmd string, w io.Writer) error {
	cmd = strings.TrimSpace(cmd)
	switch {
	case cmd == ".dbinfo":
		return dbInfo(db, w)
	case cmd == ".tables":
		return listTables(db, w)
	case cmd == ".exit" || cmd == ".quit":
		return nil
	default:
		return runSelect(db, cmd, w)
	}
}

func dbInfo(db *storage.Database, w io.Writer) error {
	tables, err := db.Schema()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "database page size: %d\n", db.Header.PageSize)
	fmt.Fprintf(w, "number of tables:   %d\n", len(tables))
	return nil
}

func listTables(db *storage.Database, w io.Writer) error {
	tables, err := db.Schema()
	if err != nil {
		return err
	}
	names := make([]string, 0, len(tables))
	for name := range tables {
		if strings.HasPrefix(name, "sqlite_") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintln(w, strings.Join(names, " "))
	return nil
}

func runSelect(db *storage.Database, cmd string, w io.Writer) error {
	stmt, err := sqlparser.Parse(cmd)
	if err != nil {
		return fmt.Errorf("unknown command/query: %s", cmd)
	}
	sel, ok := stmt.(*sqlparser.Select)
	if !ok {
		return fmt.Errorf("only SELECT statements are supported: %s", cmd)
	}
	return executeSelect(db, sel, w)
}
