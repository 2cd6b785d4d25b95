package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xwb1989/sqlparser"

	"github.com/lindeneg/litepage/internal/storage"
)

const countIdent = "count(*)"

// selectCtx is the normalized shape of a parsed SELECT: which tables, which
// columns (or the special count(*) marker), an equality-only WHERE clause,
// and an optional row limit.
type selectCtx struct {
	Tables      []string
	Identifiers []string
	Constraint  map[string]string
	IsCount     bool
	Limit       int
}

func newSelectCtx(stmt *sqlparser.Select) selectCtx {
	idents := sqlNodeToTrimmedString(stmt.SelectExprs)
	return selectCtx{
		Tables:      sqlNodeToTrimmedString(stmt.From),
		Identifiers: idents,
		Constraint:  sqlWhereToConstraint(stmt.Where),
		IsCount:     len(idents) > 0 && idents[0] == countIdent,
		Limit:       sqlLimitToInt(stmt.Limit),
	}
}

func executeSelect(db *storage.Database, stmt *sqlparser.Select, w io.Writer) error {
	ctx := newSelectCtx(stmt)
	schema, err := db.Schema()
	if err != nil {
		return err
	}
	for _, tableName := range ctx.Tables {
		table, ok := schema[tableName]
		if !ok {
			return fmt.Errorf("no such table: %s", tableName)
		}
		columns := parseColumnNames(table.SQL)
		columnIndex := make(map[string]int, len(columns))
		for i, c := range columns {
			columnIndex[c] = i
		}

		rows, count, err := scanTable(db, table.RootPage, columnIndex, ctx)
		if err != nil {
			return err
		}
		if ctx.IsCount {
			fmt.Fprintln(w, count)
		} else {
			fmt.Fprintln(w, strings.Join(rows, "\n"))
		}
	}
	return nil
}

func scanTable(db *storage.Database, rootPage int, columnIndex map[string]int, ctx selectCtx) ([]string, int, error) {
	scanner := db.Scan(rootPage)
	var rows []string
	count := 0
	for {
		if ctx.Limit > 0 && count >= ctx.Limit {
			break
		}
		cur, err := scanner.NextRecord()
		if err != nil {
			return nil, 0, err
		}
		if cur == nil {
			break
		}

		values := make(map[string]string, len(columnIndex))
		ok, err := matchesConstraint(cur, columnIndex, ctx.Constraint, values)
		if err != nil {
			return nil, 0, err
		}
		if !ok {
			continue
		}

		if ctx.IsCount {
			count++
			continue
		}
		cols, err := projectIdentifiers(cur, columnIndex, ctx.Identifiers, values)
		if err != nil {
			return nil, 0, err
		}
		if len(cols) > 0 {
			rows = append(rows, strings.Join(cols, "|"))
			count++
		}
	}
	return rows, count, nil
}

func columnValue(cur *storage.Cursor, columnIndex map[string]int, name string) (string, error) {
	idx, ok := columnIndex[name]
	if !ok {
		return "", fmt.Errorf("%q is not a known column", name)
	}
	v, err := cur.Field(idx)
	if err != nil {
		// A rowid-aliased INTEGER PRIMARY KEY column is stored as NULL in
		// the record itself; fall back to the cell's row id.
		if strings.Contains(name, "id") {
			return strconv.FormatInt(cur.RowID, 10), nil
		}
		return "", err
	}
	text := v.String()
	if v.Kind == storage.KindNull && strings.Contains(name, "id") {
		text = strconv.FormatInt(cur.RowID, 10)
	}
	return text, nil
}

func matchesConstraint(cur *storage.Cursor, columnIndex map[string]int, constraint map[string]string, values map[string]string) (bool, error) {
	for name, want := range constraint {
		got, err := columnValue(cur, columnIndex, name)
		if err != nil {
			return false, err
		}
		values[name] = got
		if strings.ToLower(got) != want {
			return false, nil
		}
	}
	return true, nil
}

func projectIdentifiers(cur *storage.Cursor, columnIndex map[string]int, identifiers []string, values map[string]string) ([]string, error) {
	out := make([]string, 0, len(identifiers))
	for _, name := range identifiers {
		if v, ok := values[name]; ok {
			out = append(out, v)
			continue
		}
		v, err := columnValue(cur, columnIndex, name)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// parseColumnNames extracts column names, in declared order, from a
// CREATE TABLE statement's column list. It is intentionally simple: it
// splits on top-level commas and takes the first token of each definition.
func parseColumnNames(sql string) []string {
	open := strings.Index(sql, "(")
	closeParen := strings.LastIndex(sql, ")")
	if open < 0 || closeParen <= open {
		return nil
	}
	body := sql[open+1 : closeParen]

	var columns []string
	depth := 0
	start := 0
	split := func(end int) {
		def := strings.TrimSpace(body[start:end])
		if def == "" {
			return
		}
		fields := strings.Fields(def)
		if len(fields) > 0 {
			columns = append(columns, strings.ToLower(strings.Trim(fields[0], "`\"[]")))
		}
	}
	for i, r := range body {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				split(i)
				start = i + 1
			}
		}
	}
	split(len(body))
	return columns
}

func sqlWhereToConstraint(w *sqlparser.Where) map[string]string {
	if w == nil {
		return nil
	}
	r := map[string]string{}
	for _, expr := range sqlNodeToString(w.Expr) {
		kv := strings.SplitN(expr, "=", 2)
		if len(kv) != 2 {
			continue
		}
		r[cleanKeyString(kv[0])] = cleanKeyString(kv[1])
	}
	return r
}

func sqlLimitToInt(l *sqlparser.Limit) int {
	if l == nil {
		return 0
	}
	return sqlNodeToInt(l.Rowcount)
}

func sqlNodeToInt(n sqlparser.SQLNode) int {
	buf := sqlparser.NewTrackedBuffer(nil)
	n.Format(buf)
	i, err := strconv.Atoi(buf.String())
	if err != nil {
		return 0
	}
	return i
}

func sqlNodeToString(n sqlparser.SQLNode) []string {
	buf := sqlparser.NewTrackedBuffer(nil)
	n.Format(buf)
	return strings.Split(strings.ToLower(buf.String()), ",")
}

func sqlNodeToTrimmedString(n sqlparser.SQLNode) []string {
	buf := sqlparser.NewTrackedBuffer(nil)
	n.Format(buf)
	return strings.Split(strings.ToLower(strings.ReplaceAll(buf.String(), " ", "")), ",")
}

func cleanKeyString(s string) string {
	return strings.Trim(strings.TrimSpace(s), "'\"")
}
