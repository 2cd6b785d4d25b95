package storage

// TableInfo is one row of the sqlite_master schema table that this reader
// cares about: enough to locate and (re)describe a table's btree.
type TableInfo struct {
	Name     string
	RootPage int
	SQL      string
}

// Schema walks the schema table rooted at page 1 and returns every table
// entry it finds, keyed by table name. Index entries in sqlite_master are
// skipped since index pages are outside this reader's scope.
func (d *Database) Schema() (map[string]TableInfo, error) {
	scanner := d.Scan(1)
	tables := make(map[string]TableInfo)
	for {
		cur, err := scanner.NextRecord()
		if err != nil {
			return nil, err
		}
		if cur == nil {
			break
		}
		if cur.NumFields() < 5 {
			continue
		}
		typeVal, err := cur.Field(0)
		if err != nil || typeVal.Kind != KindString || typeVal.Str != "table" {
			continue
		}
		nameVal, err := cur.Field(1)
		if err != nil || nameVal.Kind != KindString {
			continue
		}
		rootVal, err := cur.Field(3)
		if err != nil || rootVal.Kind != KindInt {
			continue
		}
		sqlText := ""
		if sqlVal, err := cur.Field(4); err == nil && sqlVal.Kind == KindString {
			sqlText = sqlVal.Str
		}
		tables[nameVal.Str] = TableInfo{
			Name:     nameVal.Str,
			RootPage: int(rootVal.Int),
			SQL:      sqlText,
		}
	}
	return tables, nil
}
