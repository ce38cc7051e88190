package database

import "golang.org/x/text/language"

type resourceRow struct {
	Key   string `db:"key"`
	Value string `db:"value"`
}

// localeColumn is the stored form of a locale: '' for the base table, the
// BCP 47 tag otherwise.
func localeColumn(tag language.Tag) string {
	if tag.IsRoot() {
		return ""
	}
	return tag.String()
}

func rowsToTable(rows []resourceRow) map[string]string {
	table := make(map[string]string, len(rows))
	for _, r := range rows {
		table[r.Key] = r.Value
	}
	return table
}
