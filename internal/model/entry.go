// Package model defines the core types shared across the application.
package model

// Entry represents a single transaction row in the monthly budget.
// All fields are kept as the raw spreadsheet strings; numeric
// interpretation happens only at the validation boundary.
type Entry struct {
	Date        string
	Amount      string
	Description string
	Category    string
}

// Row returns the entry as a spreadsheet row in column order.
func (e Entry) Row() []string {
	return []string{e.Date, e.Amount, e.Description, e.Category}
}

// EntryFromRow builds an Entry from a spreadsheet row. Rows shorter than
// four cells are padded with empty strings; the Sheets API omits trailing
// empty cells per row.
func EntryFromRow(row []string) Entry {
	cell := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}
	return Entry{
		Date:        cell(0),
		Amount:      cell(1),
		Description: cell(2),
		Category:    cell(3),
	}
}

// EntryList is an ordered sequence of entries, insertion order matching
// spreadsheet row order.
type EntryList []Entry

// EntriesFromRows converts raw spreadsheet rows into an EntryList.
func EntriesFromRows(rows [][]string) EntryList {
	entries := make(EntryList, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, EntryFromRow(row))
	}
	return entries
}
