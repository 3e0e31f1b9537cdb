package model

// monthColumns maps month abbreviations to their column letters in the
// annual budget template. The mapping is a fixed property of the template.
var monthColumns = map[string]string{
	"Jan": "D", "Feb": "E", "Mar": "F", "Apr": "G",
	"May": "H", "Jun": "I", "Jul": "J", "Aug": "K",
	"Sep": "L", "Oct": "M", "Nov": "N", "Dec": "O",
}

// MonthColumn returns the annual-sheet column letter for a three-letter
// month abbreviation ("Jan".."Dec").
func MonthColumn(abbr string) (string, bool) {
	col, ok := monthColumns[abbr]
	return col, ok
}
