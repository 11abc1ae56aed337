package ingest

// Header discovery is a two-phase contract: first locate the header row
// by scanning the sheet for a row whose normalized cells contain every
// required column, then map each following raw row to column names via
// the header index. Rows above the header (titles, notes) are ignored.

import "strings"

// findHeader returns the index and cleaned cells of the first row that
// carries all required columns. A nil header signals no match.
func findHeader(values [][]string) (int, []string) {
	required := make(map[string]struct{}, len(RequiredColumns()))
	for _, column := range RequiredColumns() {
		required[NormalizeColumn(column)] = struct{}{}
	}

	for idx, raw := range values {
		cleaned := make([]string, len(raw))
		present := make(map[string]struct{}, len(raw))
		for i, cell := range raw {
			cleaned[i] = strings.TrimSpace(cell)
			present[NormalizeColumn(cell)] = struct{}{}
		}

		found := true
		for name := range required {
			if _, ok := present[name]; !ok {
				found = false
				break
			}
		}
		if found {
			return idx, cleaned
		}
	}
	return -1, nil
}

// mapRows converts the value rows below the header into RawRows keyed
// by the cleaned header names. Cells past the end of a short row map to
// the empty string, matching how sheet APIs omit trailing blanks.
func mapRows(header []string, values [][]string) []RawRow {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[NormalizeColumn(name)] = i
	}

	rows := make([]RawRow, 0, len(values))
	for _, raw := range values {
		row := make(RawRow, len(header))
		for _, column := range header {
			i, ok := index[NormalizeColumn(column)]
			if !ok {
				continue
			}
			if i < len(raw) {
				row[column] = strings.TrimSpace(raw[i])
			} else {
				row[column] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// missingColumns reports the required columns that never appeared in
// any scanned row, using the same normalization as discovery.
func missingColumns(values [][]string) []string {
	present := make(map[string]struct{})
	for _, raw := range values {
		for _, cell := range raw {
			present[NormalizeColumn(cell)] = struct{}{}
		}
	}

	var missing []string
	for _, column := range RequiredColumns() {
		if _, ok := present[NormalizeColumn(column)]; !ok {
			missing = append(missing, column)
		}
	}
	return missing
}

// tableToRows runs both phases over a full value grid.
func tableToRows(values [][]string) ([]RawRow, error) {
	if len(values) == 0 {
		return nil, nil
	}

	headerIdx, header := findHeader(values)
	if header == nil {
		return nil, &SchemaError{Missing: missingColumns(values)}
	}
	return mapRows(header, values[headerIdx+1:]), nil
}
