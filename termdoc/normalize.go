package termdoc

// Normalize flattens raw elements into the strict element sequence, in
// source order. It is total and deterministic: a syntactically valid raw
// document cannot fail to normalize.
//
// A raw table becomes exactly one *Table element; each cell's text group,
// single or list, collapses into that one cell. A raw text group at the top
// level expands instead: one *Text element per unit, so a list of N texts
// becomes N sibling elements and an empty list becomes nothing at all. The
// asymmetry is deliberate: table cells concatenate on one line, while
// top-level groups are just consecutive elements.
func Normalize(raw []RawEl) []El {
	els := make([]El, 0, len(raw))
	for _, r := range raw {
		if r.Table != nil {
			rows := make([][]Cell, 0, len(r.Table.Rows))
			for _, rawRow := range r.Table.Rows {
				row := make([]Cell, 0, len(rawRow))
				for _, group := range rawRow {
					cell := make(Cell, len(group.Units))
					copy(cell, group.Units)
					row = append(row, cell)
				}
				rows = append(rows, row)
			}
			els = append(els, NewTable(rows))
			continue
		}
		for _, unit := range r.Texts.Units {
			els = append(els, &unit)
		}
	}
	return els
}

// From converts a serialized document into elements using the given
// unmarshal function. Both yaml.Unmarshal and json.Unmarshal satisfy the
// parameter; termdoc never parses bytes itself. Unmarshal errors propagate
// unchanged.
func From(unmarshal func(data []byte, v interface{}) error, data []byte) ([]El, error) {
	var tree []interface{}
	if err := unmarshal(data, &tree); err != nil {
		return nil, err
	}
	raw, err := DecodeElements(tree)
	if err != nil {
		return nil, err
	}
	return Normalize(raw), nil
}
