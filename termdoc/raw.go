// termdoc/raw.go - the permissive raw document model and its decoding.
//
// The raw model mirrors the strict element model but tolerates the
// shorthand forms a hand-written document uses: a bare string instead of a
// full text record, a single item instead of a list, a {table: ...} record
// for tables. Raw values exist only between deserialization and
// normalization and own no long-lived state.
package termdoc

import "fmt"

// RawEl is one top-level document item before normalization. Exactly one of
// Table and Texts is populated; Table wins disambiguation, since a table
// record could otherwise structurally match a text record.
type RawEl struct {
	Table *RawTable
	Texts RawTexts
}

// RawTable is the raw form of a table: rows of cells, each cell itself a
// raw text group (so a cell may be one string or a styled list).
type RawTable struct {
	Rows [][]RawTexts
}

// RawTexts is a raw text group: either a single text or a list of texts.
// Multi records which form the source used. The distinction changes output
// arity at the top level (a list becomes one element per unit, and an empty
// list becomes nothing), while inside a table cell both forms collapse into
// the one cell.
type RawTexts struct {
	Units []Text
	Multi bool
}

// DecodeElements decodes a deserialized top-level sequence into raw
// elements, preserving order.
func DecodeElements(items []interface{}) ([]RawEl, error) {
	raw := make([]RawEl, 0, len(items))
	for i, item := range items {
		el, err := DecodeElement(item)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		raw = append(raw, el)
	}
	return raw, nil
}

// DecodeElement decodes one deserialized value into a raw element. Shapes
// are matched in fixed priority order: the table form first, then the text
// group forms. A value matching no shape is a decode error.
func DecodeElement(v interface{}) (RawEl, error) {
	if m, ok := v.(map[string]interface{}); ok {
		if _, isTable := m["table"]; isTable {
			table, err := decodeTable(m)
			if err != nil {
				return RawEl{}, err
			}
			return RawEl{Table: table}, nil
		}
	}
	texts, err := decodeTexts(v)
	if err != nil {
		return RawEl{}, err
	}
	return RawEl{Texts: texts}, nil
}

func decodeTable(m map[string]interface{}) (*RawTable, error) {
	for key := range m {
		if key != "table" {
			return nil, fmt.Errorf("unrecognized key %q in table record", key)
		}
	}
	rowsVal, ok := m["table"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("table value must be a sequence of rows, got %T", m["table"])
	}
	rows := make([][]RawTexts, 0, len(rowsVal))
	for i, rowVal := range rowsVal {
		cellsVal, ok := rowVal.([]interface{})
		if !ok {
			return nil, fmt.Errorf("table row %d must be a sequence of cells, got %T", i, rowVal)
		}
		row := make([]RawTexts, 0, len(cellsVal))
		for j, cellVal := range cellsVal {
			cell, err := decodeTexts(cellVal)
			if err != nil {
				return nil, fmt.Errorf("table row %d cell %d: %w", i, j, err)
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}
	return &RawTable{Rows: rows}, nil
}

func decodeTexts(v interface{}) (RawTexts, error) {
	if list, ok := v.([]interface{}); ok {
		units := make([]Text, 0, len(list))
		for i, item := range list {
			t, err := decodeText(item)
			if err != nil {
				return RawTexts{}, fmt.Errorf("item %d: %w", i, err)
			}
			units = append(units, t)
		}
		return RawTexts{Units: units, Multi: true}, nil
	}
	t, err := decodeText(v)
	if err != nil {
		return RawTexts{}, err
	}
	return RawTexts{Units: []Text{t}}, nil
}

func decodeText(v interface{}) (Text, error) {
	switch val := v.(type) {
	case string:
		return NewText(val), nil
	case map[string]interface{}:
		return decodeTextRecord(val)
	default:
		return Text{}, fmt.Errorf("text must be a string or a {t, b, i, c, bg} record, got %T", v)
	}
}

func decodeTextRecord(m map[string]interface{}) (Text, error) {
	var t Text
	for key, val := range m {
		switch key {
		case "t":
			s, ok := val.(string)
			if !ok {
				return Text{}, fmt.Errorf("key %q must be a string, got %T", key, val)
			}
			t.Content = s
		case "b":
			b, ok := val.(bool)
			if !ok {
				return Text{}, fmt.Errorf("key %q must be a bool, got %T", key, val)
			}
			t.Bold = b
		case "i":
			b, ok := val.(bool)
			if !ok {
				return Text{}, fmt.Errorf("key %q must be a bool, got %T", key, val)
			}
			t.Italic = b
		case "c":
			c, err := decodeColor(key, val)
			if err != nil {
				return Text{}, err
			}
			t.Color = c
		case "bg":
			c, err := decodeColor(key, val)
			if err != nil {
				return Text{}, err
			}
			t.Background = c
		default:
			return Text{}, fmt.Errorf("unrecognized key %q in text record", key)
		}
	}
	return t, nil
}

func decodeColor(key string, v interface{}) (Color, error) {
	s, ok := v.(string)
	if !ok {
		return Plain, fmt.Errorf("key %q must be a color name, got %T", key, v)
	}
	c, err := ParseColor(s)
	if err != nil {
		return Plain, fmt.Errorf("key %q: %w", key, err)
	}
	return c, nil
}
