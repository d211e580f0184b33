// Package termdoc turns small declarative documents into styled terminal
// output.
//
// A document is an ordered sequence of elements, each either a piece of
// (possibly styled) text or a table. Documents are usually written in YAML
// or JSON and loaded through [From], which accepts any unmarshal function
// with the standard signature:
//
//	els, err := termdoc.From(yaml.Unmarshal, []byte(`
//	- ["plain ", {t: "and bold", b: true}]
//	- ["plain ", {t: "and red", c: red}]
//	`))
//	if err != nil {
//		log.Fatal(err)
//	}
//	termdoc.Paint(os.Stdout, els)
//
// The same document can be constructed programmatically:
//
//	els := []termdoc.El{
//		termdoc.PlainText("plain "),
//		&termdoc.Text{Content: "and bold", Bold: true},
//		termdoc.PlainText("plain "),
//		&termdoc.Text{Content: "and red", Color: termdoc.Red},
//	}
//
// Painting writes ANSI escape sequences for bold, italic, and the sixteen
// base foreground/background colors. A monochrome painter
// (NewPainter(Monochrome())) degrades every element to its plain text
// bytes, which makes output byte-identical to unstyled text and easy to
// assert against in tests.
//
// Tables align their columns to the widest cell in each column, with a
// single space between columns. Escape sequences inside a cell do not count
// toward its width, so mixed styling within a table stays aligned.
package termdoc
