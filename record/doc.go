// Package record adapts structs made of tagged values to row-oriented CSV.
//
// A record type is a struct. Each exported field is one column, named by its
// `csv` struct tag or, failing that, its Go name; `csv:"-"` skips the field.
// Every column must appear in the header unless its tag carries the optional
// flag (`csv:"note,optional"`).
// A field is written through encoding.TextMarshaler or as a primitive scalar,
// so a tagged.Value contributes only its inner scalar and no tag metadata.
// Reading parses each cell into the field's type: tagged.Value fields wrap the
// raw scalar without validation, tagged.Coded fields run the inverse binding.
//
//	type Row[P profile.Profile] struct {
//		ColumnA tagged.Value[string, sample.Value, P] `csv:"column_a"`
//		ColumnB tagged.Value[int64, sample.Value, P]  `csv:"column_b"`
//	}
package record
