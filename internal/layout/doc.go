// Package layout describes CSV column layouts in YAML and binds them to a
// dispatch table.
//
// A layout names, for each column, the binding that produces its cell and the
// profile the binding runs under:
//
//	version: "1"
//	profile: default          # profile of columns that do not name one
//	columns:
//	  - name: label
//	    binding: label
//	  - name: label_ja
//	    binding: label
//	    profile: japanese
//	  - name: code
//	    binding: code
//	    optional: true        # null in YAML, empty cell in CSV
//
// Rows travel as maps from column name to domain value. Bind resolves every
// column once; the resulting Bound encodes rows to cells and decodes cells back
// through each binding's inverse.
package layout
