package dispatch

import (
	"value-projector/sample"
)

// Binding names of the sample table.
const (
	BindingLabel = "label"
	BindingCode  = "code"
)

// Samples returns the table of the sample bindings:
//
//	label@default   Label
//	label@japanese  JapaneseLabel
//	code@default    Code
func Samples() *Table[sample.Value] {
	t := NewTable[sample.Value]()

	RegisterBinding(t, BindingLabel, sample.Label{}.Project, sample.Label{}.Reconstruct)
	RegisterBinding(t, BindingLabel, sample.JapaneseLabel{}.Project, sample.JapaneseLabel{}.Reconstruct)
	RegisterBinding(t, BindingCode, sample.Code{}.Project, sample.Code{}.Reconstruct)

	return t
}
