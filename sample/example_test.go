package sample_test

import (
	"encoding/json"
	"fmt"

	"value-projector/sample"
	"value-projector/tagged"
)

func Example() {
	v := sample.B()

	fmt.Println(sample.Label{}.Project(v))
	fmt.Println(sample.JapaneseLabel{}.Project(v))
	fmt.Println(sample.Code{}.Project(v))

	back, err := sample.Code{}.Reconstruct(2)
	fmt.Println(back, err)

	// Output:
	// SampleB
	// サンプルB
	// 1
	// SampleA cannot reconstruct sample.Value from 2 under profile "default": unrecognized code
}

func ExampleCode_lifted() {
	codes := tagged.Lift(sample.Code{}.Project)

	converted := codes.Project(tagged.Some(sample.A()))
	debug, _ := json.MarshalIndent(converted, "", "  ")
	fmt.Println("Debug:", string(debug))

	missing, _ := json.Marshal(codes.Project(tagged.None[sample.Value]()))
	fmt.Println(string(missing))

	// Output:
	// Debug: 0
	// null
}
