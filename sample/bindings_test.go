package sample_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"value-projector/profile"
	"value-projector/sample"
	"value-projector/tagged"
)

func allVariants() []sample.Value {
	return []sample.Value{sample.A(), sample.B(), sample.Other("xyz")}
}

func TestProjectionTotality(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value    sample.Value
		label    string
		japanese string
		code     int64
	}{
		{sample.A(), "SampleA", "サンプルA", 0},
		{sample.B(), "SampleB", "サンプルB", 1},
		{sample.Other("xyz"), "xyz", "その他: xyz", 999},
		{sample.Other(""), "", "その他: ", 999},
	}

	for _, tt := range tests {
		t.Run(tt.value.String(), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.label, sample.Label{}.Project(tt.value).Get())
			assert.Equal(t, tt.japanese, sample.JapaneseLabel{}.Project(tt.value).Get())
			assert.Equal(t, tt.code, sample.Code{}.Project(tt.value).Get())
		})
	}
}

func TestProfileIndependence(t *testing.T) {
	t.Parallel()

	def := sample.Label{}.Project(sample.A())
	ja := sample.JapaneseLabel{}.Project(sample.A())

	assert.Equal(t, "SampleA", def.Get())
	assert.Equal(t, "サンプルA", ja.Get())
	assert.Equal(t, "default", def.ProfileName())
	assert.Equal(t, "japanese", ja.ProfileName())

	// Crossing profiles is explicit and keeps the scalar.
	moved := tagged.Retag[profile.Japanese](def)
	assert.Equal(t, "SampleA", moved.Get())
	assert.NotEqual(t, ja, moved)
}

func TestCodeRoundTrip(t *testing.T) {
	t.Parallel()

	code := sample.Code{}

	for _, v := range []sample.Value{sample.A(), sample.B()} {
		got, err := code.Reconstruct(code.Project(v).Get())
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	// The catch-all payload is dropped on the way through the code.
	got, err := code.Reconstruct(code.Project(sample.Other("xyz")).Get())
	require.NoError(t, err)
	assert.Equal(t, sample.Other(""), got)
	assert.NotEqual(t, sample.Other("xyz"), got)
}

func TestCodeRejectsUnknown(t *testing.T) {
	t.Parallel()

	for _, raw := range []int64{2, -1, 998, 1000} {
		_, err := sample.Code{}.Reconstruct(raw)
		require.Error(t, err)
		assert.ErrorIs(t, err, tagged.ErrUnrecognizedCode)

		var convErr *tagged.ConversionError
		require.ErrorAs(t, err, &convErr)
		assert.Equal(t, raw, convErr.Raw)
		assert.Equal(t, "default", convErr.Profile)
		assert.Equal(t, "sample.Value", convErr.Domain)
	}

	_, err := sample.Code{}.Reconstruct(2)
	assert.EqualError(t, err, `cannot reconstruct sample.Value from 2 under profile "default": unrecognized code`)
}

func TestLabelReconstruct(t *testing.T) {
	t.Parallel()

	label := sample.Label{}

	for _, v := range allVariants() {
		got, err := label.Reconstruct(label.Project(v).Get())
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	got, err := label.Reconstruct("samplea")
	require.NoError(t, err)
	assert.Equal(t, sample.Other("samplea"), got, "labels are case-sensitive")

	got, err = label.Reconstruct(label.Project(sample.Other("SampleB")).Get())
	require.NoError(t, err)
	assert.Equal(t, sample.B(), got, "a payload equal to a label reads back as the label")
}

func TestJapaneseLabelReconstruct(t *testing.T) {
	t.Parallel()

	ja := sample.JapaneseLabel{}

	for _, v := range allVariants() {
		got, err := ja.Reconstruct(ja.Project(v).Get())
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	tests := []struct {
		name     string
		input    string
		expected sample.Value
	}{
		{"full-width letter", "サンプルＡ", sample.A()},
		{"half-width katakana", "ｻﾝﾌﾟﾙB", sample.B()},
		{"exact payload is verbatim", "その他: ＡＢ", sample.Other("ＡＢ")},
		{"full-width colon", "その他： x", sample.Other("x")},
		{"empty payload", "その他: ", sample.Other("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ja.Reconstruct(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestJapaneseLabelRejects(t *testing.T) {
	t.Parallel()

	_, err := sample.JapaneseLabel{}.Reconstruct("サンプルBB")
	require.ErrorIs(t, err, tagged.ErrUnrecognizedCode)

	var convErr *tagged.ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, "サンプルB", convErr.Suggestion)
	assert.Equal(t, "japanese", convErr.Profile)

	// equidistant from both labels
	for _, input := range []string{"サンプルC", "サンプルZ"} {
		_, err = sample.JapaneseLabel{}.Reconstruct(input)
		require.ErrorAs(t, err, &convErr)
		assert.Empty(t, convErr.Suggestion, input)
	}

	_, err = sample.JapaneseLabel{}.Reconstruct("SampleA")
	require.ErrorAs(t, err, &convErr)
	assert.Empty(t, convErr.Suggestion)
}

func TestOptionalLifting(t *testing.T) {
	t.Parallel()

	codes := tagged.Lift(sample.Code{}.Project)

	none := codes.Project(tagged.None[sample.Value]())
	assert.False(t, none.Get().IsSome())

	some := codes.Project(tagged.Some(sample.A()))
	assert.Equal(t, tagged.Some(int64(0)), some.Get())
	assert.Equal(t, tagged.New[tagged.Option[int64], sample.Value, profile.Default](tagged.Some(int64(0))), some)

	labels := tagged.Lift(sample.JapaneseLabel{}.Project)
	assert.Equal(t, tagged.Some("その他: q"), labels.Project(tagged.Some(sample.Other("q"))).Get())
	assert.Equal(t, "japanese", labels.Project(tagged.None[sample.Value]()).ProfileName())
}
