package layout

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"value-projector/internal/diagnostic"
	"value-projector/internal/dispatch"
	"value-projector/profile"
	"value-projector/record"
	"value-projector/sample"
	"value-projector/tagged"
)

func bindSample(t *testing.T) *Bound[sample.Value] {
	t.Helper()

	l, err := Parse([]byte(sampleLayout))
	require.NoError(t, err)

	b, err := Bind(l, dispatch.Samples(), nil)
	require.NoError(t, err)

	return b
}

func TestBind_Invalid(t *testing.T) {
	l := &Layout{Version: "1", Profile: "default", Columns: []Column{{Name: "x", Binding: "nope"}}}

	_, err := Bind(l, dispatch.Samples(), nil)
	require.ErrorIs(t, err, ErrInvalidLayout)
	require.ErrorIs(t, err, dispatch.ErrUnknownBinding)

	l = &Layout{Version: "3", Profile: "default", Columns: []Column{{Name: "x", Binding: "code", Profile: "klingon"}}}

	_, err = Bind(l, dispatch.Samples(), nil)
	require.ErrorIs(t, err, ErrInvalidLayout)
	require.ErrorIs(t, err, ErrUnsupportedVersion)
	require.ErrorIs(t, err, profile.ErrUnknownProfile)
	assert.NotErrorIs(t, err, dispatch.ErrUnknownBinding)
}

func TestBound_EncodeRow(t *testing.T) {
	b := bindSample(t)

	cells, err := b.EncodeRow(Row[sample.Value]{
		"label":    tagged.Some(sample.Other("free")),
		"label_ja": tagged.Some(sample.B()),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"free", "サンプルB", ""}, cells)

	_, err = b.EncodeRow(Row[sample.Value]{"label": tagged.Some(sample.A())})
	require.ErrorIs(t, err, ErrMissingValue)

	var fe *record.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "label_ja", fe.Column)
}

func TestBound_DecodeRow(t *testing.T) {
	b := bindSample(t)

	row, err := b.DecodeRow([]string{"SampleA", "その他: x", "1"})
	require.NoError(t, err, spew.Sdump(row))
	assert.Equal(t, Row[sample.Value]{
		"label":    tagged.Some(sample.A()),
		"label_ja": tagged.Some(sample.Other("x")),
		"code":     tagged.Some(sample.B()),
	}, row)

	row, err = b.DecodeRow([]string{"SampleB", "サンプルA", ""})
	require.NoError(t, err)
	assert.False(t, row["code"].IsSome())

	_, err = b.DecodeRow([]string{"SampleB", "unknown", ""})
	require.ErrorIs(t, err, tagged.ErrUnrecognizedCode)

	_, err = b.DecodeRow([]string{"SampleB"})
	require.Error(t, err)
}

func TestBound_Export(t *testing.T) {
	b := bindSample(t)

	rows := []Row[sample.Value]{
		{"label": tagged.Some(sample.A()), "label_ja": tagged.Some(sample.A()), "code": tagged.Some(sample.A())},
		{"label": tagged.Some(sample.B()), "label_ja": tagged.Some(sample.Other("x"))},
	}

	var buf bytes.Buffer
	require.NoError(t, b.Export(context.Background(), &buf, rows, 2))

	assert.Equal(t, "label,label_ja,code\nSampleA,サンプルA,0\nSampleB,その他: x,\n", buf.String())
}

func TestBound_Import(t *testing.T) {
	b := bindSample(t)

	input := strings.Join([]string{
		"Label,LABEL_JA,code,extra",
		"SampleA,サンプルB,0,x",
		"SampleB,サンプルAA,1,x",
		"other,その他: y,,x",
	}, "\n") + "\n"

	rows, diags, err := b.Import(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, tagged.Some(sample.B()), rows[0]["label_ja"])
	assert.Equal(t, tagged.Some(sample.Other("other")), rows[1]["label"])
	assert.False(t, rows[1]["code"].IsSome())

	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, "extra", diags.Warnings[0].Column)

	require.Len(t, diags.Errors, 1)
	assert.Equal(t, diagnostic.CodeUnrecognizedCode, diags.Errors[0].Code)
	assert.Equal(t, 3, diags.Errors[0].Line)
	assert.Equal(t, "label_ja", diags.Errors[0].Column)
	assert.Equal(t, []string{"サンプルA"}, diags.Errors[0].Suggestions)
}

func TestBound_ImportMissingColumn(t *testing.T) {
	b := bindSample(t)

	rows, diags, err := b.Import(strings.NewReader("label_ja\nサンプルA\n"))
	require.ErrorIs(t, err, ErrMissingColumn)
	assert.Nil(t, rows)
	assert.True(t, diags.HasErrors())

	rows, _, err = b.Import(strings.NewReader("label,label_ja\nSampleA,サンプルA\n"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.False(t, rows[0]["code"].IsSome())
}
