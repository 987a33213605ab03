package tagged_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"value-projector/profile"
	"value-projector/tagged"
)

type color int

type colorName = tagged.Value[string, color, profile.Default]

type colorCode = tagged.Value[int64, color, profile.Default]

func TestValueErasesTagOnTheWire(t *testing.T) {
	t.Parallel()

	name := tagged.New[string, color, profile.Default]("red")
	code := tagged.New[int64, color, profile.Default](7)

	text, err := name.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "red", string(text))

	data, err := json.Marshal(map[string]any{"name": name, "code": code})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"red","code":7}`, string(data))

	out, err := yaml.Marshal(struct {
		Name colorName `yaml:"name"`
		Code colorCode `yaml:"code"`
	}{name, code})
	require.NoError(t, err)
	assert.Equal(t, "name: red\ncode: 7\n", string(out))
}

func TestValueReadsRawScalars(t *testing.T) {
	t.Parallel()

	var code colorCode
	require.NoError(t, code.UnmarshalText([]byte("42")))
	assert.Equal(t, int64(42), code.Get())

	require.Error(t, code.UnmarshalText([]byte("forty-two")))

	var fromJSON colorCode
	require.NoError(t, json.Unmarshal([]byte("-3"), &fromJSON))
	assert.Equal(t, tagged.New[int64, color, profile.Default](-3), fromJSON)

	var fromYAML struct {
		Name colorName `yaml:"name"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("name: anything at all\n"), &fromYAML))
	assert.Equal(t, "anything at all", fromYAML.Name.Get())
}

func TestRetag(t *testing.T) {
	t.Parallel()

	def := tagged.New[string, color, profile.Default]("red")
	ja := tagged.Retag[profile.Japanese](def)

	assert.Equal(t, "red", ja.Get())
	assert.Equal(t, "japanese", ja.ProfileName())
	assert.Equal(t, "default", def.ProfileName())
	assert.Equal(t, "red", ja.String())
}

func TestProjectFunc(t *testing.T) {
	t.Parallel()

	var p tagged.Projector[int64, color, profile.Default] = tagged.ProjectFunc[int64, color, profile.Default](func(c color) int64 {
		return int64(c) * 10
	})
	assert.Equal(t, int64(30), p.Project(color(3)).Get())

	var r tagged.Reconstructor[int64, color, profile.Default] = tagged.ReconstructFunc[int64, color, profile.Default](func(n int64) (color, error) {
		if n%10 != 0 {
			return 0, tagged.Unrecognized[color, profile.Default](n)
		}
		return color(n / 10), nil
	})

	c, err := r.Reconstruct(30)
	require.NoError(t, err)
	assert.Equal(t, color(3), c)

	_, err = r.Reconstruct(31)
	require.ErrorIs(t, err, tagged.ErrUnrecognizedCode)
	assert.Contains(t, err.Error(), "tagged_test.color")
}
