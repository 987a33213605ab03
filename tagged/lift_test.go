package tagged_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"value-projector/profile"
	"value-projector/tagged"
)

func colorToCode(c color) tagged.Value[int64, color, profile.Default] {
	return tagged.New[int64, color, profile.Default](int64(c) + 100)
}

func TestLift(t *testing.T) {
	t.Parallel()

	lifted := tagged.Lift(colorToCode)

	got := lifted.Project(tagged.Some(color(1)))
	assert.Equal(t, tagged.New[tagged.Option[int64], color, profile.Default](tagged.Some(int64(101))), got)

	absent := lifted.Project(tagged.None[color]())
	assert.Equal(t, tagged.None[int64](), absent.Get())
	assert.Equal(t, "default", absent.ProfileName())

	text, err := absent.MarshalText()
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestLiftInverse(t *testing.T) {
	t.Parallel()

	inverse := tagged.LiftInverse(func(n int64) (color, error) {
		if n < 100 {
			return 0, tagged.Unrecognized[color, profile.Default](n)
		}
		return color(n - 100), nil
	})

	got, err := inverse(tagged.Some(int64(102)))
	require.NoError(t, err)
	assert.Equal(t, tagged.Some(color(2)), got)

	got, err = inverse(tagged.None[int64]())
	require.NoError(t, err)
	assert.False(t, got.IsSome())

	_, err = inverse(tagged.Some(int64(5)))
	assert.ErrorIs(t, err, tagged.ErrUnrecognizedCode)
}
