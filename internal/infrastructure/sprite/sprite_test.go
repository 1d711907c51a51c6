package sprite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/hookarcade/internal/domain/entity"
)

func TestFor_Sizes(t *testing.T) {
	tests := []struct {
		sprite entity.Sprite
		w, h   int
	}{
		{entity.SpriteSplash, 128, 64},
		{entity.SpriteActorBody, 18, 13},
		{entity.SpriteHook, 5, 9},
		{entity.SpriteCreepRadiant, 13, 11},
		{entity.SpriteCreepDire, 13, 11},
	}

	for _, tt := range tests {
		b, ok := For(tt.sprite)
		require.True(t, ok, "sprite %d", tt.sprite)
		assert.Equal(t, tt.w, b.Width, "sprite %d", tt.sprite)
		assert.Equal(t, tt.h, b.Height, "sprite %d", tt.sprite)
		assert.Positive(t, b.count(), "sprite %d", tt.sprite)
	}

	_, ok := For(entity.Sprite(99))
	assert.False(t, ok)
}

func TestParse(t *testing.T) {
	b := Parse(
		"#.",
		".#",
	)

	assert.True(t, b.At(0, 0))
	assert.False(t, b.At(1, 0))
	assert.True(t, b.At(1, 1))
	assert.False(t, b.At(-1, 0))
	assert.False(t, b.At(2, 2))
	assert.Equal(t, "#.\n.#\n", b.String())

	assert.Panics(t, func() {
		Parse("##", "#")
	})
}

func TestSplash_LetteringInsideBorder(t *testing.T) {
	b, _ := For(entity.SpriteSplash)

	assert.True(t, b.At(0, 0))
	assert.True(t, b.At(127, 63))
	// First stroke of the scaled H.
	assert.True(t, b.At(34, 4))
	assert.True(t, b.At(37, 23))
	assert.False(t, b.At(64, 50))
}
