package splash

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/hookarcade/internal/application/scene"
)

type stubScene struct{}

func (stubScene) Update(float64) (scene.Scene, error) { return nil, nil }
func (stubScene) Draw(*ebiten.Image)                  {}
func (stubScene) OnEnter()                            {}
func (stubScene) OnExit()                             {}

func TestSplash_TransitionsAfterDuration(t *testing.T) {
	built := 0
	s := New(2, DefaultDuration, func() scene.Scene {
		built++
		return stubScene{}
	})
	s.OnEnter()

	for i := 0; i < 59; i++ {
		next, err := s.Update(1.0 / 60.0)
		require.NoError(t, err)
		require.Nil(t, next, "update %d", i)
	}

	next, err := s.Update(1.0 / 60.0)
	require.NoError(t, err)
	assert.Equal(t, stubScene{}, next)
	assert.Equal(t, 1, built)
}

func TestSplash_OnEnterRestartsTimer(t *testing.T) {
	s := New(2, 0.5, func() scene.Scene { return stubScene{} })
	_, _ = s.Update(0.4)

	s.OnEnter()
	next, _ := s.Update(0.4)

	assert.Nil(t, next)
}
