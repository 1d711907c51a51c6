package main

import (
	"github.com/younwookim/hookarcade/internal/application/replay"
	"github.com/younwookim/hookarcade/internal/application/round"
	"github.com/younwookim/hookarcade/internal/application/state"
)

// playback runs a recording to the end without a window.
// It returns the final round and the number of ticks executed.
func playback(data *replay.ReplayData, cfg round.Config) (state.Round, uint64, error) {
	r := replay.NewReplayer(*data)
	c := r.NewController(cfg)
	if err := r.Run(c); err != nil {
		return state.Round{}, 0, err
	}
	return c.Round(), c.Ticks(), nil
}
