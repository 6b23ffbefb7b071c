package poker

import (
	"log/slog"
	"math/rand"
)

// GameOption customizes a Game while NewGame builds it.
type GameOption func(Game) Game

// WithRand sets the generator used by Shuffle.
func WithRand(r *rand.Rand) GameOption {
	return func(g Game) Game {
		g.rand = r
		return g
	}
}

// WithSeed makes shuffles reproducible.
func WithSeed(seed int64) GameOption {
	return WithRand(rand.New(rand.NewSource(seed)))
}

func WithLogger(logger *slog.Logger) GameOption {
	return func(g Game) Game {
		if logger != nil {
			g.logger = logger
		}
		return g
	}
}
