package snake

import (
	"math/rand/v2"
)

// SpawnFood places one food at a random cell and returns it. Every call
// seeds a fresh generator from the configured seed source. Food may land on
// the snake or on other food.
func (w *World) SpawnFood() Cell {
	seed := uint64(w.cfg.Seed())
	rng := rand.New(rand.NewPCG(seed, seed))

	cell := Cell{
		X: rng.IntN(w.cfg.Arena.Width),
		Y: rng.IntN(w.cfg.Arena.Height),
	}
	w.storage.Spawn(cell, Food{}, FoodSize)
	w.stats.Get().FoodSpawned++

	w.logger.Debug("food spawned", "cell", cell)
	return cell
}
