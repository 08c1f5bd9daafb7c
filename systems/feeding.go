package systems

import "github.com/pthm-cable/blobs/components"

// Eat tries to consume food item h. Only the blob whose claim succeeds gains
// the item's energy and a meal; every other blob, concurrent or later, gets
// false and is left unchanged.
func Eat(b *components.Blob, pool *components.FoodPool, h components.FoodHandle) bool {
	if !pool.Claim(h) {
		return false
	}
	b.NumEaten++
	b.Energy += pool.At(h).Energy
	return true
}
