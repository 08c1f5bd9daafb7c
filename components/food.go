package components

import "sync/atomic"

// FoodHandle indexes an item in the current day's FoodPool.
type FoodHandle int32

// NoFood is the zero-value sentinel for "no food item".
const NoFood FoodHandle = -1

// Food is a single edible item. Position and energy never change after
// creation; the claimed flag flips exactly once, atomically.
type Food struct {
	X, Y   float64
	Energy float64

	claimed atomic.Bool
}

// Edible reports whether the item has not been eaten yet.
func (f *Food) Edible() bool {
	return !f.claimed.Load()
}

// FoodPool is the per-day arena of food items. The slice is allocated once
// per day and never resized, so handles and item addresses stay valid until
// the pool is replaced.
type FoodPool struct {
	items []Food
}

// NewFoodPool allocates a pool of n edible items at the origin.
// Callers place items with Set before the first tick.
func NewFoodPool(n int) *FoodPool {
	return &FoodPool{items: make([]Food, n)}
}

// Set positions item h and assigns its energy.
func (p *FoodPool) Set(h FoodHandle, x, y, energy float64) {
	f := &p.items[h]
	f.X, f.Y, f.Energy = x, y, energy
}

// Len returns the number of items, eaten or not.
func (p *FoodPool) Len() int {
	if p == nil {
		return 0
	}
	return len(p.items)
}

// At returns the item for a handle.
func (p *FoodPool) At(h FoodHandle) *Food {
	return &p.items[h]
}

// Edible reports whether handle h refers to an uneaten item in this pool.
func (p *FoodPool) Edible(h FoodHandle) bool {
	if p == nil || h < 0 || int(h) >= len(p.items) {
		return false
	}
	return p.items[h].Edible()
}

// Claim atomically marks item h as eaten. Exactly one caller ever observes
// true for a given item; every other caller, concurrent or later, gets false.
func (p *FoodPool) Claim(h FoodHandle) bool {
	if p == nil || h < 0 || int(h) >= len(p.items) {
		return false
	}
	return p.items[h].claimed.CompareAndSwap(false, true)
}

// Remaining counts the items that are still edible.
func (p *FoodPool) Remaining() int {
	n := 0
	for i := range p.Len() {
		if p.items[i].Edible() {
			n++
		}
	}
	return n
}
