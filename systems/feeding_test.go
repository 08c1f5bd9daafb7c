package systems

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/pthm-cable/blobs/components"
)

func TestEatOnce(t *testing.T) {
	env := newEnv(components.Coord{X: 10, Y: 10})
	a := newTestBlob(10, 10, 15, 30)
	b := newTestBlob(10, 10, 15, 30)

	if !Eat(a, env.Pool, 0) {
		t.Fatal("first eat should succeed")
	}
	if Eat(b, env.Pool, 0) {
		t.Fatal("second eat should fail")
	}
	if b.NumEaten != 0 || b.Energy != 300 {
		t.Errorf("loser changed: eaten=%d energy=%v", b.NumEaten, b.Energy)
	}
	if a.NumEaten != 1 || a.Energy != 400 {
		t.Errorf("winner: eaten=%d energy=%v, want 1 and 400", a.NumEaten, a.Energy)
	}
}

func TestEatOutOfRangeHandle(t *testing.T) {
	env := newEnv(components.Coord{X: 10, Y: 10})
	b := newTestBlob(10, 10, 15, 30)
	if Eat(b, env.Pool, 5) || Eat(b, env.Pool, components.NoFood) {
		t.Error("invalid handles must not be eaten")
	}
}

func TestEatConcurrentExactlyOnce(t *testing.T) {
	const eaters = 64
	env := newEnv(components.Coord{X: 10, Y: 10})

	blobs := make([]*components.Blob, eaters)
	for i := range blobs {
		blobs[i] = newTestBlob(10, 10, 15, 30)
	}

	var wins atomic.Int32
	var wg sync.WaitGroup
	start := make(chan struct{})
	for _, b := range blobs {
		wg.Add(1)
		go func(b *components.Blob) {
			defer wg.Done()
			<-start
			if Eat(b, env.Pool, 0) {
				wins.Add(1)
			}
		}(b)
	}
	close(start)
	wg.Wait()

	if wins.Load() != 1 {
		t.Fatalf("wins = %d, want exactly 1", wins.Load())
	}

	var gained float64
	var meals int
	for _, b := range blobs {
		gained += b.Energy - 300
		meals += b.NumEaten
	}
	if gained != env.Params.FoodEnergy || meals != 1 {
		t.Errorf("energy gained = %v over %d meals, want %v over 1", gained, meals, env.Params.FoodEnergy)
	}
}
