package systems

import "github.com/pthm-cable/blobs/components"

// StepBlob runs one tick for a single blob: home-seeking, targeting, then
// the movement update. Blobs that are dead or already home are skipped.
//
// StepBlob writes only to b and, through Eat, to the pool's claimed flags,
// so distinct blobs may be stepped concurrently as long as each caller uses
// its own rng.
func StepBlob(b *components.Blob, env *Env, rng Rand) {
	if !b.Active() {
		return
	}
	SeekHome(b, env.Params)
	AssignTarget(b, env.Grid, env.Pool)
	UpdateBlob(b, env, rng)
}

// SeekHome applies the home-seeking heuristic. Having eaten exactly
// ReturnHomeAfterEating forces the target home. Having eaten more than
// MinReturnHomeAfterEating sends a blob that is not chasing food home once
// the trip costs no more than its energy minus one tick's speed.
func SeekHome(b *components.Blob, p Params) {
	if b.NumEaten == p.ReturnHomeAfterEating {
		b.Target = components.SeekHome()
		return
	}
	if b.NumEaten > p.MinReturnHomeAfterEating && b.Target.Kind != components.TargetFood {
		if Distance(b.X, b.Y, b.Home.X, b.Home.Y) <= b.Energy-b.Traits.Speed {
			b.Target = components.SeekHome()
		}
	}
}

// AssignTarget points the blob at the nearest visible edible food.
// A blob heading home is never diverted. A blob already chasing a live item
// keeps it unless another item is strictly closer. Returns true if the
// target changed.
func AssignTarget(b *components.Blob, grid *FoodGrid, pool *components.FoodPool) bool {
	if b.Target.Kind == components.TargetHome {
		return false
	}

	h, dsq, ok := grid.NearestEdible(pool, b.X, b.Y, b.Traits.SightDistance)
	if !ok {
		return false
	}

	if b.Target.Kind == components.TargetFood && pool.Edible(b.Target.Food) {
		if b.Target.Food == h {
			return false
		}
		cur := pool.At(b.Target.Food)
		if DistanceSq(b.X, b.Y, cur.X, cur.Y) <= dsq {
			return false
		}
	}

	b.Target = components.SeekFood(h)
	return true
}

// UpdateBlob records the trail point, then moves the blob if its energy
// covers the tick, otherwise it starves.
func UpdateBlob(b *components.Blob, env *Env, rng Rand) {
	if !b.Active() {
		return
	}
	b.Trail = append(b.Trail, b.Position())
	b.Energies = append(b.Energies, b.Energy)
	if b.Energy > b.Traits.Speed {
		Move(b, env, rng)
	} else {
		Die(b, components.DeathStarved, env.Day)
	}
}

// Move advances the blob one tick toward its target.
//
// A food target that is no longer edible becomes a wander point before the
// distance is measured. A blob short of its target steps min(speed, d)
// toward it and pays the flat cost of 2*speed. A blob standing on its
// target eats, arrives home, or picks a new wander point.
func Move(b *components.Blob, env *Env, rng Rand) {
	p := env.Params
	if b.Target.Kind == components.TargetFood && !env.Pool.Edible(b.Target.Food) {
		b.Blocked++
		b.Target = components.Wander(RandomCoord(rng, p.WorldW, p.WorldH))
	}

	tx, ty := targetPoint(b, env.Pool)
	d := Distance(b.X, b.Y, tx, ty)
	if d > 0 {
		if d > b.Traits.Speed {
			r := b.Traits.Speed / d
			b.X += (tx - b.X) * r
			b.Y += (ty - b.Y) * r
		} else {
			b.X, b.Y = tx, ty
		}
		b.Energy = max(b.Energy-b.Traits.Speed*2, 0)
		return
	}

	switch b.Target.Kind {
	case components.TargetFood:
		// The item may have been claimed since the check above.
		if !Eat(b, env.Pool, b.Target.Food) {
			b.Blocked++
		}
		b.Target = components.Wander(RandomCoord(rng, p.WorldW, p.WorldH))
	case components.TargetHome:
		b.ReturnedHome = true
	default:
		b.Target = components.Wander(RandomCoord(rng, p.WorldW, p.WorldH))
	}
}

// targetPoint resolves the target variant to a position.
func targetPoint(b *components.Blob, pool *components.FoodPool) (x, y float64) {
	switch b.Target.Kind {
	case components.TargetFood:
		f := pool.At(b.Target.Food)
		return f.X, f.Y
	case components.TargetHome:
		return b.Home.X, b.Home.Y
	default:
		return b.Target.Point.X, b.Target.Point.Y
	}
}
