package model

import "testing"

func TestPoolGetReturnsDeadGrid(t *testing.T) {
	pool := NewGridPool()

	used := NewGrid(6, 6)
	Randomize(used, 1, 1)
	GridToPool(used, pool)

	// sync.Pool may or may not hand back the same grid; either way it must be clean
	for _, size := range [][2]int{{6, 6}, {3, 8}, {0, 2}} {
		g := pool.Get(size[0], size[1])
		if g.GetWidth() != size[0] || g.GetHeight() != size[1] {
			t.Fatalf("got %dx%d, expected %dx%d", g.GetWidth(), g.GetHeight(), size[0], size[1])
		}
		for y, row := range g.cells {
			if len(row) != size[0] {
				t.Fatalf("row %d has %d columns, expected %d", y, len(row), size[0])
			}
		}
		assertAllDead(t, g)
		GridToPool(g, pool)
	}
}

func TestNextGenerationWithPoolMatchesUpdate(t *testing.T) {
	pool := NewGridPool()
	g := NewGrid(16, 9)
	SeedInterestingPatterns(g, 0.3, 3)

	cur := g
	plain := g
	for range 10 {
		next := cur.NextGeneration(pool)
		if cur != g {
			GridToPool(cur, pool)
		}
		cur = next
		plain = plain.Update()

		if cur.Fingerprint() != plain.Fingerprint() {
			t.Fatal("pooled generation diverged from unpooled generation")
		}
	}
}

func TestGridToPoolNilIsNoop(t *testing.T) {
	g := NewGrid(2, 2)
	g.SetState(NewLocation(1, 1), true)

	GridToPool(g, nil)
	GridToPool(nil, NewGridPool())

	if !g.IsAlive(NewLocation(1, 1)) {
		t.Fatal("GridToPool with a nil pool should leave the grid alone")
	}
}
