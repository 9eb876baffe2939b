// Package navigation provides tile grid pathfinding and line-of-sight tests
// over the static obstacle set of a stage.
package navigation

import (
	"math"

	"github.com/younwookim/abode/internal/domain/geom"
)

// Cell is a tile coordinate on the grid
type Cell struct {
	X, Y int
}

// 4-connected neighbor offsets, no diagonals
var neighborOffsets = [4]Cell{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
}

// Grid is a uniform tile overlay of the arena with blocked cells
// precomputed from the obstacle rects. Obstacles are immutable during play,
// so a Grid is built once per stage.
type Grid struct {
	TileSize   float64
	Cols, Rows int
	blocked    []bool

	// Reusable BFS buffers
	prev  []int
	queue []int
}

// NewGrid overlays a grid of tileSize cells on a width*height arena and marks
// every cell an obstacle overlaps, including the final partial cell.
func NewGrid(obstacles []geom.Rect, tileSize, width, height float64) *Grid {
	if tileSize <= 0 {
		tileSize = 1
	}
	cols := int(math.Ceil(width / tileSize))
	rows := int(math.Ceil(height / tileSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	g := &Grid{
		TileSize: tileSize,
		Cols:     cols,
		Rows:     rows,
		blocked:  make([]bool, cols*rows),
		prev:     make([]int, cols*rows),
		queue:    make([]int, 0, cols*rows),
	}

	for _, o := range obstacles {
		if o.W <= 0 || o.H <= 0 {
			continue
		}
		x0 := int(math.Floor(o.Left() / tileSize))
		x1 := int(math.Ceil(o.Right()/tileSize)) - 1
		y0 := int(math.Floor(o.Top() / tileSize))
		y1 := int(math.Ceil(o.Bottom()/tileSize)) - 1
		for ty := max(y0, 0); ty <= min(y1, rows-1); ty++ {
			for tx := max(x0, 0); tx <= min(x1, cols-1); tx++ {
				g.blocked[ty*cols+tx] = true
			}
		}
	}

	return g
}

// CellAt converts a pixel position to its tile coordinate
func (g *Grid) CellAt(p geom.Vec2) Cell {
	return Cell{
		X: int(math.Floor(p.X / g.TileSize)),
		Y: int(math.Floor(p.Y / g.TileSize)),
	}
}

// CenterOf returns the pixel center of a tile
func (g *Grid) CenterOf(c Cell) geom.Vec2 {
	return geom.Vec2{
		X: float64(c.X)*g.TileSize + g.TileSize/2,
		Y: float64(c.Y)*g.TileSize + g.TileSize/2,
	}
}

// SameCell reports whether two pixel positions fall in the same tile
func (g *Grid) SameCell(a, b geom.Vec2) bool {
	return g.CellAt(a) == g.CellAt(b)
}

// InBounds reports whether c lies on the grid
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Cols && c.Y >= 0 && c.Y < g.Rows
}

// Blocked reports whether c is covered by an obstacle. Cells off the grid
// are blocked.
func (g *Grid) Blocked(c Cell) bool {
	if !g.InBounds(c) {
		return true
	}
	return g.blocked[c.Y*g.Cols+c.X]
}

// FindPath runs a breadth-first search from the start tile to the goal tile
// and returns the tile centers of a minimum-hop path, start and goal
// included. It returns nil when both positions share a tile or when the
// goal cannot be reached.
func (g *Grid) FindPath(start, goal geom.Vec2) []geom.Vec2 {
	cells := g.FindCells(g.CellAt(start), g.CellAt(goal))
	if len(cells) == 0 {
		return nil
	}

	path := make([]geom.Vec2, len(cells))
	for i, c := range cells {
		path[i] = g.CenterOf(c)
	}
	return path
}

// FindCells is FindPath on tile coordinates
func (g *Grid) FindCells(from, to Cell) []Cell {
	if from == to || !g.InBounds(from) || g.Blocked(to) {
		return nil
	}

	for i := range g.prev {
		g.prev[i] = -1
	}
	g.queue = g.queue[:0]

	startIdx := from.Y*g.Cols + from.X
	goalIdx := to.Y*g.Cols + to.X
	g.prev[startIdx] = startIdx
	g.queue = append(g.queue, startIdx)

	found := false
	for head := 0; head < len(g.queue); head++ {
		cur := g.queue[head]
		if cur == goalIdx {
			found = true
			break
		}
		cx, cy := cur%g.Cols, cur/g.Cols
		for _, off := range neighborOffsets {
			n := Cell{cx + off.X, cy + off.Y}
			if g.Blocked(n) {
				continue
			}
			idx := n.Y*g.Cols + n.X
			if g.prev[idx] != -1 {
				continue
			}
			g.prev[idx] = cur
			g.queue = append(g.queue, idx)
		}
	}

	if !found {
		return nil
	}

	// Walk predecessors back from the goal, then reverse
	var cells []Cell
	for idx := goalIdx; ; idx = g.prev[idx] {
		cells = append(cells, Cell{idx % g.Cols, idx / g.Cols})
		if idx == startIdx {
			break
		}
	}
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
	return cells
}
