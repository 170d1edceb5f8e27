package aoc2022day08

// Processor folds one ray of cells into per-cell results. State is local to
// the ray and is dropped by Reset.
type Processor interface {
	Reset()
	Process(c *Cell)
}

type VisibilityProcessor struct {
	maxSeen uint8
	seen    bool
}

func NewVisibilityProcessor() Processor {
	return &VisibilityProcessor{}
}

func (p *VisibilityProcessor) Reset() {
	*p = VisibilityProcessor{}
}

// Process marks c visible unless an earlier tree on the ray is at least as tall.
func (p *VisibilityProcessor) Process(c *Cell) {
	if p.seen && c.Height <= p.maxSeen {
		return
	}
	c.Visible = true
	p.maxSeen = c.Height
	p.seen = true
}

type ScenicProcessor struct {
	// distance[h] is how far back the nearest tree of height >= h stands
	distance [10]uint64
}

func NewScenicProcessor() Processor {
	return &ScenicProcessor{}
}

func (p *ScenicProcessor) Reset() {
	clear(p.distance[:])
}

func (p *ScenicProcessor) Process(c *Cell) {
	c.ScenicScore *= p.distance[c.Height]
	for h := range p.distance {
		if h <= int(c.Height) {
			p.distance[h] = 1
		} else {
			p.distance[h]++
		}
	}
}

// Scan runs one processor per direction over every row and column of g.
// Both directions of an axis advance together, one cell per step.
func Scan(g Grid, newProcessor func() Processor) {
	forward, backward := newProcessor(), newProcessor()
	down, up := newProcessor(), newProcessor()

	rows, cols := g.Rows(), g.Cols()

	for i := 0; i < rows; i++ {
		forward.Reset()
		backward.Reset()
		for j := 0; j < cols; j++ {
			forward.Process(&g[i][j])
			backward.Process(&g[i][cols-1-j])
		}
	}

	for j := 0; j < cols; j++ {
		down.Reset()
		up.Reset()
		for i := 0; i < rows; i++ {
			down.Process(&g[i][j])
			up.Process(&g[rows-1-i][j])
		}
	}
}
