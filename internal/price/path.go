package price

// Path is a fixed-capacity ring buffer of prices. When full, pushing evicts
// the oldest entry.
type Path struct {
	buf   []float64
	start int
	n     int
}

// NewPath creates a Path holding at most size prices.
func NewPath(size int) *Path {
	if size <= 0 {
		size = 1
	}
	return &Path{buf: make([]float64, size)}
}

// Push appends p, evicting the oldest price when full.
func (p *Path) Push(v float64) {
	if p.n < len(p.buf) {
		p.buf[(p.start+p.n)%len(p.buf)] = v
		p.n++
		return
	}
	p.buf[p.start] = v
	p.start = (p.start + 1) % len(p.buf)
}

// Len returns the number of buffered prices.
func (p *Path) Len() int { return p.n }

// Cap returns the capacity.
func (p *Path) Cap() int { return len(p.buf) }

// Values returns a copy of the buffered prices, oldest first.
func (p *Path) Values() []float64 {
	out := make([]float64, p.n)
	for i := 0; i < p.n; i++ {
		out[i] = p.buf[(p.start+i)%len(p.buf)]
	}
	return out
}

// Reset empties the buffer.
func (p *Path) Reset() {
	p.start, p.n = 0, 0
}
