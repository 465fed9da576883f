package tui

// sparklineChars maps values 0..7 to Unicode block elements ▁▂▃▄▅▆▇█.
var sparklineChars = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// RingBuffer is a fixed-capacity circular buffer for float64 samples.
type RingBuffer struct {
	data  []float64
	head  int
	count int
}

// NewRingBuffer creates a ring buffer with the given capacity.
func NewRingBuffer(capacity int) *RingBuffer {
	if capacity <= 0 {
		capacity = 1
	}
	return &RingBuffer{data: make([]float64, capacity)}
}

// Push adds a sample, overwriting the oldest if full.
func (r *RingBuffer) Push(v float64) {
	r.data[r.head] = v
	r.head = (r.head + 1) % len(r.data)
	if r.count < len(r.data) {
		r.count++
	}
}

// Len returns the number of valid samples.
func (r *RingBuffer) Len() int { return r.count }

// Slice returns samples in chronological order (oldest first).
func (r *RingBuffer) Slice() []float64 {
	if r.count == 0 {
		return nil
	}
	result := make([]float64, r.count)
	start := r.head - r.count
	if start < 0 {
		start += len(r.data)
	}
	for i := 0; i < r.count; i++ {
		result[i] = r.data[(start+i)%len(r.data)]
	}
	return result
}

// Reset clears all samples.
func (r *RingBuffer) Reset() {
	r.head = 0
	r.count = 0
}

// RenderSparkline converts values (0..100) into a sparkline string using Unicode blocks.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	runes := make([]rune, len(values))
	for i, v := range values {
		if v < 0 {
			v = 0
		}
		if v > 100 {
			v = 100
		}
		idx := int(v / 100.0 * 7.0)
		if idx > 7 {
			idx = 7
		}
		runes[i] = sparklineChars[idx]
	}
	return string(runes)
}

// NormalizeSeries rescales a series to 0..100 against the given maximum.
// Used to plot colony trajectories on the braille grid. A non-positive
// maximum yields an all-zero series.
func NormalizeSeries(values []float64, max float64) []float64 {
	out := make([]float64, len(values))
	if max <= 0 {
		return out
	}
	for i, v := range values {
		out[i] = 100 * v / max
	}
	return out
}

// brailleDots maps (col 0-1, row 0-3) to the braille dot bit offsets.
// Braille character = U+2800 + sum of activated dot bits.
// Column 0: dots 1,2,3,7 (bits 0,1,2,6)
// Column 1: dots 4,5,6,8 (bits 3,4,5,7)
var brailleDots = [2][4]rune{
	{0x01, 0x02, 0x04, 0x40}, // left column
	{0x08, 0x10, 0x20, 0x80}, // right column
}

// RenderBrailleChart renders values (0..100) as a multi-row braille dot chart.
// Each braille character is 2 columns wide × 4 rows tall in the dot grid.
// The chart has `rows` text rows and `width` character columns.
// values are plotted right-aligned (most recent on the right).
func RenderBrailleChart(values []float64, width, rows int) []string {
	if width <= 0 || rows <= 0 || len(values) == 0 {
		return nil
	}

	grid := newBrailleGrid(width, rows)
	plotBraille(grid, values, width, rows)

	result := make([]string, rows)
	for r := range grid {
		result[r] = string(grid[r])
	}
	return result
}

// RenderBrailleOverlay plots two series into the same braille grid so the
// trajectories can be compared in one chart. Both series share the
// right-aligned layout.
func RenderBrailleOverlay(a, b []float64, width, rows int) []string {
	if width <= 0 || rows <= 0 || (len(a) == 0 && len(b) == 0) {
		return nil
	}

	grid := newBrailleGrid(width, rows)
	plotBraille(grid, a, width, rows)
	plotBraille(grid, b, width, rows)

	result := make([]string, rows)
	for r := range grid {
		result[r] = string(grid[r])
	}
	return result
}

func newBrailleGrid(width, rows int) [][]rune {
	grid := make([][]rune, rows)
	for r := range grid {
		grid[r] = make([]rune, width)
		for c := range grid[r] {
			grid[r][c] = 0x2800
		}
	}
	return grid
}

func plotBraille(grid [][]rune, values []float64, width, rows int) {
	dotRows := rows * 4
	dotCols := width * 2

	startIdx := 0
	if len(values) > dotCols {
		startIdx = len(values) - dotCols
	}

	for i := startIdx; i < len(values); i++ {
		dotCol := (i - startIdx) + (dotCols - min(len(values), dotCols))
		v := values[i]
		if v < 0 {
			v = 0
		}
		if v > 100 {
			v = 100
		}

		// Map value to dot row (0 = top, dotRows-1 = bottom)
		dotRow := dotRows - 1 - int(v/100.0*float64(dotRows-1))
		if dotRow < 0 {
			dotRow = 0
		}
		if dotRow >= dotRows {
			dotRow = dotRows - 1
		}

		charCol := dotCol / 2
		charRow := dotRow / 4
		subCol := dotCol % 2
		subRow := dotRow % 4

		if charCol >= 0 && charCol < width && charRow >= 0 && charRow < rows {
			grid[charRow][charCol] |= brailleDots[subCol][subRow]
		}
	}
}
