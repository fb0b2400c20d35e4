package decay

// Point is one sample of a curve.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Linspace returns n evenly spaced values over [start, stop], both ends
// included. n == 1 yields just start; n <= 0 yields nil.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	xs := make([]float64, n)
	if n == 1 {
		xs[0] = start
		return xs
	}
	step := (stop - start) / float64(n-1)
	for i := range xs {
		xs[i] = start + float64(i)*step
	}
	xs[n-1] = stop
	return xs
}

// Sweep evaluates p over n evenly spaced positions in [0, stop].
func Sweep(p Params, stop float64, n int) ([]Point, error) {
	if !nonNegative(stop) {
		return nil, invalid("sweep end must be non-negative, got %v", stop)
	}
	if n < 2 {
		return nil, invalid("sweep needs at least 2 points, got %d", n)
	}
	xs := Linspace(0, stop, n)
	points := make([]Point, len(xs))
	for i, x := range xs {
		r, err := p.At(x)
		if err != nil {
			return nil, err
		}
		points[i] = Point{X: x, Y: r.Remaining}
	}
	return points, nil
}

// Split separates points into x and y slices, the shape chart series take.
func Split(points []Point) (xs, ys []float64) {
	xs = make([]float64, len(points))
	ys = make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}
	return xs, ys
}
