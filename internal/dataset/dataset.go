package dataset

import "github.com/pkg/errors"

// Dataset is an immutable table of fixed-width input vectors paired with a
// scalar expected output each.
type Dataset struct {
	width    int
	inputs   []float64
	expected []float64
}

// New builds a Dataset. inputs is a flat slice holding len(expected) vectors
// of width values each. Both slices are copied.
func New(width int, inputs, expected []float64) (*Dataset, error) {
	if width <= 0 {
		return nil, errors.Errorf("dataset: width must be > 0 (got %d)", width)
	}
	if len(expected) == 0 {
		return nil, errors.New("dataset: no examples")
	}
	if len(inputs) != len(expected)*width {
		return nil, errors.Errorf("dataset: %d inputs do not form %d vectors of width %d",
			len(inputs), len(expected), width)
	}
	return &Dataset{
		width:    width,
		inputs:   append([]float64(nil), inputs...),
		expected: append([]float64(nil), expected...),
	}, nil
}

// Width is the length of each input vector.
func (d *Dataset) Width() int { return d.width }

// Len is the number of examples.
func (d *Dataset) Len() int { return len(d.expected) }

// Input returns the i-th input vector. The returned slice aliases the
// dataset and must not be modified.
func (d *Dataset) Input(i int) []float64 {
	start := i * d.width
	return d.inputs[start : start+d.width : start+d.width]
}

// Expected returns the expected output of the i-th example.
func (d *Dataset) Expected(i int) float64 {
	return d.expected[i]
}
