package scoring

import "math"

// subScoreCeiling is the normalized top of every category band.
const subScoreCeiling = 11

// rescale projects a raw weighted sum onto the 0-11 band. max is the highest
// sum the category's weight tables can produce.
func rescale(raw, max int) int {
	return int(math.Round(float64(raw) / float64(max) * subScoreCeiling))
}
