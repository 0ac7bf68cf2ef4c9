package tables

import "math"

// bonusScale converts between a value and its logarithmic bonus,
// where value 1 is bonus 0 and every tenfold adds perDecade.
type bonusScale struct {
	perDecade int
}

func (b bonusScale) toBonus(value float64) int {
	return int(math.Round(float64(b.perDecade) * math.Log10(value)))
}

func (b bonusScale) toValue(bonus int) float64 {
	return math.Pow(10, float64(bonus)/float64(b.perDecade))
}
