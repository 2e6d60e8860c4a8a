package grouper

import "math"

// EstimatedShotReduction returns the R-hat estimate of how many times
// fewer shots the grouping needs compared to measuring every operator
// individually:
//
//	R = (sum of all |a|)^2 / (sum over groups of sqrt(sum of a^2))^2
//
// following Crawford et al., Quantum 5, 385 (2021). Identity terms need
// no measurement and are skipped. A grouping without measurable weight
// yields zero.
func EstimatedShotReduction(groups []Collection) float64 {
	var numerator, denominator float64
	for _, g := range groups {
		var squares float64
		for _, t := range g.Terms {
			if t.Op.IsIdentity() {
				continue
			}
			a := math.Abs(t.Coefficient)
			numerator += a
			squares += a * a
		}
		denominator += math.Sqrt(squares)
	}
	if denominator == 0 {
		return 0
	}
	return numerator * numerator / (denominator * denominator)
}
