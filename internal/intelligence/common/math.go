// Package common holds small helpers shared by the intelligence engines.
package common

// Clamp01 bounds v to [0,1]. Every confidence, strength, and score value in
// the analysis pipeline passes through this after arithmetic combination;
// downstream aggregation assumes bounded inputs.
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

//Personal.AI order the ending
