package ten

import "github.com/shopspring/decimal"

// WinScore is the score of a board holding a tile above MaxTier.
const WinScore = 100

// Score returns highest*10 + secondHighest over the values on the grid.
// Values below zero count as zero. A tile above MaxTier pins the score to
// WinScore.
func Score(g Grid) int {
	highest, second := 0, 0
	for _, row := range g {
		for _, v := range row {
			if highest < v {
				second = highest
				highest = v
			} else if second < v {
				second = v
			}
		}
	}

	if highest > MaxTier {
		return WinScore
	}
	return highest*10 + second
}

// Display converts a score to the one-decimal form shown to players
// (73 reads as 7.3, 100 as 10.0).
func Display(score int) decimal.Decimal {
	return decimal.New(int64(score), -1)
}
