package ten

// maxMergesPerRow bounds tier growth per move.
const maxMergesPerRow = 2

// compactRow pushes tiles toward the high-index end of the row, merging
// adjacent equal tiers at most maxMergesPerRow times.
//
// The sweep runs right to left and repeats once per possible step, so a
// tile can travel the whole row in one move. Sweep order decides which
// tiles merge when three or more equal tiers are adjacent.
func compactRow(row []int) (changed bool) {
	n := len(row)
	merges := 0

	for round := 0; round <= n-2; round++ {
		for p := n - 2; p >= round; p-- {
			if row[p] == Empty {
				continue
			}

			switch {
			case row[p+1] == Empty:
				row[p+1] = row[p]
				row[p] = Empty
				changed = true
			case row[p+1] == row[p] && merges < maxMergesPerRow:
				row[p+1] = row[p] + 1
				row[p] = Empty
				merges++
				changed = true
			}
		}
	}

	return changed
}

// compact runs compactRow on every row and returns the indices of the rows
// that changed, in ascending order.
func compact(g Grid) []int {
	var changed []int
	for line := range g {
		if compactRow(g[line]) {
			changed = append(changed, line)
		}
	}
	return changed
}
