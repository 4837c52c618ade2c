package t2048

// Size is the board dimension.
const Size = 4

// Line is one row or column of the board, ordered from the edge tiles
// travel toward (the leading cell) to the opposite edge.
type Line [Size]int

// CollapseLine slides all tiles of a line toward index 0 and merges
// equal neighbours. A tile produced by a merge does not merge again in
// the same move. Returns the new line and the sum of the merged values.
func CollapseLine(line Line) (result Line, gained int) {
	writePos := 0
	mergeable := false // result[writePos-1] may still absorb a tile

	for _, v := range line {
		if v == 0 {
			continue
		}

		if mergeable && result[writePos-1] == v {
			result[writePos-1] *= 2
			gained += result[writePos-1]
			mergeable = false
			continue
		}

		result[writePos] = v
		writePos++
		mergeable = true
	}

	return result, gained
}
