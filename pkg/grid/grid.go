// Package grid maps a flat index onto rows of a fixed width.
package grid

// GetGridCoords returns the column and row of index when cols items fit on
// a row.
func GetGridCoords(index, cols int) (x, y int) {
	if cols <= 0 {
		return index, 0
	}
	return index % cols, index / cols
}
