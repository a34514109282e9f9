package game

import "strings"

const (
	boardSize  = 5
	boardCells = boardSize * boardSize

	markerUnknown = "O"
	markerGuessed = "X"
	markerShip    = "S"
)

// renderBoard maps guesses onto a boardSize x boardSize grid and returns one
// space-joined string per row. Cell n (1..25) lives at row (n-1)/5, column
// (n-1)%5, so cells 5, 10, 15, 20 and 25 land in the last column of their
// row. When revealShip is set and the ship was hit, its cell shows S instead
// of X.
func renderBoard(guesses []int, revealShip bool, shipLocation int) []string {
	cells := make([]string, boardCells)
	for i := range cells {
		cells[i] = markerUnknown
	}

	for _, g := range guesses {
		if g < 1 || g > boardCells {
			continue
		}
		cells[g-1] = markerGuessed
	}

	if revealShip {
		for _, g := range guesses {
			if g == shipLocation {
				cells[shipLocation-1] = markerShip
				break
			}
		}
	}

	rows := make([]string, boardSize)
	for r := 0; r < boardSize; r++ {
		rows[r] = strings.Join(cells[r*boardSize:(r+1)*boardSize], " ")
	}
	return rows
}
