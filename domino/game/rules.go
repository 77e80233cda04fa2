package game

import "github.com/ratel-online/partybox/domino/tile"

// CanPlayTile reports whether t matches either open end. Any tile opens an empty board.
func CanPlayTile(t tile.Tile, leftEnd, rightEnd *int) bool {
	if leftEnd == nil && rightEnd == nil {
		return true
	}
	return (leftEnd != nil && t.Matches(*leftEnd)) || (rightEnd != nil && t.Matches(*rightEnd))
}

// HighestDouble returns the pip value of the highest double in hand, or -1.
func HighestDouble(hand []tile.Tile) int {
	highest := -1
	for _, t := range hand {
		if t.IsDouble() && t.SideA > highest {
			highest = t.SideA
		}
	}
	return highest
}

// StartingPlayer picks the holder of the highest double. Without any double
// the holder of the heaviest tile starts; equal candidates go to the lowest index.
func StartingPlayer(players []*Player) int {
	starter, highest := 0, -1
	for index, player := range players {
		if double := HighestDouble(player.Hand); double > highest {
			starter, highest = index, double
		}
	}
	if highest >= 0 {
		return starter
	}

	var heaviest *tile.Tile
	for index, player := range players {
		for i := range player.Hand {
			if heaviest == nil || player.Hand[i].Heavier(*heaviest) {
				starter, heaviest = index, &player.Hand[i]
			}
		}
	}
	return starter
}
