// Package msg writes the one-line table messages of the domino table.
package msg

import (
	"fmt"
	"strings"

	"github.com/ratel-online/partybox/domino/tile"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func Join(lines ...string) string {
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		if line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}

func (m MessageWriter) StartingPlayer(playerName string, double int) string {
	if double < 0 {
		return fmt.Sprintf("Nobody holds a double, %s starts with the heaviest tile.", playerName)
	}
	return fmt.Sprintf("%s holds the double %d and starts.", playerName, double)
}

func (m MessageWriter) PlayerPlayedTile(playerName string, t tile.Tile, end string) string {
	if end == "" {
		return fmt.Sprintf("%s opened the board with %s!", playerName, t)
	}
	return fmt.Sprintf("%s played %s on the %s end!", playerName, t, end)
}

func (m MessageWriter) PlayerDrewTile(playerName string, left int) string {
	return fmt.Sprintf("%s drew from the boneyard, %d left.", playerName, left)
}

func (m MessageWriter) PlayerPassed(playerName string) string {
	return fmt.Sprintf("%s passed!", playerName)
}

func (m MessageWriter) PlayerTurnStarted(playerName string) string {
	return fmt.Sprintf("It's %s's turn!", playerName)
}

func (m MessageWriter) GameBlocked(playerName string, pips int) string {
	return fmt.Sprintf("Game blocked! %s has the lowest count with %d pips.", playerName, pips)
}

func (m MessageWriter) WinnerFound(playerName string) string {
	return fmt.Sprintf("%s wins!", playerName)
}
