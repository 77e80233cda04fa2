// Package msg writes the one-line table messages shown after each action.
package msg

import (
	"fmt"
	"strings"

	"github.com/ratel-online/partybox/uno/card"
	"github.com/ratel-online/partybox/uno/card/color"
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

func (m MessageWriter) FirstCardPlayed(c card.Card) string {
	return fmt.Sprintf("First card is %s.", c.Name())
}

func (m MessageWriter) FirstPlayerMustPickColor(playerName string) string {
	return fmt.Sprintf("%s, choose a color before anyone plays!", playerName)
}

func (m MessageWriter) PlayerDrewCards(playerName string, amount int) string {
	switch amount {
	case 0:
		return fmt.Sprintf("%s could not draw, no cards left!", playerName)
	case 1:
		return fmt.Sprintf("%s drew a card!", playerName)
	}
	return fmt.Sprintf("%s drew %d cards!", playerName, amount)
}

func (m MessageWriter) PlayerPassed(playerName string) string {
	return fmt.Sprintf("%s passed!", playerName)
}

func (m MessageWriter) PlayerPickedColor(playerName string, c color.Color) string {
	return fmt.Sprintf("%s picked color %s!", playerName, c.Name())
}

func (m MessageWriter) PlayerPlayedCard(playerName string, c card.Card) string {
	return fmt.Sprintf("%s played %s!", playerName, c.Name())
}

func (m MessageWriter) PlayerTurnSkipped(playerName string) string {
	return fmt.Sprintf("%s's turn skipped!", playerName)
}

func (m MessageWriter) PlayerTurnStarted(playerName string) string {
	return fmt.Sprintf("It's %s's turn!", playerName)
}

func (m MessageWriter) DeckReshuffled(amount int) string {
	return fmt.Sprintf("Discard pile reshuffled, %d cards back in the deck.", amount)
}

func (m MessageWriter) TurnOrderReversed() string {
	return "Turn order has been reversed!"
}

func (m MessageWriter) WinnerFound(playerName string) string {
	return fmt.Sprintf("%s wins!", playerName)
}
