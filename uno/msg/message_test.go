package msg_test

import (
	"testing"

	"github.com/ratel-online/partybox/uno/card"
	"github.com/ratel-online/partybox/uno/card/color"
	"github.com/ratel-online/partybox/uno/msg"
	"github.com/stretchr/testify/require"
)

func TestJoin(t *testing.T) {
	require.Equal(t, "a b", msg.Join("a", "", "b"))
	require.Equal(t, "", msg.Join())
}

func TestPlayerDrewCards(t *testing.T) {
	require.Equal(t, "Ann could not draw, no cards left!", msg.Message.PlayerDrewCards("Ann", 0))
	require.Equal(t, "Ann drew a card!", msg.Message.PlayerDrewCards("Ann", 1))
	require.Equal(t, "Ann drew 4 cards!", msg.Message.PlayerDrewCards("Ann", 4))
}

func TestPlayerPlayedCard(t *testing.T) {
	require.Equal(t, "Ann played red 5!", msg.Message.PlayerPlayedCard("Ann", card.NewCard(1, color.Red, card.Five)))
	require.Equal(t, "Ann played wild draw four!", msg.Message.PlayerPlayedCard("Ann", card.NewCard(2, color.Wild, card.WildDrawFour)))
}
