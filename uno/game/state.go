package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/partybox/consts"
	"github.com/ratel-online/partybox/uno/card"
	"github.com/ratel-online/partybox/uno/card/color"
)

// State is the whole card table. The holder of a State is authoritative and
// must apply one mutation at a time.
type State struct {
	LobbyCode          string        `json:"lobbyCode"`
	Deck               []card.Card   `json:"deck"`
	DiscardPile        Pile          `json:"discardPile"`
	Players            []*Player     `json:"players"`
	CurrentPlayerIndex int           `json:"currentPlayerIndex"`
	Direction          int           `json:"direction"`
	Status             consts.Status `json:"status"`
	WinnerID           string        `json:"winnerId"`
	SelectedColor      color.Color   `json:"selectedColor"`
	TurnActionTaken    bool          `json:"turnActionTaken"`
	LastActionMessage  string        `json:"lastActionMessage"`
}

func (s *State) Current() *Player {
	return s.Players[s.CurrentPlayerIndex]
}

func (s *State) Top() (card.Card, bool) {
	return s.DiscardPile.Top()
}

func (s *State) PlayerIndex(playerID string) int {
	for index, player := range s.Players {
		if player.ID == playerID {
			return index
		}
	}
	return -1
}

// awaitingColor is true only after a wild opened the discard pile and nobody picked a color yet.
func (s *State) awaitingColor() bool {
	top, ok := s.Top()
	return ok && top.IsWild() && s.SelectedColor == color.None
}

// Validate checks the invariants every mutation has to preserve.
func (s *State) Validate() error {
	if len(s.Players) == 0 || s.CurrentPlayerIndex < 0 || s.CurrentPlayerIndex >= len(s.Players) {
		return fmt.Errorf("%w current player index %d of %d", consts.ErrorsStateInvariant, s.CurrentPlayerIndex, len(s.Players))
	}
	seen := make(map[int]bool, DeckSize)
	count := func(cards []card.Card) error {
		for _, c := range cards {
			if seen[c.ID] {
				return fmt.Errorf("%w card %d appears twice", consts.ErrorsStateInvariant, c.ID)
			}
			seen[c.ID] = true
		}
		return nil
	}
	if err := count(s.Deck); err != nil {
		return err
	}
	if err := count(s.DiscardPile); err != nil {
		return err
	}
	for _, player := range s.Players {
		if err := count(player.Hand); err != nil {
			return err
		}
	}
	if len(seen) != DeckSize {
		return fmt.Errorf("%w %d cards on the table, want %d", consts.ErrorsStateInvariant, len(seen), DeckSize)
	}
	if s.SelectedColor != color.None {
		top, ok := s.Top()
		if !ok || !top.IsWild() || !s.SelectedColor.Concrete() {
			return fmt.Errorf("%w selected color %s without a wild on top", consts.ErrorsStateInvariant, s.SelectedColor.Name())
		}
	}
	return nil
}

func (s State) String() string {
	var lines []string
	top, _ := s.Top()
	lines = append(lines, fmt.Sprintf("Last played card: %s", top))

	var playerStatuses []string
	for _, player := range s.Players {
		playerStatuses = append(playerStatuses, fmt.Sprintf("%s (%d card(s))", player.Name, player.Hand.Size()))
	}
	lines = append(lines, fmt.Sprintf("Turn order: %s", strings.Join(playerStatuses, ", ")))
	lines = append(lines, fmt.Sprintf("Deck: %d, status: %s", len(s.Deck), s.Status))

	return strings.Join(lines, "\n")
}
