package game

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/partybox/consts"
	"github.com/ratel-online/partybox/cycler"
	"github.com/ratel-online/partybox/shuffler"
	"github.com/ratel-online/partybox/uno/card"
	"github.com/ratel-online/partybox/uno/card/action"
	"github.com/ratel-online/partybox/uno/card/color"
	"github.com/ratel-online/partybox/uno/event"
	"github.com/ratel-online/partybox/uno/msg"
)

// Initialize deals a fresh shuffled deck to players and turns the first card.
func Initialize(lobbyCode string, players []Player) (*State, error) {
	return newGame(lobbyCode, players, shuffler.Shuffle(NewDeck()))
}

func newGame(lobbyCode string, players []Player, deck []card.Card) (*State, error) {
	if len(players) < consts.MinPlayers || len(players) > consts.UnoMaxPlayers {
		return nil, consts.ErrorsGamePlayersInvalid
	}
	ids := make(map[string]bool, len(players))
	for _, player := range players {
		if player.ID == "" || ids[player.ID] {
			return nil, consts.ErrorsPlayerIDInvalid
		}
		ids[player.ID] = true
	}

	s := &State{
		LobbyCode:   lobbyCode,
		Deck:        deck,
		DiscardPile: make(Pile, 0, DeckSize),
		Players:     make([]*Player, 0, len(players)),
		Direction:   cycler.Right,
		Status:      consts.StatusWaiting,
	}
	for _, player := range players {
		s.Players = append(s.Players, &Player{
			ID:     player.ID,
			Name:   player.Name,
			Avatar: player.Avatar,
			Hand:   make(Hand, 0, consts.HandSize),
		})
	}
	for _, player := range s.Players {
		player.Hand.Add(s.draw(consts.HandSize)...)
	}

	index, ok := startingCardIndex(s.Deck)
	if !ok {
		log.Errorf("lobby %s: no card can open the discard pile\n", lobbyCode)
		return nil, consts.ErrorsPieceSetInvariant
	}
	firstCard := s.Deck[index]
	s.Deck = append(s.Deck[:index:index], s.Deck[index+1:]...)
	s.DiscardPile.Add(firstCard)
	event.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{
		LobbyCode: lobbyCode,
		Card:      firstCard,
	})

	if err := s.applyFirstCard(firstCard); err != nil {
		return nil, err
	}
	s.Status = consts.StatusPlaying
	return s, nil
}

// startingCardIndex finds the first card that may open the discard pile.
func startingCardIndex(deck []card.Card) (int, bool) {
	for index, c := range deck {
		if c.Value != card.WildDrawFour {
			return index, true
		}
	}
	return 0, false
}

func (s *State) applyFirstCard(firstCard card.Card) error {
	first := s.Players[0]
	count := len(s.Players)
	message := msg.Message.FirstCardPlayed(firstCard)

	switch firstCard.Value {
	case card.Skip:
		s.CurrentPlayerIndex = cycler.Next(0, count, cycler.Right)
		message = msg.Join(message, msg.Message.PlayerTurnSkipped(first.Name))
	case card.Reverse:
		s.Direction = cycler.Left
		s.CurrentPlayerIndex = count - 1
		message = msg.Join(message, msg.Message.TurnOrderReversed())
	case card.DrawTwo:
		drawn := s.draw(2)
		first.Hand.Add(drawn...)
		s.emitDrawn(first, len(drawn))
		s.CurrentPlayerIndex = cycler.Next(0, count, cycler.Right)
		message = msg.Join(message,
			msg.Message.PlayerDrewCards(first.Name, len(drawn)),
			msg.Message.PlayerTurnSkipped(first.Name))
	case card.Wild:
		s.CurrentPlayerIndex = 0
		message = msg.Join(message, msg.Message.FirstPlayerMustPickColor(first.Name))
	case card.Zero, card.One, card.Two, card.Three, card.Four,
		card.Five, card.Six, card.Seven, card.Eight, card.Nine:
		s.CurrentPlayerIndex = 0
	default:
		log.Errorf("lobby %s: %s cannot open the discard pile\n", s.LobbyCode, firstCard.Name())
		return consts.ErrorsPieceSetInvariant
	}

	s.LastActionMessage = msg.Join(message, msg.Message.PlayerTurnStarted(s.Current().Name))
	return nil
}

// actingPlayer guards every turn action: the game must be running and it
// must be playerID's turn.
func (s *State) actingPlayer(playerID string) (*Player, error) {
	if s.Status != consts.StatusPlaying {
		return nil, consts.ErrorsGameNotPlaying
	}
	if s.PlayerIndex(playerID) != s.CurrentPlayerIndex {
		return nil, consts.ErrorsNotYourTurn
	}
	return s.Current(), nil
}

// Play puts cardID from playerID's hand on the discard pile. chosen is the
// color named for a wild card and ignored otherwise.
func Play(s *State, playerID string, cardID int, chosen color.Color) error {
	player, err := s.actingPlayer(playerID)
	if err != nil {
		return err
	}
	playedCard, ok := player.Hand.Find(cardID)
	if !ok {
		return consts.ErrorsPieceNotInHand
	}
	if s.awaitingColor() {
		return consts.ErrorsColorNotSelected
	}
	if playedCard.IsWild() && !chosen.Concrete() {
		return consts.ErrorsColorRequired
	}
	top, _ := s.Top()
	if !Playable(playedCard, top, s.SelectedColor) {
		return consts.ErrorsIllegalMove
	}

	player.Hand.Remove(cardID)
	s.DiscardPile.Add(playedCard)
	s.SelectedColor = color.None
	if playedCard.IsWild() {
		s.SelectedColor = chosen
	}
	s.TurnActionTaken = false
	event.CardPlayed.Emit(event.CardPlayedPayload{
		LobbyCode: s.LobbyCode,
		PlayerID:  player.ID,
		Card:      playedCard,
	})

	message := msg.Message.PlayerPlayedCard(player.Name, playedCard)
	if player.Hand.Empty() {
		s.finish(player)
		s.LastActionMessage = msg.Join(message, msg.Message.WinnerFound(player.Name))
		return nil
	}

	message = msg.Join(message, s.performCardActions(playedCard))
	s.LastActionMessage = msg.Join(message, msg.Message.PlayerTurnStarted(s.Current().Name))
	return nil
}

// performCardActions applies the played card's effects and moves the turn on.
func (s *State) performCardActions(playedCard card.Card) string {
	player := s.Current()
	count := len(s.Players)
	skip := false
	var messages []string

	for _, cardAction := range playedCard.Actions() {
		switch cardAction := cardAction.(type) {
		case action.DrawCardsAction:
			victim := s.Players[cycler.Next(s.CurrentPlayerIndex, count, s.Direction)]
			drawn := s.draw(cardAction.Amount())
			victim.Hand.Add(drawn...)
			s.emitDrawn(victim, len(drawn))
			messages = append(messages, msg.Message.PlayerDrewCards(victim.Name, len(drawn)))
		case action.ReverseTurnsAction:
			s.Direction = cycler.Reverse(s.Direction)
			messages = append(messages, msg.Message.TurnOrderReversed())
			if count == 2 {
				skip = true
				skipped := s.Players[cycler.Next(s.CurrentPlayerIndex, count, s.Direction)]
				messages = append(messages, msg.Message.PlayerTurnSkipped(skipped.Name))
			}
		case action.SkipTurnAction:
			skip = true
			skipped := s.Players[cycler.Next(s.CurrentPlayerIndex, count, s.Direction)]
			messages = append(messages, msg.Message.PlayerTurnSkipped(skipped.Name))
		case action.PickColorAction:
			event.ColorPicked.Emit(event.ColorPickedPayload{
				LobbyCode: s.LobbyCode,
				PlayerID:  player.ID,
				Color:     s.SelectedColor,
			})
			messages = append(messages, msg.Message.PlayerPickedColor(player.Name, s.SelectedColor))
		}
	}

	if skip {
		s.CurrentPlayerIndex = cycler.Skip(s.CurrentPlayerIndex, count, s.Direction)
	} else {
		s.CurrentPlayerIndex = cycler.Next(s.CurrentPlayerIndex, count, s.Direction)
	}
	return msg.Join(messages...)
}

// ChooseColor names the color for a wild card that opened the discard pile.
func ChooseColor(s *State, playerID string, chosen color.Color) error {
	player, err := s.actingPlayer(playerID)
	if err != nil {
		return err
	}
	if !s.awaitingColor() {
		return consts.ErrorsColorNotAllowed
	}
	if !chosen.Concrete() {
		return consts.ErrorsColorRequired
	}
	s.SelectedColor = chosen
	event.ColorPicked.Emit(event.ColorPickedPayload{
		LobbyCode: s.LobbyCode,
		PlayerID:  player.ID,
		Color:     chosen,
	})
	s.LastActionMessage = msg.Message.PlayerPickedColor(player.Name, chosen)
	return nil
}

// Draw takes one card from the deck into the current player's hand. It is
// allowed once per turn; an exhausted table yields no card and lets the
// player pass.
func Draw(s *State, playerID string) ([]card.Card, error) {
	player, err := s.actingPlayer(playerID)
	if err != nil {
		return nil, err
	}
	if s.awaitingColor() {
		return nil, consts.ErrorsColorNotSelected
	}
	if s.TurnActionTaken {
		return nil, consts.ErrorsAlreadyDrew
	}
	drawn := s.draw(1)
	player.Hand.Add(drawn...)
	s.TurnActionTaken = true
	s.emitDrawn(player, len(drawn))
	s.LastActionMessage = msg.Message.PlayerDrewCards(player.Name, len(drawn))
	return drawn, nil
}

// Pass ends the turn of a player who already drew, or who cannot draw at all.
func Pass(s *State, playerID string) error {
	player, err := s.actingPlayer(playerID)
	if err != nil {
		return err
	}
	if s.awaitingColor() {
		return consts.ErrorsColorNotSelected
	}
	if !s.TurnActionTaken && s.canDraw() {
		return consts.ErrorsMustDrawFirst
	}
	s.TurnActionTaken = false
	s.CurrentPlayerIndex = cycler.Next(s.CurrentPlayerIndex, len(s.Players), s.Direction)
	event.PlayerPassed.Emit(event.PlayerPassedPayload{
		LobbyCode: s.LobbyCode,
		PlayerID:  player.ID,
	})
	s.LastActionMessage = msg.Join(
		msg.Message.PlayerPassed(player.Name),
		msg.Message.PlayerTurnStarted(s.Current().Name),
	)
	return nil
}

func (s *State) canDraw() bool {
	return len(s.Deck) > 0 || len(s.DiscardPile) > 1
}

// draw takes amount cards from the front of the deck, recycling the discard
// pile under its top card whenever the deck runs dry. It returns fewer cards
// when both are exhausted.
func (s *State) draw(amount int) []card.Card {
	cards := make([]card.Card, 0, amount)
	for len(cards) < amount {
		if len(s.Deck) == 0 && !s.recycleDiscardPile() {
			log.Infof("lobby %s: deck and discard pile exhausted, %d of %d cards drawn\n", s.LobbyCode, len(cards), amount)
			break
		}
		cards = append(cards, s.Deck[0])
		s.Deck = s.Deck[1:]
	}
	return cards
}

func (s *State) recycleDiscardPile() bool {
	under := s.DiscardPile.TakeUnderTop()
	if len(under) == 0 {
		return false
	}
	s.Deck = append(s.Deck, shuffler.Shuffle(under)...)
	log.Infof("lobby %s: %s\n", s.LobbyCode, msg.Message.DeckReshuffled(len(under)))
	return true
}

func (s *State) emitDrawn(player *Player, amount int) {
	event.CardsDrawn.Emit(event.CardsDrawnPayload{
		LobbyCode: s.LobbyCode,
		PlayerID:  player.ID,
		Amount:    amount,
	})
}

func (s *State) finish(winner *Player) {
	if s.Status.CanBecome(consts.StatusFinished) {
		s.Status = consts.StatusFinished
		s.WinnerID = winner.ID
		log.Infof("lobby %s: %s\n", s.LobbyCode, msg.Message.WinnerFound(winner.Name))
	}
}
