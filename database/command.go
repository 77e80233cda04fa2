package database

import (
	"github.com/ratel-online/partybox/consts"
	dominobot "github.com/ratel-online/partybox/domino/bot"
	dominogame "github.com/ratel-online/partybox/domino/game"
	unobot "github.com/ratel-online/partybox/uno/bot"
	"github.com/ratel-online/partybox/uno/card/color"
	unogame "github.com/ratel-online/partybox/uno/game"
)

const (
	ActionPlay  = "play"
	ActionDraw  = "draw"
	ActionPass  = "pass"
	ActionColor = "color"
	ActionHint  = "hint"
)

// Command is one player action. Card and Color apply to uno lobbies, Tile
// and End to domino lobbies.
type Command struct {
	Action string
	Card   int
	Tile   int
	Color  color.Color
	End    dominogame.End
}

// Execute applies command on behalf of playerID.
func (l *Lobby) Execute(playerID string, command Command) error {
	return l.Apply(func() error {
		switch l.Type {
		case consts.GameTypeUno:
			return executeUno(l.Uno, playerID, command)
		case consts.GameTypeDomino:
			return executeDomino(l.Domino, playerID, command)
		}
		return consts.ErrorsGameTypeInvalid
	})
}

func executeUno(s *unogame.State, playerID string, command Command) error {
	switch command.Action {
	case ActionPlay:
		return unogame.Play(s, playerID, command.Card, command.Color)
	case ActionDraw:
		_, err := unogame.Draw(s, playerID)
		return err
	case ActionPass:
		return unogame.Pass(s, playerID)
	case ActionColor:
		return unogame.ChooseColor(s, playerID, command.Color)
	}
	return consts.ErrorsInputInvalid
}

func executeDomino(s *dominogame.State, playerID string, command Command) error {
	switch command.Action {
	case ActionPlay:
		return dominogame.Play(s, playerID, command.Tile, command.End)
	case ActionDraw:
		_, err := dominogame.Draw(s, playerID)
		return err
	case ActionPass:
		return dominogame.Pass(s, playerID)
	}
	return consts.ErrorsInputInvalid
}

// Hint suggests the next move of playerID without touching the game.
func (l *Lobby) Hint(playerID string) (interface{}, error) {
	l.Lock()
	defer l.Unlock()
	switch {
	case l.Type == consts.GameTypeUno && l.Uno != nil:
		return unobot.Suggest(l.Uno, playerID, unobot.Good)
	case l.Type == consts.GameTypeDomino && l.Domino != nil:
		return dominobot.Suggest(l.Domino, playerID)
	}
	return nil, consts.ErrorsGameTypeInvalid
}
