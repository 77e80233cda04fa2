package consts

import (
	"time"
)

const (
	MinPlayers = 2
	// UnoMaxPlayers keeps 7-card hands plus a starting discard well inside one deck.
	UnoMaxPlayers = 10

	HandSize = 7

	DefaultMaxPip = 6
	MaxPip        = 12

	GameTypeUno    = 1
	GameTypeDomino = 2

	LobbyCodeLength  = 5
	LobbyIdleTimeout = 2 * time.Hour
	ReapInterval     = 1 * time.Minute

	WriteTimeout = 10 * time.Second

	DefaultAddr = ":9998"
)

var (
	GameTypes = map[int]string{
		GameTypeUno:    "Uno",
		GameTypeDomino: "Domino",
	}
	GameTypesIds = []int{GameTypeUno, GameTypeDomino}
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

// Configuration errors.
var (
	ErrorsGamePlayersInvalid = NewErr(1, false, "Game players invalid. ")
	ErrorsPlayerIDInvalid    = NewErr(1, false, "Player id empty or duplicated. ")
	ErrorsMaxPipInvalid      = NewErr(1, false, "Max pip out of range. ")
	ErrorsGameTypeInvalid    = NewErr(1, false, "Game type invalid. ")
	ErrorsLobbyInvalid       = NewErr(1, false, "Lobby invalid. ")
	ErrorsInputInvalid       = NewErr(1, false, "Input invalid. ")
)

// Gameplay rejections. They never change the game state.
var (
	ErrorsGameNotPlaying   = NewErr(2, false, "Game is not in play. ")
	ErrorsNotYourTurn      = NewErr(2, false, "It's not your turn. ")
	ErrorsPieceNotInHand   = NewErr(2, false, "Piece is not in your hand. ")
	ErrorsIllegalMove      = NewErr(2, false, "Piece does not match the table. ")
	ErrorsColorRequired    = NewErr(2, false, "Pick a color for the wild card. ")
	ErrorsColorNotSelected = NewErr(2, false, "A color must be chosen for the first wild card. ")
	ErrorsColorNotAllowed  = NewErr(2, false, "No color to choose right now. ")
	ErrorsAlreadyDrew      = NewErr(2, false, "You already drew this turn. ")
	ErrorsMustDrawFirst    = NewErr(2, false, "Draw before passing. ")
	ErrorsMustHaveToPlay   = NewErr(2, false, "There is a piece that can be played and must be played. ")
	ErrorsStockEmpty       = NewErr(2, false, "Stock is empty. ")
)

// Invariant failures.
var (
	ErrorsPieceSetInvariant = NewErr(3, true, "Piece set invariant violated. ")
	ErrorsStateInvariant    = NewErr(3, true, "Game state invariant violated. ")
)
