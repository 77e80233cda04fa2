package game

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/partybox/consts"
	"github.com/ratel-online/partybox/cycler"
	"github.com/ratel-online/partybox/domino/event"
	"github.com/ratel-online/partybox/domino/msg"
	"github.com/ratel-online/partybox/domino/tile"
	"github.com/ratel-online/partybox/shuffler"
)

// Initialize deals a fresh shuffled set going up to maxPip and picks the starting player.
func Initialize(lobbyCode string, players []Player, maxPip int) (*State, error) {
	set, err := NewSet(maxPip)
	if err != nil {
		return nil, err
	}
	return newGame(lobbyCode, players, maxPip, shuffler.Shuffle(set))
}

func newGame(lobbyCode string, players []Player, maxPip int, set []tile.Tile) (*State, error) {
	if len(players) < consts.MinPlayers || len(players) > MaxPlayers(maxPip) {
		return nil, consts.ErrorsGamePlayersInvalid
	}
	ids := make(map[string]bool, len(players))
	for _, player := range players {
		if player.ID == "" || ids[player.ID] {
			return nil, consts.ErrorsPlayerIDInvalid
		}
		ids[player.ID] = true
	}
	if len(set) != SetSize(maxPip) {
		log.Errorf("lobby %s: %d tiles for max pip %d\n", lobbyCode, len(set), maxPip)
		return nil, consts.ErrorsPieceSetInvariant
	}

	s := &State{
		LobbyCode: lobbyCode,
		MaxPip:    maxPip,
		Boneyard:  set,
		Players:   make([]*Player, 0, len(players)),
		Direction: cycler.Right,
		Status:    consts.StatusWaiting,
	}
	for _, player := range players {
		hand := make(Hand, 0, consts.HandSize)
		hand.Add(s.Boneyard[:consts.HandSize]...)
		s.Boneyard = s.Boneyard[consts.HandSize:]
		s.Players = append(s.Players, &Player{
			ID:     player.ID,
			Name:   player.Name,
			Avatar: player.Avatar,
			Hand:   hand,
		})
	}

	s.CurrentPlayerIndex = StartingPlayer(s.Players)
	starter := s.Current()
	s.Status = consts.StatusPlaying
	s.LastActionMessage = msg.Join(
		msg.Message.StartingPlayer(starter.Name, HighestDouble(starter.Hand)),
		msg.Message.PlayerTurnStarted(starter.Name),
	)
	return s, nil
}

func (s *State) actingPlayer(playerID string) (*Player, error) {
	if s.Status != consts.StatusPlaying {
		return nil, consts.ErrorsGameNotPlaying
	}
	if s.PlayerIndex(playerID) != s.CurrentPlayerIndex {
		return nil, consts.ErrorsNotYourTurn
	}
	return s.Current(), nil
}

// Play lays tileID from playerID's hand on the given end of the board. The
// end is ignored for the opening tile.
func Play(s *State, playerID string, tileID int, end End) error {
	player, err := s.actingPlayer(playerID)
	if err != nil {
		return err
	}
	playedTile, ok := player.Hand.Find(tileID)
	if !ok {
		return consts.ErrorsPieceNotInHand
	}
	placed, ok := Fits(playedTile, end, s.Board)
	if !ok {
		return consts.ErrorsIllegalMove
	}

	opening := s.Board.Empty()
	player.Hand.Remove(tileID)
	s.Board.place(placed, end)
	s.ConsecutivePasses = 0
	s.TurnActionTaken = false

	endName := end.String()
	if opening {
		endName = ""
	}
	event.TilePlayed.Emit(event.TilePlayedPayload{
		LobbyCode: s.LobbyCode,
		PlayerID:  player.ID,
		Tile:      playedTile,
		End:       endName,
	})

	message := msg.Message.PlayerPlayedTile(player.Name, playedTile, endName)
	if player.Hand.Empty() {
		s.finish(player)
		s.LastActionMessage = msg.Join(message, msg.Message.WinnerFound(player.Name))
		return nil
	}
	s.advance()
	s.LastActionMessage = msg.Join(message, msg.Message.PlayerTurnStarted(s.Current().Name))
	return nil
}

// Draw moves the front tile of the boneyard into the hand of a player who
// has nothing to play.
func Draw(s *State, playerID string) (tile.Tile, error) {
	player, err := s.actingPlayer(playerID)
	if err != nil {
		return tile.Tile{}, err
	}
	if len(player.Hand.PlayableTiles(s.Board)) > 0 {
		return tile.Tile{}, consts.ErrorsMustHaveToPlay
	}
	if len(s.Boneyard) == 0 {
		return tile.Tile{}, consts.ErrorsStockEmpty
	}

	drawn := s.Boneyard[0]
	s.Boneyard = s.Boneyard[1:]
	player.Hand.Add(drawn)
	s.TurnActionTaken = true
	event.TileDrawn.Emit(event.TileDrawnPayload{
		LobbyCode: s.LobbyCode,
		PlayerID:  player.ID,
		Left:      len(s.Boneyard),
	})
	s.LastActionMessage = msg.Message.PlayerDrewTile(player.Name, len(s.Boneyard))
	return drawn, nil
}

// Pass ends the turn of a player who can neither play nor draw. A full round
// of passes blocks the game.
func Pass(s *State, playerID string) error {
	player, err := s.actingPlayer(playerID)
	if err != nil {
		return err
	}
	if len(player.Hand.PlayableTiles(s.Board)) > 0 {
		return consts.ErrorsMustHaveToPlay
	}
	if len(s.Boneyard) > 0 {
		return consts.ErrorsMustDrawFirst
	}

	s.ConsecutivePasses++
	blocked := s.ConsecutivePasses >= len(s.Players)
	event.PlayerPassed.Emit(event.PlayerPassedPayload{
		LobbyCode: s.LobbyCode,
		PlayerID:  player.ID,
		Blocked:   blocked,
	})

	message := msg.Message.PlayerPassed(player.Name)
	if blocked {
		winner := s.lowestPipPlayer()
		s.finish(winner)
		s.LastActionMessage = msg.Join(message,
			msg.Message.GameBlocked(winner.Name, winner.Hand.PipTotal()),
			msg.Message.WinnerFound(winner.Name))
		return nil
	}
	s.advance()
	s.LastActionMessage = msg.Join(message, msg.Message.PlayerTurnStarted(s.Current().Name))
	return nil
}

func (s *State) advance() {
	s.TurnActionTaken = false
	s.CurrentPlayerIndex = cycler.Next(s.CurrentPlayerIndex, len(s.Players), s.Direction)
}

// lowestPipPlayer settles a blocked game; equal totals go to the lowest index.
func (s *State) lowestPipPlayer() *Player {
	winner := s.Players[0]
	for _, player := range s.Players[1:] {
		if player.Hand.PipTotal() < winner.Hand.PipTotal() {
			winner = player
		}
	}
	return winner
}

func (s *State) finish(winner *Player) {
	if s.Status.CanBecome(consts.StatusFinished) {
		s.Status = consts.StatusFinished
		s.WinnerID = winner.ID
		log.Infof("lobby %s: %s\n", s.LobbyCode, msg.Message.WinnerFound(winner.Name))
	}
}
