package database

import (
	"github.com/ratel-online/core/log"
	dominoevent "github.com/ratel-online/partybox/domino/event"
	unoevent "github.com/ratel-online/partybox/uno/event"
)

// unoJournal and dominoJournal write every table event to the server log.
type unoJournal struct{}

type dominoJournal struct{}

func init() {
	unoevent.FirstCardPlayed.AddListener(unoJournal{})
	unoevent.CardPlayed.AddListener(unoJournal{})
	unoevent.ColorPicked.AddListener(unoJournal{})
	unoevent.CardsDrawn.AddListener(unoJournal{})
	unoevent.PlayerPassed.AddListener(unoJournal{})
	dominoevent.TilePlayed.AddListener(dominoJournal{})
	dominoevent.TileDrawn.AddListener(dominoJournal{})
	dominoevent.PlayerPassed.AddListener(dominoJournal{})
}

func (unoJournal) OnFirstCardPlayed(payload unoevent.FirstCardPlayedPayload) {
	log.Infof("lobby %s: first card %s\n", payload.LobbyCode, payload.Card)
}

func (unoJournal) OnCardPlayed(payload unoevent.CardPlayedPayload) {
	log.Infof("lobby %s: %s played %s\n", payload.LobbyCode, payload.PlayerID, payload.Card)
}

func (unoJournal) OnColorPicked(payload unoevent.ColorPickedPayload) {
	log.Infof("lobby %s: %s picked %s\n", payload.LobbyCode, payload.PlayerID, payload.Color)
}

func (unoJournal) OnCardsDrawn(payload unoevent.CardsDrawnPayload) {
	log.Infof("lobby %s: %s drew %d card(s)\n", payload.LobbyCode, payload.PlayerID, payload.Amount)
}

func (unoJournal) OnPlayerPassed(payload unoevent.PlayerPassedPayload) {
	log.Infof("lobby %s: %s passed\n", payload.LobbyCode, payload.PlayerID)
}

func (dominoJournal) OnTilePlayed(payload dominoevent.TilePlayedPayload) {
	log.Infof("lobby %s: %s played %s %s\n", payload.LobbyCode, payload.PlayerID, payload.Tile, payload.End)
}

func (dominoJournal) OnTileDrawn(payload dominoevent.TileDrawnPayload) {
	log.Infof("lobby %s: %s drew a tile, %d left\n", payload.LobbyCode, payload.PlayerID, payload.Left)
}

func (dominoJournal) OnPlayerPassed(payload dominoevent.PlayerPassedPayload) {
	if payload.Blocked {
		log.Infof("lobby %s: %s passed, game blocked\n", payload.LobbyCode, payload.PlayerID)
		return
	}
	log.Infof("lobby %s: %s passed\n", payload.LobbyCode, payload.PlayerID)
}
