package database

import (
	"math/rand"
	"strings"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/partybox/consts"
	dominogame "github.com/ratel-online/partybox/domino/game"
	unogame "github.com/ratel-online/partybox/uno/game"
)

const codeLetters = "ABCDEFGHJKLMNPQRSTUVWXYZ"

var lobbies = hashmap.New()

func init() {
	async.Async(func() {
		for {
			time.Sleep(consts.ReapInterval)
			Reap(time.Now())
		}
	})
}

func CreateUnoLobby(players []unogame.Player) (*Lobby, error) {
	code := newLobbyCode()
	state, err := unogame.Initialize(code, players)
	if err != nil {
		return nil, err
	}
	lobby := newLobby(code, consts.GameTypeUno)
	lobby.Uno = state
	lobbies.Set(code, lobby)
	log.Infof("lobby %s created for %d uno players\n", code, len(players))
	return lobby, nil
}

func CreateDominoLobby(players []dominogame.Player, maxPip int) (*Lobby, error) {
	code := newLobbyCode()
	state, err := dominogame.Initialize(code, players, maxPip)
	if err != nil {
		return nil, err
	}
	lobby := newLobby(code, consts.GameTypeDomino)
	lobby.Domino = state
	lobbies.Set(code, lobby)
	log.Infof("lobby %s created for %d domino players\n", code, len(players))
	return lobby, nil
}

func GetLobby(code string) *Lobby {
	if v, ok := lobbies.Get(strings.ToUpper(code)); ok {
		return v.(*Lobby)
	}
	return nil
}

func DeleteLobby(code string) {
	lobby := GetLobby(code)
	if lobby == nil {
		return
	}
	lobbies.Del(lobby.Code)
	lobby.Lock()
	defer lobby.Unlock()
	lobby.closeSubscribers()
}

// Reap removes the lobbies nobody touched for consts.LobbyIdleTimeout.
func Reap(now time.Time) {
	var idle []*Lobby
	lobbies.Foreach(func(e *hashmap.Entry) {
		lobby := e.Value().(*Lobby)
		lobby.Lock()
		if lobby.ActiveTime.Add(consts.LobbyIdleTimeout).Before(now) {
			idle = append(idle, lobby)
		}
		lobby.Unlock()
	})
	for _, lobby := range idle {
		log.Infof("lobby %s is idle, removed.\n", lobby.Code)
		DeleteLobby(lobby.Code)
	}
}

func newLobbyCode() string {
	for {
		code := make([]byte, consts.LobbyCodeLength)
		for i := range code {
			code[i] = codeLetters[rand.Intn(len(codeLetters))]
		}
		if _, ok := lobbies.Get(string(code)); !ok {
			return string(code)
		}
	}
}
