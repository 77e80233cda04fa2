package database

import (
	"sync"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/partybox/consts"
	dominogame "github.com/ratel-online/partybox/domino/game"
	unogame "github.com/ratel-online/partybox/uno/game"
)

// Lobby owns one game. Every mutation goes through Apply, which holds the
// lobby lock, so there is a single writer per game.
type Lobby struct {
	sync.Mutex

	Code       string            `json:"code"`
	Type       int               `json:"type"`
	Uno        *unogame.State    `json:"uno,omitempty"`
	Domino     *dominogame.State `json:"domino,omitempty"`
	ActiveTime time.Time         `json:"activeTime"`

	subscribers map[string]chan []byte
}

type snapshot struct {
	Code     string      `json:"code"`
	Type     int         `json:"type"`
	TypeDesc string      `json:"typeDesc"`
	State    interface{} `json:"state"`
}

func newLobby(code string, gameType int) *Lobby {
	return &Lobby{
		Code:        code,
		Type:        gameType,
		ActiveTime:  time.Now(),
		subscribers: map[string]chan []byte{},
	}
}

func (l *Lobby) state() interface{ Validate() error } {
	switch {
	case l.Type == consts.GameTypeUno && l.Uno != nil:
		return l.Uno
	case l.Type == consts.GameTypeDomino && l.Domino != nil:
		return l.Domino
	}
	return nil
}

// Apply runs mutation under the lobby lock. A rejected mutation is returned
// as is; an accepted one is validated and broadcast to every subscriber.
func (l *Lobby) Apply(mutation func() error) error {
	l.Lock()
	defer l.Unlock()
	state := l.state()
	if state == nil {
		return consts.ErrorsGameTypeInvalid
	}
	if err := mutation(); err != nil {
		return err
	}
	l.ActiveTime = time.Now()
	if err := state.Validate(); err != nil {
		log.Errorf("lobby %s: %v\n", l.Code, err)
		return err
	}
	l.broadcast(l.snapshot())
	return nil
}

// Snapshot renders the current game as JSON.
func (l *Lobby) Snapshot() []byte {
	l.Lock()
	defer l.Unlock()
	return l.snapshot()
}

func (l *Lobby) snapshot() []byte {
	return json.Marshal(snapshot{
		Code:     l.Code,
		Type:     l.Type,
		TypeDesc: consts.GameTypes[l.Type],
		State:    l.state(),
	})
}

func (l *Lobby) HasPlayer(playerID string) bool {
	l.Lock()
	defer l.Unlock()
	switch {
	case l.Type == consts.GameTypeUno && l.Uno != nil:
		return l.Uno.PlayerIndex(playerID) >= 0
	case l.Type == consts.GameTypeDomino && l.Domino != nil:
		return l.Domino.PlayerIndex(playerID) >= 0
	}
	return false
}

// Subscribe registers id for snapshots. The current snapshot is queued first.
func (l *Lobby) Subscribe(id string) <-chan []byte {
	l.Lock()
	defer l.Unlock()
	if old, ok := l.subscribers[id]; ok {
		close(old)
	}
	ch := make(chan []byte, 8)
	ch <- l.snapshot()
	l.subscribers[id] = ch
	return ch
}

func (l *Lobby) Unsubscribe(id string) {
	l.Lock()
	defer l.Unlock()
	if ch, ok := l.subscribers[id]; ok {
		close(ch)
		delete(l.subscribers, id)
	}
}

func (l *Lobby) broadcast(data []byte) {
	for id, ch := range l.subscribers {
		select {
		case ch <- data:
		default:
			log.Infof("lobby %s: subscriber %s is lagging, snapshot dropped.\n", l.Code, id)
		}
	}
}

func (l *Lobby) closeSubscribers() {
	for id, ch := range l.subscribers {
		close(ch)
		delete(l.subscribers, id)
	}
}
