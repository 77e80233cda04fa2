package network

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/partybox/consts"
	"github.com/ratel-online/partybox/database"
)

type Websocket struct {
	addr string
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func NewWebsocketServer(addr string) Websocket {
	return Websocket{addr: addr}
}

func (w Websocket) Serve() error {
	log.Infof("Websocket server listening on %s\n", w.addr)
	return http.ListenAndServe(w.addr, Handler())
}

func Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", serveWs)
	mux.HandleFunc("/lobby", serveLobby)
	return mux
}

func serveWs(w http.ResponseWriter, r *http.Request) {
	lobby := database.GetLobby(r.URL.Query().Get("lobby"))
	if lobby == nil {
		http.Error(w, consts.ErrorsLobbyInvalid.Error(), http.StatusNotFound)
		return
	}
	playerID := r.URL.Query().Get("player")
	if !lobby.HasPlayer(playerID) {
		http.Error(w, consts.ErrorsPlayerIDInvalid.Error(), http.StatusForbidden)
		return
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error(err)
		return
	}
	handle(&client{conn: conn}, lobby, playerID, playerID+"@"+r.RemoteAddr)
}

// client serialises writes; gorilla connections allow one writer at a time.
type client struct {
	sync.Mutex
	conn *websocket.Conn
}

func (c *client) write(data []byte) error {
	c.Lock()
	defer c.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(consts.WriteTimeout))
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

func (c *client) writeError(err error) error {
	return c.write(json.Marshal(map[string]string{"error": strings.TrimSpace(err.Error())}))
}

func (c *client) writeHint(lobby *database.Lobby, playerID string) error {
	move, err := lobby.Hint(playerID)
	if err != nil {
		return err
	}
	if err := c.write(json.Marshal(map[string]interface{}{"hint": move})); err != nil {
		log.Error(err)
	}
	return nil
}

func handle(c *client, lobby *database.Lobby, playerID, subscriberID string) {
	defer func() {
		if err := c.conn.Close(); err != nil {
			log.Error(err)
		}
	}()
	log.Infof("player %s joined lobby %s\n", playerID, lobby.Code)

	updates := lobby.Subscribe(subscriberID)
	defer lobby.Unsubscribe(subscriberID)
	async.Async(func() {
		for data := range updates {
			if err := c.write(data); err != nil {
				log.Error(err)
				return
			}
		}
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			log.Infof("player %s left lobby %s: %v\n", playerID, lobby.Code, err)
			return
		}
		command, err := parseCommand(data)
		if err == nil && command.Action == database.ActionHint {
			err = c.writeHint(lobby, playerID)
		} else if err == nil {
			err = lobby.Execute(playerID, command)
		}
		if err != nil {
			if err := c.writeError(err); err != nil {
				log.Error(err)
				return
			}
		}
	}
}
