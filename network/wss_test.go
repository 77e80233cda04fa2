package network_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/ratel-online/partybox/consts"
	"github.com/ratel-online/partybox/database"
	dominogame "github.com/ratel-online/partybox/domino/game"
	"github.com/ratel-online/partybox/network"
	"github.com/stretchr/testify/require"
)

type message struct {
	Code  string           `json:"code"`
	State dominogame.State `json:"state"`
	Error string           `json:"error"`
}

func dial(t *testing.T, server *httptest.Server, lobby, player string) *websocket.Conn {
	url := fmt.Sprintf("ws%s/ws?lobby=%s&player=%s", strings.TrimPrefix(server.URL, "http"), lobby, player)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return conn
}

func read(t *testing.T, conn *websocket.Conn) message {
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var m message
	require.NoError(t, json.Unmarshal(data, &m))
	return m
}

func TestWebsocket(t *testing.T) {
	lobby, err := database.CreateDominoLobby([]dominogame.Player{{ID: "ann"}, {ID: "bob"}}, consts.DefaultMaxPip)
	require.NoError(t, err)
	defer database.DeleteLobby(lobby.Code)

	server := httptest.NewServer(network.Handler())
	defer server.Close()

	current := lobby.Domino.Current()
	other := lobby.Domino.Players[1-lobby.Domino.CurrentPlayerIndex]

	actor := dial(t, server, lobby.Code, current.ID)
	defer actor.Close()
	watcher := dial(t, server, lobby.Code, other.ID)
	defer watcher.Close()

	require.Equal(t, lobby.Code, read(t, actor).Code)
	require.Equal(t, lobby.Code, read(t, watcher).Code)

	require.NoError(t, watcher.WriteMessage(websocket.TextMessage, []byte(`{"action":"pass"}`)))
	require.Equal(t, "It's not your turn.", read(t, watcher).Error)

	require.NoError(t, actor.WriteMessage(websocket.TextMessage, []byte(`{"action":"dance"}`)))
	require.Equal(t, "Input invalid.", read(t, actor).Error)

	command := fmt.Sprintf(`{"action":"play","tile":%d,"end":"left"}`, current.Hand[0].ID)
	require.NoError(t, actor.WriteMessage(websocket.TextMessage, []byte(command)))

	for _, conn := range []*websocket.Conn{actor, watcher} {
		update := read(t, conn)
		require.Empty(t, update.Error)
		require.Len(t, update.State.Board.Tiles, 1)
		require.Equal(t, other.ID, update.State.Players[update.State.CurrentPlayerIndex].ID)
	}
}

func TestWebsocketRejectsUnknownLobbyAndPlayer(t *testing.T) {
	lobby, err := database.CreateDominoLobby([]dominogame.Player{{ID: "ann"}, {ID: "bob"}}, consts.DefaultMaxPip)
	require.NoError(t, err)
	defer database.DeleteLobby(lobby.Code)

	server := httptest.NewServer(network.Handler())
	defer server.Close()

	response, err := http.Get(server.URL + "/ws?lobby=NOPE0&player=ann")
	require.NoError(t, err)
	response.Body.Close()
	require.Equal(t, http.StatusNotFound, response.StatusCode)

	response, err = http.Get(server.URL + "/ws?lobby=" + lobby.Code + "&player=eve")
	require.NoError(t, err)
	response.Body.Close()
	require.Equal(t, http.StatusForbidden, response.StatusCode)
}
