package network

import (
	stdjson "encoding/json"
	"net/http"
	"strings"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/partybox/consts"
	"github.com/ratel-online/partybox/database"
	dominogame "github.com/ratel-online/partybox/domino/game"
	unogame "github.com/ratel-online/partybox/uno/game"
	"github.com/spf13/cast"
)

type seat struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type createRequest struct {
	Type    interface{} `json:"type"`
	MaxPip  interface{} `json:"maxPip"`
	Players []seat      `json:"players"`
}

// serveLobby creates a lobby on POST and renders one on GET ?code=.
func serveLobby(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		lobby := database.GetLobby(r.URL.Query().Get("code"))
		if lobby == nil {
			writeJSONError(w, http.StatusNotFound, consts.ErrorsLobbyInvalid)
			return
		}
		writeJSON(w, http.StatusOK, lobby.Snapshot())
	case http.MethodPost:
		lobby, err := createLobby(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}
		writeJSON(w, http.StatusCreated, lobby.Snapshot())
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func createLobby(r *http.Request) (*database.Lobby, error) {
	request := createRequest{}
	if err := stdjson.NewDecoder(r.Body).Decode(&request); err != nil {
		return nil, consts.ErrorsInputInvalid
	}
	gameType, err := cast.ToIntE(request.Type)
	if err != nil {
		return nil, consts.ErrorsGameTypeInvalid
	}
	if _, ok := consts.GameTypes[gameType]; !ok {
		return nil, consts.ErrorsGameTypeInvalid
	}

	switch gameType {
	case consts.GameTypeUno:
		players := make([]unogame.Player, 0, len(request.Players))
		for _, s := range request.Players {
			players = append(players, unogame.Player{ID: s.ID, Name: s.Name, Avatar: s.Avatar})
		}
		return database.CreateUnoLobby(players)
	default:
		maxPip := consts.DefaultMaxPip
		if request.MaxPip != nil {
			if maxPip, err = cast.ToIntE(request.MaxPip); err != nil {
				return nil, consts.ErrorsMaxPipInvalid
			}
		}
		players := make([]dominogame.Player, 0, len(request.Players))
		for _, s := range request.Players {
			players = append(players, dominogame.Player{ID: s.ID, Name: s.Name, Avatar: s.Avatar})
		}
		return database.CreateDominoLobby(players, maxPip)
	}
}

func writeJSON(w http.ResponseWriter, status int, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		log.Error(err)
	}
}

func writeJSONError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, json.Marshal(map[string]string{"error": strings.TrimSpace(err.Error())}))
}
