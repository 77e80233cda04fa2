package network

import (
	stdjson "encoding/json"

	"github.com/ratel-online/partybox/consts"
	"github.com/ratel-online/partybox/database"
	dominogame "github.com/ratel-online/partybox/domino/game"
	"github.com/ratel-online/partybox/uno/card/color"
	"github.com/spf13/cast"
)

// parseCommand reads {"action","card","tile","color","end"}. Numbers may
// arrive as JSON numbers or strings.
func parseCommand(data []byte) (database.Command, error) {
	raw := map[string]interface{}{}
	if err := stdjson.Unmarshal(data, &raw); err != nil {
		return database.Command{}, consts.ErrorsInputInvalid
	}
	command := database.Command{Action: cast.ToString(raw["action"])}
	if command.Action == "" {
		return database.Command{}, consts.ErrorsInputInvalid
	}

	var err error
	if v, ok := raw["card"]; ok {
		if command.Card, err = cast.ToIntE(v); err != nil {
			return database.Command{}, consts.ErrorsInputInvalid
		}
	}
	if v, ok := raw["tile"]; ok {
		if command.Tile, err = cast.ToIntE(v); err != nil {
			return database.Command{}, consts.ErrorsInputInvalid
		}
	}
	if name := cast.ToString(raw["color"]); name != "" {
		if command.Color, err = color.ByName(name); err != nil {
			return database.Command{}, consts.ErrorsInputInvalid
		}
	}
	if name := cast.ToString(raw["end"]); name != "" {
		if command.End, err = dominogame.EndByName(name); err != nil {
			return database.Command{}, consts.ErrorsInputInvalid
		}
	}
	return command, nil
}
