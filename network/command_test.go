package network

import (
	"testing"

	"github.com/ratel-online/partybox/consts"
	"github.com/ratel-online/partybox/database"
	dominogame "github.com/ratel-online/partybox/domino/game"
	"github.com/ratel-online/partybox/uno/card/color"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	scenarios := []struct {
		description string
		input       string
		expected    database.Command
	}{
		{"uno_play", `{"action":"play","card":12,"color":"green"}`, database.Command{Action: "play", Card: 12, Color: color.Green}},
		{"card_as_string", `{"action":"play","card":"7"}`, database.Command{Action: "play", Card: 7}},
		{"domino_play", `{"action":"play","tile":3,"end":"right"}`, database.Command{Action: "play", Tile: 3, End: dominogame.Right}},
		{"draw", `{"action":"draw"}`, database.Command{Action: "draw"}},
		{"null_color", `{"action":"pass","color":null}`, database.Command{Action: "pass"}},
	}
	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			command, err := parseCommand([]byte(scenario.input))
			require.NoError(t, err)
			require.Equal(t, scenario.expected, command)
		})
	}
}

func TestParseCommandRejectsBadInput(t *testing.T) {
	for _, input := range []string{
		`not json`,
		`{}`,
		`{"action":"play","card":"seven"}`,
		`{"action":"play","tile":[1]}`,
		`{"action":"color","color":"purple"}`,
		`{"action":"play","end":"middle"}`,
	} {
		_, err := parseCommand([]byte(input))
		require.ErrorIs(t, err, consts.ErrorsInputInvalid, input)
	}
}
