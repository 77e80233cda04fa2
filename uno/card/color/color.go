package color

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
)

type Color int

// None is the zero value: no color chosen yet.
const (
	None Color = iota
	Red
	Yellow
	Green
	Blue
	Wild
)

type colorStruct struct {
	name          string
	colorFunction func(string, ...interface{}) string
}

var colors = map[Color]colorStruct{
	Red:    {name: "red", colorFunction: color.New(color.FgHiRed).SprintfFunc()},
	Yellow: {name: "yellow", colorFunction: color.New(color.FgHiYellow).SprintfFunc()},
	Green:  {name: "green", colorFunction: color.New(color.FgHiGreen).SprintfFunc()},
	Blue:   {name: "blue", colorFunction: color.New(color.FgHiCyan).SprintfFunc()},
	Wild:   {name: "wild", colorFunction: color.New(color.FgHiMagenta).SprintfFunc()},
}

// Suits are the four playable colors, in deck order.
var Suits = []Color{Red, Yellow, Green, Blue}

var Stdout io.Writer = color.Output

func (c Color) Name() string {
	if c == None {
		return ""
	}
	if s, ok := colors[c]; ok {
		return s.name
	}
	return fmt.Sprintf("color(%d)", int(c))
}

// Concrete reports whether c is one of the four suits a wild can be turned into.
func (c Color) Concrete() bool {
	return c >= Red && c <= Blue
}

func (c Color) Paint(text string) string {
	return c.Paintf("%s", text)
}

func (c Color) Paintf(text string, args ...interface{}) string {
	s, ok := colors[c]
	if !ok {
		return fmt.Sprintf(text, args...)
	}
	return s.colorFunction(text, args...)
}

func (c Color) String() string {
	return c.Paint(c.Name())
}

func (c Color) MarshalJSON() ([]byte, error) {
	if c == None {
		return []byte("null"), nil
	}
	return json.Marshal(c.Name())
}

func (c *Color) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = None
		return nil
	}
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ByName(name)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func ByName(name string) (Color, error) {
	for c, s := range colors {
		if s.name == name {
			return c, nil
		}
	}
	return None, fmt.Errorf("invalid color '%s'", name)
}
