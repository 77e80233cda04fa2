package card

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ratel-online/partybox/uno/card/action"
	"github.com/ratel-online/partybox/uno/card/color"
)

// Value is a card face: a rank from 0 to 9, an action or a wild variant.
type Value int

const (
	Zero Value = iota
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Skip
	Reverse
	DrawTwo
	Wild
	WildDrawFour
)

var valueNames = map[Value]string{
	Skip:         "skip",
	Reverse:      "reverse",
	DrawTwo:      "draw2",
	Wild:         "wild",
	WildDrawFour: "draw4",
}

func (v Value) IsNumber() bool {
	return v >= Zero && v <= Nine
}

func (v Value) String() string {
	if v.IsNumber() {
		return strconv.Itoa(int(v))
	}
	if name, ok := valueNames[v]; ok {
		return name
	}
	return fmt.Sprintf("value(%d)", int(v))
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ValueByName(name)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func ValueByName(name string) (Value, error) {
	if number, err := strconv.Atoi(name); err == nil && Value(number).IsNumber() {
		return Value(number), nil
	}
	for value, valueName := range valueNames {
		if valueName == name {
			return value, nil
		}
	}
	return 0, fmt.Errorf("invalid card value '%s'", name)
}

// Card is immutable once dealt; ID is unique within a deck.
type Card struct {
	ID    int         `json:"id"`
	Color color.Color `json:"color"`
	Value Value       `json:"value"`
}

func NewCard(id int, cardColor color.Color, value Value) Card {
	return Card{ID: id, Color: cardColor, Value: value}
}

func (c Card) IsWild() bool {
	return c.Value == Wild || c.Value == WildDrawFour
}

func (c Card) Actions() []action.Action {
	switch c.Value {
	case Skip:
		return []action.Action{
			action.NewSkipTurnAction(),
		}
	case Reverse:
		return []action.Action{
			action.NewReverseTurnsAction(),
		}
	case DrawTwo:
		return []action.Action{
			action.NewDrawCardsAction(2),
			action.NewSkipTurnAction(),
		}
	case Wild:
		return []action.Action{
			action.NewPickColorAction(),
		}
	case WildDrawFour:
		return []action.Action{
			action.NewPickColorAction(),
			action.NewDrawCardsAction(4),
			action.NewSkipTurnAction(),
		}
	}
	return []action.Action{}
}

// Name is the plain label used in table messages.
func (c Card) Name() string {
	switch c.Value {
	case Wild:
		return "wild"
	case WildDrawFour:
		return "wild draw four"
	case DrawTwo:
		return fmt.Sprintf("%s draw two", c.Color.Name())
	}
	return fmt.Sprintf("%s %s", c.Color.Name(), c.Value)
}

func (c Card) String() string {
	switch c.Value {
	case Skip:
		return c.Color.Paint("(/)")
	case Reverse:
		return c.Color.Paint("<=>")
	case DrawTwo:
		return c.Color.Paint("+2!")
	case Wild:
		return c.Color.Paint("(*)")
	case WildDrawFour:
		return c.Color.Paint("+4!")
	}
	return c.Color.Paintf("[%d]", int(c.Value))
}
