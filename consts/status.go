package consts

import (
	"encoding/json"
	"fmt"
)

// Status is the lifecycle of a game. It only moves forward.
type Status int

const (
	StatusWaiting Status = iota
	StatusPlaying
	StatusFinished
)

var statusNames = map[Status]string{
	StatusWaiting:  "waiting",
	StatusPlaying:  "playing",
	StatusFinished: "finished",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// CanBecome reports whether s may transition to next.
func (s Status) CanBecome(next Status) bool {
	return next == s+1 && next <= StatusFinished
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for status, statusName := range statusNames {
		if statusName == name {
			*s = status
			return nil
		}
	}
	return fmt.Errorf("invalid status '%s'", name)
}
