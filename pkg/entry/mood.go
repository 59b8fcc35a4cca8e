package entry

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Mood is an optional label on an entry. The core never interprets it; the
// enumeration exists so the CLI can validate flag input.
type Mood string

const (
	MoodNone    Mood = ""
	MoodHappy   Mood = "happy"
	MoodNeutral Mood = "neutral"
	MoodSad     Mood = "sad"
	MoodExcited Mood = "excited"
	MoodTired   Mood = "tired"
)

func Moods() []Mood {
	return []Mood{MoodHappy, MoodNeutral, MoodSad, MoodExcited, MoodTired}
}

// MoodForName resolves a user-supplied mood name, case-insensitively.
func MoodForName(name string) (Mood, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "none" {
		return MoodNone, nil
	}
	for _, m := range Moods() {
		if string(m) == name {
			return m, nil
		}
	}
	return MoodNone, fmt.Errorf("unknown mood %q", name)
}

// An unset mood marshals to null, matching the stored record shape.
func (m Mood) MarshalJSON() ([]byte, error) {
	if m == MoodNone {
		return []byte("null"), nil
	}
	return json.Marshal(string(m))
}

func (m *Mood) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*m = MoodNone
		return nil
	}
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	*m = Mood(name)
	return nil
}

func (m Mood) String() string {
	if m == MoodNone {
		return "none"
	}
	return string(m)
}
