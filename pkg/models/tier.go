package models

import (
	"encoding"
	"fmt"
	"strings"
)

// Tier is the difficulty level a card belongs to.
type Tier int

const (
	Easy Tier = iota + 1
	Medium
	Hard
)

// Progression is the fixed order in which tiers are reviewed.
var Progression = [...]Tier{Easy, Medium, Hard}

var tierNames = [...]string{Easy: "EASY", Medium: "MEDIUM", Hard: "HARD"}

var (
	_ fmt.Stringer             = Tier(0)
	_ encoding.TextMarshaler   = Tier(0)
	_ encoding.TextUnmarshaler = (*Tier)(nil)
)

func (t Tier) IsValid() bool {
	return t >= Easy && t <= Hard
}

func (t Tier) String() string {
	if t.IsValid() {
		return tierNames[t]
	}
	return fmt.Sprintf("Tier(%d)", int(t))
}

// NextTier returns the tier reviewed after t. There is nothing after Hard.
func NextTier(t Tier) (Tier, bool) {
	for i, p := range Progression {
		if p == t && i+1 < len(Progression) {
			return Progression[i+1], true
		}
	}
	return 0, false
}

// ParseTier accepts tier names case-insensitively ("easy", "MEDIUM", "Hard").
func ParseTier(s string) (Tier, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for _, t := range Progression {
		if tierNames[t] == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("invalid tier: %q", s)
}

func (t Tier) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("invalid tier: %d", int(t))
	}
	return []byte(tierNames[t]), nil
}

func (t *Tier) UnmarshalText(text []byte) error {
	v, err := ParseTier(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
