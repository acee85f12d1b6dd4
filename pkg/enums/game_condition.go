package enums

import "fmt"

// GameCondition grades the physical state of an owned copy.
type GameCondition string

const (
	GameConditionMint      GameCondition = "mint"
	GameConditionExcellent GameCondition = "excellent"
	GameConditionGood      GameCondition = "good"
	GameConditionFair      GameCondition = "fair"
	GameConditionPoor      GameCondition = "poor"
)

var validGameConditions = []GameCondition{
	GameConditionMint,
	GameConditionExcellent,
	GameConditionGood,
	GameConditionFair,
	GameConditionPoor,
}

// String implements fmt.Stringer.
func (c GameCondition) String() string {
	return string(c)
}

// IsValid reports whether the value is a known GameCondition.
func (c GameCondition) IsValid() bool {
	for _, candidate := range validGameConditions {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseGameCondition converts raw input into a GameCondition.
func ParseGameCondition(value string) (GameCondition, error) {
	for _, candidate := range validGameConditions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid game condition %q", value)
}
