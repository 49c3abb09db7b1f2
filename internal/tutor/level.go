// Package tutor implements the adaptive tutoring loop: question
// generation, answer evaluation, conditional explanation, progress
// adaptation, and the router that connects them.
package tutor

// Level is a student's understanding level for a topic. Levels are
// ordinal: beginner < intermediate < advanced.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// ParseLevel normalizes a level string, defaulting to beginner for
// anything unrecognized.
func ParseLevel(s string) Level {
	switch Level(s) {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return Level(s)
	default:
		return LevelBeginner
	}
}

// Promote returns the next level up, capped at advanced.
func (l Level) Promote() Level {
	switch l {
	case LevelBeginner:
		return LevelIntermediate
	case LevelIntermediate:
		return LevelAdvanced
	default:
		return LevelAdvanced
	}
}

// Demote returns the next level down, floored at beginner.
func (l Level) Demote() Level {
	switch l {
	case LevelAdvanced:
		return LevelIntermediate
	case LevelIntermediate:
		return LevelBeginner
	default:
		return LevelBeginner
	}
}

func (l Level) String() string {
	return string(l)
}
