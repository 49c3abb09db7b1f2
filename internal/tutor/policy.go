package tutor

// Policy holds the tunable thresholds of the adaptation and routing
// logic. The numbers are policy, not law; callers may override them.
type Policy struct {
	// QuestionCap ends the session once this many questions have been
	// asked and evaluated.
	QuestionCap int

	// PromoteAt is the running-accuracy threshold (fraction, 0-1) at
	// or above which the level is promoted.
	PromoteAt float64

	// DemoteBelow is the running-accuracy threshold below which the
	// level is demoted.
	DemoteBelow float64

	// QuestionFloor is the minimum number of evaluated questions
	// before any promotion or demotion. Prevents oscillation from a
	// single lucky or unlucky answer.
	QuestionFloor int
}

// DefaultPolicy returns the standard thresholds.
func DefaultPolicy() Policy {
	return Policy{
		QuestionCap:   10,
		PromoteAt:     0.8,
		DemoteBelow:   0.4,
		QuestionFloor: 3,
	}
}

// Adapt applies the promotion/demotion rules to the current level
// given running accuracy and question count. The returned level takes
// effect for the next question only.
func (p Policy) Adapt(level Level, accuracy float64, questionsAsked int) Level {
	if questionsAsked < p.QuestionFloor {
		return level
	}
	switch {
	case accuracy >= p.PromoteAt && level != LevelAdvanced:
		return level.Promote()
	case accuracy < p.DemoteBelow && level != LevelBeginner:
		return level.Demote()
	default:
		return level
	}
}
