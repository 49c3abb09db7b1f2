package tutor

// State is a node of the session state machine.
type State string

const (
	StateAsking     State = "asking"
	StateExplaining State = "explaining"
	StateRecording  State = "recording"
	StateTerminated State = "terminated"
)

// Route is the pure routing function, invoked after every evaluate
// cycle. Guards are evaluated in order, first match wins:
//
//  1. Question cap reached, or session already inactive: Terminated.
//  2. Last answer wrong and no explanation issued yet for the current
//     question: Explaining (followed by Recording next cycle).
//  3. Otherwise: Recording, which chains into Asking.
//
// Terminated is absorbing.
func Route(s *SessionState, p Policy) State {
	if !s.Active {
		return StateTerminated
	}
	if s.QuestionsAsked >= p.QuestionCap {
		return StateTerminated
	}
	if s.LastEvaluation != nil && !s.LastEvaluation.Correct && !s.Explained {
		return StateExplaining
	}
	return StateRecording
}
