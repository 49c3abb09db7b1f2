package app

import "github.com/avinashj/socratic/internal/tutor"

// sessionReadyMsg carries the started session, or the reason it could
// not start.
type sessionReadyMsg struct {
	Session *tutor.Session
	Err     error
}

// stepMsg carries the result of one answer cycle.
type stepMsg struct {
	Step *tutor.Step
	Err  error
}

// endedMsg carries the terminal session result.
type endedMsg struct {
	Result *tutor.Result
}
