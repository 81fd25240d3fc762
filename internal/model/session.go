package model

// SessionState identifies which conversational context a user is in.
type SessionState int

const (
	// StateMain is the initial state: the user is browsing the category menu.
	StateMain SessionState = iota
	// StateCategory means the user has opened a category and free text is
	// interpreted as item selections.
	StateCategory
)

// String implements fmt.Stringer for log output.
func (s SessionState) String() string {
	switch s {
	case StateMain:
		return "main"
	case StateCategory:
		return "category"
	default:
		return "unknown"
	}
}

// Session is the per-user conversational state. ActiveCategory is only set
// while State is StateCategory.
type Session struct {
	ActiveCategory string
	State          SessionState
}
