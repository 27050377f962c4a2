package diagnose

import (
	sess "github.com/abhisek/keizoku/internal/session"
)

// classifiedMsg is sent when the classifier has finished with a complete
// response set.
type classifiedMsg struct {
	State sess.State
	Err   error
}
