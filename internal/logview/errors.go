package logview

import "fmt"

// ResolveError wraps a failure from one of the services a log view
// resolution depends on.
type ResolveError struct {
	LogViewID string
	Reason    string
	Err       error
}

func (e *ResolveError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("resolve log view %q: %s: %v", e.LogViewID, e.Reason, e.Err)
	}
	return fmt.Sprintf("resolve log view %q: %s", e.LogViewID, e.Reason)
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}
