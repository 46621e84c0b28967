package rules

import "strings"

// Result is the outcome of every business-rule check. Valid results carry no
// errors; single-reason failures carry exactly one entry.
type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

func pass() Result { return Result{Valid: true} }

func fail(msgs ...string) Result {
	return Result{Valid: false, Errors: msgs}
}

// Message joins all errors into a single line for notifications.
func (r Result) Message() string {
	return strings.Join(r.Errors, "; ")
}
