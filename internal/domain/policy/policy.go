// Package policy holds stateless business decisions over entities.
// Policies never query repositories; callers load the data they reason about.
package policy

// Decision is the answer to a "may X happen given Y" question.
type Decision struct {
	Allowed bool
	Reason  string
}

// Allow returns a positive decision.
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny returns a negative decision with the reason shown to the caller.
func Deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// ApprovalResult reports the outcome of an approval step that mutates entities.
type ApprovalResult struct {
	Success bool
	Message string
}

func approvalFailed(message string) ApprovalResult {
	return ApprovalResult{Success: false, Message: message}
}

func approvalSucceeded(message string) ApprovalResult {
	return ApprovalResult{Success: true, Message: message}
}
