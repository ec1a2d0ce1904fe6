package scoring

import "errors"

// Precondition violations. Handlers refuse the action and mutate
// nothing; the front-end disables the triggering control ahead of time,
// so hitting these is defense-in-depth.
var (
	ErrAlreadyChecked       = errors.New("question already checked")
	ErrAlreadyRetried       = errors.New("retry already submitted for this attempt")
	ErrIncompleteSubmission = errors.New("all questions must be answered before submitting")
	ErrInvalidSelection     = errors.New("selection does not match any option")
)

// Unknown identifiers.
var (
	ErrUnknownSection  = errors.New("unknown section")
	ErrUnknownQuestion = errors.New("unknown question")
	ErrUnknownTest     = errors.New("unknown test")
	ErrAttemptNotFound = errors.New("attempt not found")
)
