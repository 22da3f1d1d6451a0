package court

import "errors"

var (
	// ErrDuplicateSubmission - the author already has a verdict on this case.
	ErrDuplicateSubmission = errors.New("you have already submitted a verdict for this case")

	// ErrDuplicateCase - a case already exists for today's date key.
	ErrDuplicateCase = errors.New("a case already exists for today")

	// ErrVerdictNotFound - vote target does not exist.
	ErrVerdictNotFound = errors.New("verdict not found")

	ErrEmptyVerdict     = errors.New("verdict text must not be empty")
	ErrVerdictTooLong   = errors.New("verdict text must be 140 characters or fewer")
	ErrInvalidStance    = errors.New("stance must be GUILTY, INNOCENT or ESH")
	ErrInvalidDirection = errors.New("vote direction must be +1 or -1")
	ErrInvalidCase      = errors.New("case draft is missing required fields")
)
