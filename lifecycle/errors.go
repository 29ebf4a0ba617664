package lifecycle

import (
	"errors"
	"fmt"

	"github.com/jikgwan/companion-api/schema"
	"github.com/jikgwan/companion-api/store"
)

var (
	ErrInvalidStateTransition = fmt.Errorf("the request is not in a status that allows this action")
	ErrValidation             = fmt.Errorf("invalid parameters")
	ErrGameNotScheduled       = fmt.Errorf("the team has no game on the requested date")
)

func invalidTransition(from, to schema.RequestStatus) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidStateTransition, from, to)
}

// actionNotAllowed reports an action that keeps the request status but is
// only allowed in some statuses, e.g. editing or rejecting a proposal
func actionNotAllowed(status schema.RequestStatus, action string) error {
	return fmt.Errorf("%w: request is %s, cannot %s", ErrInvalidStateTransition, status, action)
}

func invalidProposalTransition(id uint, from, to schema.ProposalStatus) error {
	return fmt.Errorf("%w: proposal %d is %s, cannot become %s", ErrInvalidStateTransition, id, from, to)
}

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// staleAsInvalid turns a lost conditional update into an invalid transition.
// It happens when a concurrent call moved the record first.
func staleAsInvalid(err error, from, to schema.RequestStatus) error {
	if errors.Is(err, store.ErrStatusMismatch) {
		return invalidTransition(from, to)
	}
	return err
}
