package cli

import (
	"errors"

	"github.com/dmitrijs2005/eventdesk/internal/common"
	"github.com/dmitrijs2005/eventdesk/internal/models"
)

var messages = []struct {
	err error
	msg string
}{
	{common.ErrDuplicateAccount, "An account with this email already exists"},
	{common.ErrUnknownUser, "Invalid email or password"},
	{common.ErrInvalidCredential, "Invalid email or password"},
	{common.ErrNotAuthenticated, "Please log in first"},
	{common.ErrNotFound, "Event not found"},
	{common.ErrScheduleConflict, "This event overlaps with an existing event"},
	{common.ErrStorageUnavailable, "Storage is unavailable"},
}

// messagesFor turns an operation error into user-facing lines.
func messagesFor(err error) []string {
	var fe *models.FormError
	if errors.As(err, &fe) {
		return fe.Problems
	}
	for _, m := range messages {
		if errors.Is(err, m.err) {
			return []string{m.msg}
		}
	}
	return []string{err.Error()}
}
