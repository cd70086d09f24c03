package reminder

import "errors"

var (
	ErrParseRepeat          = errors.New("invalid repeat")
	ErrEntryTimeIsNotUTC    = errors.New("entry time must be in UTC")
	ErrDocumentDoesNotExist = errors.New("reminder document does not exist")
	ErrEntryDoesNotExist    = errors.New("reminder entry does not exist")
	ErrDispatchDoesNotExist = errors.New("reminder dispatch does not exist")
)
