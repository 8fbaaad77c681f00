package models

const (
	MsgUnauthorized    = "Unauthorized"
	MsgFieldsRequired  = "Title and content are required"
	MsgFieldsEmpty     = "Title and content cannot be empty"
	MsgInvalidBody     = "Invalid JSON body"
	MsgWritingNotFound = "Writing not found"
	MsgSlugConflict    = "A writing with this slug already exists"
	MsgInternalError   = "Internal server error"
	MsgWritingDeleted  = "Writing deleted successfully"
)

type ErrorUnauthorized struct {
	Message string
}

func (e ErrorUnauthorized) Error() string { return e.Message }

type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string { return e.Message }

type ErrorConflict struct {
	Message string
	Err     error
}

func (e ErrorConflict) Error() string { return e.Message }

func (e ErrorConflict) Unwrap() error { return e.Err }

// ErrorValidation carries the client-facing message plus optional
// per-field details for verbose mode.
type ErrorValidation struct {
	Message string
	Details map[string]string
	Err     error
}

func (e ErrorValidation) Error() string { return e.Message }

func (e ErrorValidation) Unwrap() error { return e.Err }
