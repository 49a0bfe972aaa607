package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Registration errors
var (
	// ErrDuplicateInRequest indicates the same USN appears more than once
	// in a single team submission.
	ErrDuplicateInRequest = errors.New("duplicate USN in request")

	// ErrAlreadyRegistered indicates a submitted student already belongs to
	// a committed team.
	ErrAlreadyRegistered = errors.New("student already registered in another team")

	// ErrDuplicateTeamName indicates the team name is already taken.
	ErrDuplicateTeamName = errors.New("team name already exists")

	// ErrNoEligibleMentor indicates no mentor in the allocation department
	// has remaining capacity. The whole submission is voided.
	ErrNoEligibleMentor = errors.New("no eligible mentor available")

	// ErrStorageFault covers transaction or connectivity failures. Nothing
	// partial was committed, so the caller may retry the whole operation.
	ErrStorageFault = errors.New("storage fault")
)

// Profile errors
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrTeamNotFound    = errors.New("team not found")
	ErrProjectNotFound = errors.New("project not found")
)

// NewDuplicateInRequestError creates an error for a USN repeated within one submission
func NewDuplicateInRequestError(usn string) error {
	return &CustomError{
		Err:     ErrDuplicateInRequest,
		Message: "Duplicate USNs found in the request. A student cannot be added twice to the same team.",
		Details: map[string]interface{}{"usn": usn},
	}
}

// NewAlreadyRegisteredError creates an error for a student who already belongs to a committed team
func NewAlreadyRegisteredError(studentName, usn, existingTeamName string) error {
	return &CustomError{
		Err:     ErrAlreadyRegistered,
		Message: "Student '" + studentName + "' (USN: " + usn + ") is already registered in team '" + existingTeamName + "'.",
		Details: map[string]interface{}{
			"studentName":      studentName,
			"usn":              usn,
			"existingTeamName": existingTeamName,
		},
	}
}

// NewNoEligibleMentorError creates an error for a department with no remaining mentor capacity
func NewNoEligibleMentorError(department string) error {
	return &CustomError{
		Err:     ErrNoEligibleMentor,
		Message: "Submission failed: no eligible mentor found in " + department + " department. Project was not submitted.",
		Details: map[string]interface{}{"department": department},
	}
}

// NewStorageFaultError wraps an underlying storage error
func NewStorageFaultError(cause error) error {
	return &CustomError{
		Err:     ErrStorageFault,
		Message: "storage fault: " + cause.Error(),
	}
}

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err       error
	Message   string
	StatusMsg string
	Code      string
	Details   map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}

// WithStatusMsg adds a user-friendly status message
func (e *CustomError) WithStatusMsg(msg string) *CustomError {
	e.StatusMsg = msg
	return e
}
