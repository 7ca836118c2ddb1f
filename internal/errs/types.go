package errs

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

type NotFoundError struct {
	ErrorMessage
}

type ValidationError struct {
	ErrorMessage
}

// StorageError wraps preference-store failures with the operation that hit
// them, for logging.
type StorageError struct {
	ErrorMessage
	Operation string
}

// FeedError is a remote transaction feed failure. Always non-fatal: the
// fixture data stays visible and the error is surfaced once, with no retry.
type FeedError struct {
	ErrorMessage
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewStorageError(operation, message string) *StorageError {
	return &StorageError{
		ErrorMessage: ErrorMessage{Message: message},
		Operation:    operation,
	}
}

func NewFeedError(message string) *FeedError {
	return &FeedError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}
