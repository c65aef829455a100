package response

const (
	// MessageSuccess is the message attached to successful responses.
	MessageSuccess = "Success"

	// DefaultErrorMessage hides internal details from the caller.
	DefaultErrorMessage = "Something went wrong"

	// InternalServerErrorCode is the error_code used for 500 responses.
	InternalServerErrorCode = 500

	// DateTimeFormat is the wire format for DateTime values.
	DateTimeFormat = "2006-01-02 15:04:05"
)
