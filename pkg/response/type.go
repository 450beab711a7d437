package response

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

const (
	// MessageSuccess is the message returned on every 200 response.
	MessageSuccess = "Success"

	// DefaultErrorMessage masks internal errors from clients.
	DefaultErrorMessage = "Something went wrong"

	// InternalServerErrorCode is the error_code for masked 500 responses.
	InternalServerErrorCode = 500
)
