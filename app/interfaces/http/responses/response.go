package responses

// ErrorListResponse carries the numeric error taxonomy for request failures.
type ErrorListResponse struct {
	Errors []int `json:"errors"`
}

// NewErrorListResponse wraps taxonomy codes for the response body.
func NewErrorListResponse(codes ...int) ErrorListResponse {
	return ErrorListResponse{Errors: codes}
}

// DownloadFailedResponse is the embedded-error body returned with a 200
// status when the derived object cannot be read back for serving.
type DownloadFailedResponse struct {
	Error string `json:"error"`
}

const DownloadFailedMessage = "Could not get file to download"
