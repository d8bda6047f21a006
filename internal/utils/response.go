package utils

// Response is the envelope returned by every API operation. List
// operations populate TotalCount with the filtered row count, not the
// page size.
type Response struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Data       any    `json:"data,omitempty"`
	Error      string `json:"error,omitempty"`
	TotalCount *int64 `json:"total_count,omitempty"`
}

// OK builds a success envelope.
func OK(message string, data any) Response {
	return Response{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// OKList builds a success envelope for a paginated listing.
func OKList(message string, data any, totalCount int64) Response {
	return Response{
		Success:    true,
		Message:    message,
		Data:       data,
		TotalCount: &totalCount,
	}
}
