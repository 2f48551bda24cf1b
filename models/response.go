package models

// Response is the envelope used for error bodies and acknowledgements.
type Response struct {
	Success      int         `json:"success"`
	ErrorCode    string      `json:"error_code,omitempty"`
	ErrorDetails string      `json:"error_details,omitempty"`
	Data         interface{} `json:"data,omitempty"`
}

// ErrorResponse builds a failed Response with the given code and detail.
func ErrorResponse(code, details string) Response {
	return Response{Success: 0, ErrorCode: code, ErrorDetails: details}
}
