package models

// ApiResponse is the envelope every handler writes. Page/Limit/Total are only
// set on paginated list responses.
type ApiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Page    int    `json:"page,omitempty"`
	Limit   int    `json:"limit,omitempty"`
	Total   int    `json:"total,omitempty"`
}

func SuccessResponse(data any, message string) ApiResponse {
	return ApiResponse{Success: true, Data: data, Message: message}
}

func ErrorResponse(err string) ApiResponse {
	return ApiResponse{Success: false, Error: err}
}

func PaginatedResponse(data any, page, limit, total int) ApiResponse {
	return ApiResponse{Success: true, Data: data, Page: page, Limit: limit, Total: total}
}
