package http

// APIResponse represents a standard error/status response body.
type APIResponse struct {
	Status  int         `json:"status" example:"200"`
	Message string      `json:"message" example:"OK"`
	Data    interface{} `json:"data,omitempty"`
}

// ValidationError represents validation error detail.
type ValidationError struct {
	Code    string                 `json:"code,omitempty" example:"ERR_REQUIRED"`
	Field   string                 `json:"field,omitempty" example:"headline"`
	Message string                 `json:"message,omitempty" example:"headline is required"`
	Params  map[string]interface{} `json:"params,omitempty"`
}
