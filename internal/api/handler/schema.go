package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses (rendered by the central error handler).
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the success envelope every endpoint returns.
type messageResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}
