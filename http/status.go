package http

// IsSuccess checks if status code is a success (2xx).
func IsSuccess(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}

// IsClientError checks if status code is a client error (4xx).
func IsClientError(statusCode int) bool {
	return statusCode >= 400 && statusCode < 500
}

// IsServerError checks if status code is a server error (5xx).
func IsServerError(statusCode int) bool {
	return statusCode >= 500 && statusCode < 600
}
