package vo

// ErrorResponse 是所有失败响应的统一结构，例如 {"error": "Post not found"}。
type ErrorResponse struct {
	Error string `json:"error" example:"Post not found"`
}
