package constant

// 返回给客户端的错误信息，与前端约定的 {"error": "..."} 响应体一致。
const (
	MsgPostNotFound   = "Post not found"
	MsgAuthorNotFound = "Author not found"
	MsgImageNotFound  = "Image not found"
)
