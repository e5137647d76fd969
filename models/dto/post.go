package dto

// CreatePostRequest 定义了创建帖子的请求体。
// 只做存在性校验: title 和 authorId 必填，content 可为空。
type CreatePostRequest struct {
	Title    string `json:"title" binding:"required"`
	AuthorID string `json:"authorId" binding:"required"`
	Content  string `json:"content"`
}
