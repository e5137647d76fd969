package entities

// Image 帖子配图，随帖子一起创建。
type Image struct {
	ID  string `json:"id"`
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"` // 可选的替代文本
}
