package entities

import "time"

// Post 帖子实体
// - 创建后不可修改、不可删除。
// - ImageIDs 保持配图的顺序，序列化时始终是数组 (不会是 null)。
type Post struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
	ImageIDs   []string  `json:"imageIds"`
}

// Clone 返回帖子的深拷贝，避免调用方通过切片修改存储中的数据。
func (p *Post) Clone() *Post {
	if p == nil {
		return nil
	}
	cp := *p
	cp.ImageIDs = make([]string, len(p.ImageIDs))
	copy(cp.ImageIDs, p.ImageIDs)
	return &cp
}
