package vo

import "github.com/Xushengqwer/blog_mock_service/models/entities"

// AuthorWithPostIDs 作者列表中的一项: 作者信息 + 按创建顺序排列的帖子 ID。
type AuthorWithPostIDs struct {
	entities.Author
	PostIDs []string `json:"postIds"`
}

// AuthorWithPosts 作者详情: 作者信息 + 按创建顺序排列的完整帖子。
type AuthorWithPosts struct {
	entities.Author
	Posts []*entities.Post `json:"posts"`
}
