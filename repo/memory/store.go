package memory

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_mock_service/models/entities"
	"github.com/Xushengqwer/blog_mock_service/myErrors"
)

// Stats 是存储中各类实体的数量快照。
type Stats struct {
	Authors int `json:"authors"`
	Posts   int `json:"posts"`
	Images  int `json:"images"`
}

// Store 定义了 mock 数据集的内存存储接口。
// 存储对象由 main 显式创建并注入到 service / task 中，不存在包级全局状态。
type Store interface {
	// AddAuthors 写入作者 (启动时一次性调用)。重复 ID 覆盖原值但保持首次出现的顺序。
	AddAuthors(authors ...entities.Author)

	// GetAuthor 按 ID 获取作者，不存在时返回 myErrors.ErrAuthorNotFound。
	GetAuthor(id string) (*entities.Author, error)

	// ListAuthors 按写入顺序返回全部作者。
	ListAuthors() []entities.Author

	// PostIDsByAuthor 返回作者的帖子 ID (创建顺序)。作者没有帖子时返回空切片。
	PostIDsByAuthor(authorID string) []string

	// PostsByAuthor 返回作者的全部帖子 (创建顺序)，作者不存在时返回 myErrors.ErrAuthorNotFound。
	PostsByAuthor(authorID string) ([]*entities.Post, error)

	// CreatePost 原子地写入帖子及其配图并更新作者索引。
	// - 作者不存在: myErrors.ErrAuthorNotFound，存储不变。
	// - ID 已存在: myErrors.ErrDuplicatePostID，存储不变。
	CreatePost(post *entities.Post, images []entities.Image) error

	// CreatePostBelow 与 CreatePost 相同，但仅当帖子总数 < limit 时才写入，
	// 否则返回 myErrors.ErrPostCeilingReached。检查与写入在同一临界区内完成。
	CreatePostBelow(limit int, post *entities.Post, images []entities.Image) error

	// GetPost 按 ID 获取帖子，不存在时返回 myErrors.ErrPostNotFound。
	GetPost(id string) (*entities.Post, error)

	// ListPosts 返回全部帖子，按 CreatedAt 降序；创建时间相同时后写入的在前。
	ListPosts() []*entities.Post

	// GetImage 按 ID 获取图片，不存在时返回 myErrors.ErrImageNotFound。
	GetImage(id string) (*entities.Image, error)

	PostCount() int
	Stats() Stats
}

type store struct {
	mu sync.RWMutex

	authors     map[string]entities.Author
	authorOrder []string

	posts         map[string]*entities.Post
	postOrder     []string
	postsByAuthor map[string][]string

	images map[string]entities.Image

	logger *zap.Logger
}

// NewStore 创建一个空的内存存储。
func NewStore(logger *zap.Logger) Store {
	return &store{
		authors:       make(map[string]entities.Author),
		posts:         make(map[string]*entities.Post),
		postsByAuthor: make(map[string][]string),
		images:        make(map[string]entities.Image),
		logger:        logger,
	}
}

func (s *store) AddAuthors(authors ...entities.Author) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range authors {
		if _, exists := s.authors[a.ID]; !exists {
			s.authorOrder = append(s.authorOrder, a.ID)
		}
		s.authors[a.ID] = a
	}
	s.logger.Debug("作者已写入内存存储", zap.Int("added", len(authors)), zap.Int("total", len(s.authors)))
}

func (s *store) GetAuthor(id string) (*entities.Author, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.authors[id]
	if !ok {
		return nil, myErrors.ErrAuthorNotFound
	}
	return &a, nil
}

func (s *store) ListAuthors() []entities.Author {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.Author, 0, len(s.authorOrder))
	for _, id := range s.authorOrder {
		out = append(out, s.authors[id])
	}
	return out
}

func (s *store) PostIDsByAuthor(authorID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.postsByAuthor[authorID]
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

func (s *store) PostsByAuthor(authorID string) ([]*entities.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.authors[authorID]; !ok {
		return nil, myErrors.ErrAuthorNotFound
	}
	ids := s.postsByAuthor[authorID]
	out := make([]*entities.Post, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.posts[id].Clone())
	}
	return out, nil
}

func (s *store) CreatePost(post *entities.Post, images []entities.Image) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.insertLocked(post, images)
}

func (s *store) CreatePostBelow(limit int, post *entities.Post, images []entities.Image) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.posts) >= limit {
		return myErrors.ErrPostCeilingReached
	}
	return s.insertLocked(post, images)
}

// insertLocked 要求调用方已持有写锁。所有校验都在修改之前完成，失败时存储保持不变。
func (s *store) insertLocked(post *entities.Post, images []entities.Image) error {
	author, ok := s.authors[post.AuthorID]
	if !ok {
		return myErrors.ErrAuthorNotFound
	}
	if _, exists := s.posts[post.ID]; exists {
		return myErrors.ErrDuplicatePostID
	}

	post.AuthorName = author.Name
	if post.ImageIDs == nil {
		post.ImageIDs = []string{}
	}

	for _, img := range images {
		s.images[img.ID] = img
	}
	s.posts[post.ID] = post.Clone()
	s.postOrder = append(s.postOrder, post.ID)
	s.postsByAuthor[author.ID] = append(s.postsByAuthor[author.ID], post.ID)

	s.logger.Debug("帖子已写入内存存储",
		zap.String("postID", post.ID),
		zap.String("authorID", author.ID),
		zap.Int("images", len(images)),
		zap.Int("totalPosts", len(s.posts)),
	)
	return nil
}

func (s *store) GetPost(id string) (*entities.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.posts[id]
	if !ok {
		return nil, myErrors.ErrPostNotFound
	}
	return p.Clone(), nil
}

func (s *store) ListPosts() []*entities.Post {
	s.mu.RLock()
	out := make([]*entities.Post, 0, len(s.postOrder))
	// 先按写入顺序倒序排列，稳定排序后 CreatedAt 相同的帖子仍是后写入的在前。
	for i := len(s.postOrder) - 1; i >= 0; i-- {
		out = append(out, s.posts[s.postOrder[i]].Clone())
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (s *store) GetImage(id string) (*entities.Image, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	img, ok := s.images[id]
	if !ok {
		return nil, myErrors.ErrImageNotFound
	}
	return &img, nil
}

func (s *store) PostCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.posts)
}

func (s *store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Stats{
		Authors: len(s.authors),
		Posts:   len(s.posts),
		Images:  len(s.images),
	}
}
