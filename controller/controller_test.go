package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Xushengqwer/blog_mock_service/config"
	"github.com/Xushengqwer/blog_mock_service/fixtures"
	"github.com/Xushengqwer/blog_mock_service/latency"
	"github.com/Xushengqwer/blog_mock_service/models/entities"
	"github.com/Xushengqwer/blog_mock_service/models/vo"
	"github.com/Xushengqwer/blog_mock_service/repo/memory"
	"github.com/Xushengqwer/blog_mock_service/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestRouter(t *testing.T) (*gin.Engine, memory.Store) {
	logger := zaptest.NewLogger(t)
	store := memory.NewStore(logger)
	store.AddAuthors(fixtures.StaticAuthors()...)
	sim := latency.NewSimulator(config.LatencyConfig{Enabled: false}, logger)
	gen := fixtures.NewGenerator(config.FixtureConfig{})

	r := gin.New()
	api := r.Group("/api")
	NewPostController(service.NewPostService(store, sim, gen, nil, logger)).RegisterRoutes(api)
	NewAuthorController(service.NewAuthorService(store, sim, logger)).RegisterRoutes(api)
	NewImageController(service.NewImageService(store, sim, logger)).RegisterRoutes(api)
	return r, store
}

func doRequest(r http.Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	var resp vo.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}

func TestCreatePost_ThenVisibleOnAuthor(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doRequest(r, http.MethodPost, "/api/posts", []byte(`{"title":"Hello","authorId":"author-1","content":"World"}`))
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "author-1", created["authorId"])
	assert.Equal(t, "Hello", created["title"])
	assert.Equal(t, "World", created["content"])
	assert.Equal(t, "Alice", created["authorName"])
	assert.Equal(t, []interface{}{}, created["imageIds"])
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "/posts/"+id, w.Header().Get("Location"))

	w = doRequest(r, http.MethodGet, "/api/authors/author-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var author vo.AuthorWithPosts
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &author))
	assert.Equal(t, "Alice", author.Name)
	require.Len(t, author.Posts, 1)
	assert.Equal(t, id, author.Posts[0].ID)

	w = doRequest(r, http.MethodGet, "/api/posts/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var post entities.Post
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))
	assert.Equal(t, "Hello", post.Title)
}

func TestCreatePost_UnknownAuthor(t *testing.T) {
	r, store := setupTestRouter(t)

	w := doRequest(r, http.MethodPost, "/api/posts", []byte(`{"title":"Hello","authorId":"author-999","content":"World"}`))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Author not found", decodeError(t, w))
	assert.Equal(t, 0, store.PostCount())
	assert.Empty(t, w.Header().Get("Location"))
}

func TestCreatePost_BadRequest(t *testing.T) {
	r, store := setupTestRouter(t)

	for name, body := range map[string]string{
		"not json":       `title=Hello`,
		"missing title":  `{"authorId":"author-1"}`,
		"missing author": `{"title":"Hello"}`,
		"empty body":     ``,
	} {
		t.Run(name, func(t *testing.T) {
			w := doRequest(r, http.MethodPost, "/api/posts", []byte(body))
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.NotEmpty(t, decodeError(t, w))
		})
	}
	assert.Equal(t, 0, store.PostCount())
}

func TestGet_NotFound(t *testing.T) {
	r, _ := setupTestRouter(t)

	cases := map[string]string{
		"/api/posts/post-missing":     "Post not found",
		"/api/authors/author-missing": "Author not found",
		"/api/images/image-missing":   "Image not found",
	}
	for path, msg := range cases {
		w := doRequest(r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Equal(t, msg, decodeError(t, w), path)
	}
}

func TestListPosts_SortedNewestFirst(t *testing.T) {
	r, store := setupTestRouter(t)
	base := time.Date(2024, 3, 23, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.CreatePost(&entities.Post{ID: "post-old", AuthorID: "author-2", CreatedAt: base.Add(-48 * time.Hour)}, nil))
	require.NoError(t, store.CreatePost(&entities.Post{ID: "post-new", AuthorID: "author-3", CreatedAt: base}, nil))
	require.NoError(t, store.CreatePost(&entities.Post{ID: "post-mid", AuthorID: "author-2", CreatedAt: base.Add(-time.Hour)}, nil))

	w := doRequest(r, http.MethodGet, "/api/posts", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var posts []entities.Post
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	require.Len(t, posts, 3)
	assert.Equal(t, "post-new", posts[0].ID)
	assert.Equal(t, "post-mid", posts[1].ID)
	assert.Equal(t, "post-old", posts[2].ID)
}

func TestListAuthors_PostIDsAlwaysArray(t *testing.T) {
	r, store := setupTestRouter(t)
	require.NoError(t, store.CreatePost(&entities.Post{ID: "post-1", AuthorID: "author-2"}, nil))

	w := doRequest(r, http.MethodGet, "/api/authors", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var authors []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &authors))
	require.Len(t, authors, 12)
	assert.Equal(t, "author-1", authors[0]["id"])
	assert.Equal(t, []interface{}{}, authors[0]["postIds"])
	assert.Equal(t, []interface{}{"post-1"}, authors[1]["postIds"])
}

func TestGetImage(t *testing.T) {
	r, store := setupTestRouter(t)
	require.NoError(t, store.CreatePost(
		&entities.Post{ID: "post-1", AuthorID: "author-1", ImageIDs: []string{"image-1", "image-2"}},
		[]entities.Image{
			{ID: "image-1", URL: "https://images.dog.ceo/breeds/pug/1.jpg", Alt: "A pug dog"},
			{ID: "image-2", URL: "https://images.dog.ceo/breeds/pug/2.jpg"},
		},
	))

	w := doRequest(r, http.MethodGet, "/api/images/image-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"image-1","url":"https://images.dog.ceo/breeds/pug/1.jpg","alt":"A pug dog"}`, w.Body.String())

	w = doRequest(r, http.MethodGet, "/api/images/image-2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"image-2","url":"https://images.dog.ceo/breeds/pug/2.jpg"}`, w.Body.String())
}
