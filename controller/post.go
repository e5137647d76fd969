package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/blog_mock_service/constant"
	"github.com/Xushengqwer/blog_mock_service/models/dto"
	"github.com/Xushengqwer/blog_mock_service/service"
)

// PostController 定义帖子控制器的结构体
type PostController struct {
	postService service.PostService
}

// NewPostController 构造函数，用于创建 PostController 实例
func NewPostController(postService service.PostService) *PostController {
	return &PostController{postService: postService}
}

// ListPosts 获取全部帖子
// @Summary      获取帖子列表
// @Description  返回全部帖子，按创建时间倒序。帖子越多，响应越慢。
// @Tags         posts (帖子)
// @Produce      json
// @Success      200 {array}  entities.Post "帖子列表"
// @Failure      503 {object} vo.ErrorResponse "请求在模拟延迟期间被取消"
// @Router       /api/posts [get]
func (ctrl *PostController) ListPosts(c *gin.Context) {
	posts, err := ctrl.postService.ListPosts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetPost 获取单个帖子
// @Summary      获取帖子详情
// @Tags         posts (帖子)
// @Produce      json
// @Param        id path string true "帖子 ID"
// @Success      200 {object} entities.Post "帖子"
// @Failure      404 {object} vo.ErrorResponse "Post not found"
// @Router       /api/posts/{id} [get]
func (ctrl *PostController) GetPost(c *gin.Context) {
	post, err := ctrl.postService.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// CreatePost 创建帖子
// @Summary      创建新帖子
// @Description  创建一篇无配图的帖子。作者必须存在，成功时 Location 头指向前端帖子页。
// @Tags         posts (帖子)
// @Accept       json
// @Produce      json
// @Param        post body dto.CreatePostRequest true "帖子内容"
// @Success      201 {object} entities.Post "创建成功"
// @Header       201 {string} Location "/posts/{id}"
// @Failure      400 {object} vo.ErrorResponse "请求体无效"
// @Failure      404 {object} vo.ErrorResponse "Author not found"
// @Router       /api/posts [post]
func (ctrl *PostController) CreatePost(c *gin.Context) {
	// 1. 绑定并校验请求体 (只做存在性校验)
	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	// 2. 调用服务层创建帖子
	post, err := ctrl.postService.CreatePost(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	// 3. 201 + Location
	c.Header("Location", constant.LocationPrefix+post.ID)
	c.JSON(http.StatusCreated, post)
}

// RegisterRoutes 注册帖子相关路由
func (ctrl *PostController) RegisterRoutes(group *gin.RouterGroup) {
	posts := group.Group("/posts")
	{
		posts.GET("", ctrl.ListPosts)   // GET /api/posts
		posts.POST("", ctrl.CreatePost) // POST /api/posts
		posts.GET("/:id", ctrl.GetPost) // GET /api/posts/:id
	}
}
