package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/blog_mock_service/service"
)

// AuthorController 作者相关接口
type AuthorController struct {
	authorService service.AuthorService
}

func NewAuthorController(authorService service.AuthorService) *AuthorController {
	return &AuthorController{authorService: authorService}
}

// ListAuthors 获取全部作者
// @Summary      获取作者列表
// @Description  按种子顺序返回全部作者，每位作者附带 postIds (没有帖子时为空数组)。
// @Tags         authors (作者)
// @Produce      json
// @Success      200 {array} vo.AuthorWithPostIDs "作者列表"
// @Router       /api/authors [get]
func (ctrl *AuthorController) ListAuthors(c *gin.Context) {
	authors, err := ctrl.authorService.ListAuthors(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, authors)
}

// GetAuthor 获取作者详情
// @Summary      获取作者及其帖子
// @Tags         authors (作者)
// @Produce      json
// @Param        id path string true "作者 ID"
// @Success      200 {object} vo.AuthorWithPosts "作者详情"
// @Failure      404 {object} vo.ErrorResponse "Author not found"
// @Router       /api/authors/{id} [get]
func (ctrl *AuthorController) GetAuthor(c *gin.Context) {
	author, err := ctrl.authorService.GetAuthor(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, author)
}

func (ctrl *AuthorController) RegisterRoutes(group *gin.RouterGroup) {
	authors := group.Group("/authors")
	{
		authors.GET("", ctrl.ListAuthors)
		authors.GET("/:id", ctrl.GetAuthor)
	}
}
