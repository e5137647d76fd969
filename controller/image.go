package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/blog_mock_service/service"
)

type ImageController struct {
	imageService service.ImageService
}

func NewImageController(imageService service.ImageService) *ImageController {
	return &ImageController{imageService: imageService}
}

// GetImage 获取图片元数据
// @Summary      获取图片
// @Tags         images (图片)
// @Produce      json
// @Param        id path string true "图片 ID"
// @Success      200 {object} entities.Image "图片"
// @Failure      404 {object} vo.ErrorResponse "Image not found"
// @Router       /api/images/{id} [get]
func (ctrl *ImageController) GetImage(c *gin.Context) {
	img, err := ctrl.imageService.GetImage(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, img)
}

func (ctrl *ImageController) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/images/:id", ctrl.GetImage)
}
