package controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/blog_mock_service/constant"
	"github.com/Xushengqwer/blog_mock_service/models/vo"
	"github.com/Xushengqwer/blog_mock_service/myErrors"
)

// respondError 把服务层错误映射为 HTTP 状态码和 {"error": "..."} 响应体。
//  1. 具体的未找到错误 -> 404 + 与前端约定的固定文案
//  2. 其余 commonerrors.ErrRepoNotFound -> 404
//  3. 请求在模拟延迟期间被取消 -> 503
//  4. 其他 -> 500
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, myErrors.ErrPostNotFound):
		c.JSON(http.StatusNotFound, vo.ErrorResponse{Error: constant.MsgPostNotFound})
	case errors.Is(err, myErrors.ErrAuthorNotFound):
		c.JSON(http.StatusNotFound, vo.ErrorResponse{Error: constant.MsgAuthorNotFound})
	case errors.Is(err, myErrors.ErrImageNotFound):
		c.JSON(http.StatusNotFound, vo.ErrorResponse{Error: constant.MsgImageNotFound})
	case errors.Is(err, commonerrors.ErrRepoNotFound):
		c.JSON(http.StatusNotFound, vo.ErrorResponse{Error: "Not found"})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusServiceUnavailable, vo.ErrorResponse{Error: "Request cancelled"})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, vo.ErrorResponse{Error: err.Error()})
	}
}

// respondBadRequest 用于请求体绑定失败 (非 JSON 或缺少必填字段)。
func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, vo.ErrorResponse{Error: "Invalid request body: " + err.Error()})
}
