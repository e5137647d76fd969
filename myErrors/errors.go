package myErrors

import (
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/commonerrors"
)

// 以下未找到错误都包装了 commonerrors.ErrRepoNotFound，调用方既可以精确匹配，也可以统一按"未找到"处理。
var (
	ErrPostNotFound   = fmt.Errorf("post: %w", commonerrors.ErrRepoNotFound)
	ErrAuthorNotFound = fmt.Errorf("author: %w", commonerrors.ErrRepoNotFound)
	ErrImageNotFound  = fmt.Errorf("image: %w", commonerrors.ErrRepoNotFound)
)

// ErrDuplicatePostID 表示生成的帖子 ID 已存在 (slug 风格下理论上可能发生)。
var ErrDuplicatePostID = errors.New("store: duplicate post id")

// ErrPostCeilingReached 表示帖子总数已达到调用方给定的上限，本次插入被放弃。
var ErrPostCeilingReached = errors.New("store: post ceiling reached")
