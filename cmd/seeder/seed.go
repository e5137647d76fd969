package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_mock_service/models/dto"
	"github.com/Xushengqwer/blog_mock_service/models/entities"
	"github.com/Xushengqwer/blog_mock_service/models/vo"
)

// apiClient 通过 HTTP 调用运行中的 mock 服务。
type apiClient struct {
	baseURL string
	http    *http.Client
}

func (c *apiClient) listAuthors(ctx context.Context) ([]vo.AuthorWithPostIDs, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/authors", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("请求作者列表失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("请求作者列表失败: 状态码 %d", resp.StatusCode)
	}
	var authors []vo.AuthorWithPostIDs
	if err := json.NewDecoder(resp.Body).Decode(&authors); err != nil {
		return nil, fmt.Errorf("解析作者列表失败: %w", err)
	}
	return authors, nil
}

func (c *apiClient) createPost(ctx context.Context, body *dto.CreatePostRequest) (*entities.Post, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/posts", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("创建帖子请求失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		var errResp vo.ErrorResponse
		raw, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(raw, &errResp) == nil && errResp.Error != "" {
			return nil, fmt.Errorf("创建帖子失败: 状态码 %d: %s", resp.StatusCode, errResp.Error)
		}
		return nil, fmt.Errorf("创建帖子失败: 状态码 %d", resp.StatusCode)
	}
	var post entities.Post
	if err := json.NewDecoder(resp.Body).Decode(&post); err != nil {
		return nil, fmt.Errorf("解析创建结果失败: %w", err)
	}
	return &post, nil
}

// Seed 并发地创建 numPosts 篇帖子，作者从服务端的作者列表中随机选取。返回成功和失败的数量。
func Seed(ctx context.Context, client *apiClient, logger *zap.Logger, numPosts, concurrencyLimit int) (int, int, error) {
	authors, err := client.listAuthors(ctx)
	if err != nil {
		return 0, 0, err
	}
	if len(authors) == 0 {
		return 0, 0, fmt.Errorf("服务端没有任何作者")
	}
	logger.Info("开始填充测试数据 (通过 HTTP API)...", zap.Int("数量", numPosts), zap.Int("作者数", len(authors)))

	if concurrencyLimit <= 0 {
		concurrencyLimit = 1
	}
	var wg sync.WaitGroup
	var succeeded, failed atomic.Int64
	semaphore := make(chan struct{}, concurrencyLimit)

	for i := 0; i < numPosts; i++ {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(itemIndex int) {
			defer wg.Done()
			defer func() { <-semaphore }()

			author := authors[gofakeit.Number(0, len(authors)-1)]
			createReq := &dto.CreatePostRequest{
				Title:    gofakeit.Sentence(gofakeit.Number(3, 8)),
				Content:  gofakeit.Paragraph(2, 4, 15, "\n\n"),
				AuthorID: author.ID,
			}

			post, err := client.createPost(ctx, createReq)
			if err != nil {
				failed.Add(1)
				logger.Error(fmt.Sprintf("创建帖子 %d/%d 失败", itemIndex+1, numPosts),
					zap.Error(err),
					zap.String("title", createReq.Title),
					zap.String("authorID", createReq.AuthorID))
				return
			}
			succeeded.Add(1)
			logger.Info(fmt.Sprintf("成功创建帖子 %d/%d", itemIndex+1, numPosts),
				zap.String("postID", post.ID),
				zap.String("title", post.Title))
		}(i)
	}

	wg.Wait()
	logger.Info("测试数据填充完毕 (通过 HTTP API)。", zap.Int64("成功", succeeded.Load()), zap.Int64("失败", failed.Load()))
	return int(succeeded.Load()), int(failed.Load()), nil
}
