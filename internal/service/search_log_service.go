package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Forfeit-15/INF2003/internal/model"
)

// searchHistoryLimit 单个用户返回的搜索记录上限
const searchHistoryLimit = 200

// SearchLogService 搜索日志
type SearchLogService struct {
	logs SearchLogStore
	now  func() time.Time
}

// NewSearchLogService 创建搜索日志服务
func NewSearchLogService(logs SearchLogStore) *SearchLogService {
	return &SearchLogService{logs: logs, now: time.Now}
}

// Log 记录一次搜索，空白查询不记录并返回 false
func (s *SearchLogService) Log(ctx context.Context, userID int64, q string) (bool, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return false, nil
	}

	if err := s.logs.Log(ctx, userID, q, s.now().UTC()); err != nil {
		return false, fmt.Errorf("search log: insert for %d: %w", userID, err)
	}
	return true, nil
}

// History 用户最近的搜索记录
func (s *SearchLogService) History(ctx context.Context, userID int64) ([]*model.SearchLog, error) {
	logs, err := s.logs.ListByUser(ctx, userID, searchHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("search log: list for %d: %w", userID, err)
	}
	return logs, nil
}
