package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Forfeit-15/INF2003/internal/apperr"
	"github.com/Forfeit-15/INF2003/internal/model"
)

// ReviewService 用户影评
type ReviewService struct {
	reviews ReviewStore
}

// NewReviewService 创建影评服务
func NewReviewService(reviews ReviewStore) *ReviewService {
	return &ReviewService{reviews: reviews}
}

// ReviewInput 影评写入参数
type ReviewInput struct {
	TConst   string
	UserID   *int64
	Username string
	Stars    int
	Text     string
	Spoiler  bool
	Tags     []string
}

// Upsert 写入或覆盖某用户对某影片的影评
func (s *ReviewService) Upsert(ctx context.Context, in ReviewInput) (*model.Review, error) {
	if in.UserID == nil || *in.UserID <= 0 {
		return nil, apperr.Validation("user_id required")
	}

	username := strings.TrimSpace(in.Username)
	if username == "" {
		username = fmt.Sprintf("user-%d", *in.UserID)
	}
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	review, err := s.reviews.Upsert(ctx, &model.Review{
		TConst:   in.TConst,
		UserID:   *in.UserID,
		Username: username,
		Stars:    in.Stars,
		Text:     in.Text,
		Spoiler:  in.Spoiler,
		Tags:     tags,
	})
	if err != nil {
		return nil, fmt.Errorf("review: upsert %s/%d: %w", in.TConst, *in.UserID, err)
	}
	return review, nil
}

// Delete 删除影评，不存在也视为成功
func (s *ReviewService) Delete(ctx context.Context, tconst string, userID int64) error {
	if err := s.reviews.Delete(ctx, tconst, userID); err != nil {
		return fmt.Errorf("review: delete %s/%d: %w", tconst, userID, err)
	}
	return nil
}

// ListByTitle 某影片的全部影评
func (s *ReviewService) ListByTitle(ctx context.Context, tconst string) ([]*model.Review, error) {
	reviews, err := s.reviews.ListByTitle(ctx, tconst)
	if err != nil {
		return nil, fmt.Errorf("review: list %s: %w", tconst, err)
	}
	return reviews, nil
}
