package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Forfeit-15/INF2003/internal/model"
)

type GenreRepository struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) *GenreRepository {
	return &GenreRepository{db: db}
}

// ListAll 全部类型，按名称排序
func (r *GenreRepository) ListAll(ctx context.Context) ([]*model.Genre, error) {
	genres := []*model.Genre{}
	err := r.db.WithContext(ctx).
		Table("Genre").
		Select("genreID AS genre_id, genreName AS name").
		Order("genreName").
		Scan(&genres).Error
	return genres, err
}
