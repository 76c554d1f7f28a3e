package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Forfeit-15/INF2003/internal/apperr"
	"github.com/Forfeit-15/INF2003/internal/model"
	"github.com/Forfeit-15/INF2003/internal/repository"
)

// DefaultMinVotes 类型均分默认票数门槛
const DefaultMinVotes = 50

// CatalogService 影片 / 人物目录
type CatalogService struct {
	titles  TitleStore
	persons PersonStore
	genres  GenreStore
}

// NewCatalogService 创建目录服务
func NewCatalogService(titles TitleStore, persons PersonStore, genres GenreStore) *CatalogService {
	return &CatalogService{titles: titles, persons: persons, genres: genres}
}

// ListTitles 搜索 / 过滤影片
func (s *CatalogService) ListTitles(ctx context.Context, f repository.TitleFilter) ([]*model.TitleSummary, error) {
	f.Query = strings.TrimSpace(f.Query)
	f.Genre = strings.TrimSpace(f.Genre)

	titles, err := s.titles.Search(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("catalog: search titles: %w", err)
	}
	return titles, nil
}

// AboveGenreAverage 某类型中评分不低于类型均分的影片
func (s *CatalogService) AboveGenreAverage(ctx context.Context, genre string, minVotes int) (*model.GenreAverageResult, error) {
	genre = strings.TrimSpace(genre)
	if genre == "" {
		return nil, apperr.Validation("genre is required")
	}

	result := &model.GenreAverageResult{Genre: genre, Movies: []*model.TitleSummary{}}

	avg, err := s.titles.GenreAverage(ctx, genre, minVotes)
	if err != nil {
		return nil, fmt.Errorf("catalog: genre average: %w", err)
	}
	if avg == nil {
		return result, nil
	}

	movies, err := s.titles.AboveAverage(ctx, genre, minVotes, *avg)
	if err != nil {
		return nil, fmt.Errorf("catalog: above genre average: %w", err)
	}

	result.GenreAvg = avg
	result.Movies = movies
	result.Count = len(movies)
	return result, nil
}

// TitleDetail 影片详情，基本信息、演职员、别名并行查询
func (s *CatalogService) TitleDetail(ctx context.Context, tconst string) (*model.TitleDetail, error) {
	var (
		detail     *model.TitleDetail
		principals []*model.Principal
		akas       []*model.Aka
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		detail, err = s.titles.FindByID(gctx, tconst)
		return err
	})
	g.Go(func() error {
		var err error
		principals, err = s.titles.Principals(gctx, tconst)
		return err
	})
	g.Go(func() error {
		var err error
		akas, err = s.titles.Akas(gctx, tconst)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("catalog: title %s: %w", tconst, err)
	}

	if detail == nil {
		return nil, apperr.NotFound("Title not found")
	}
	if principals != nil {
		detail.Principals = principals
	}
	if akas != nil {
		detail.Akas = akas
	}
	return detail, nil
}

// ListPersons 人物列表
func (s *CatalogService) ListPersons(ctx context.Context, q string) ([]*model.PersonSummary, error) {
	persons, err := s.persons.List(ctx, strings.TrimSpace(q))
	if err != nil {
		return nil, fmt.Errorf("catalog: list persons: %w", err)
	}
	return persons, nil
}

// PersonDetail 人物详情与代表作
func (s *CatalogService) PersonDetail(ctx context.Context, nconst string) (*model.PersonDetail, error) {
	var (
		person   *model.PersonDetail
		knownFor []*model.KnownForTitle
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		person, err = s.persons.FindByID(gctx, nconst)
		return err
	})
	g.Go(func() error {
		var err error
		knownFor, err = s.persons.KnownFor(gctx, nconst)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("catalog: person %s: %w", nconst, err)
	}

	if person == nil {
		return nil, apperr.NotFound("Person not found")
	}
	if knownFor != nil {
		person.KnownFor = knownFor
	}
	return person, nil
}

// ListGenres 全部类型
func (s *CatalogService) ListGenres(ctx context.Context) ([]*model.Genre, error) {
	genres, err := s.genres.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog: list genres: %w", err)
	}
	return genres, nil
}
