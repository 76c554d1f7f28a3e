package service

import (
	"context"
	"time"

	"github.com/Forfeit-15/INF2003/internal/model"
	"github.com/Forfeit-15/INF2003/internal/repository"
)

// TitleStore 影片目录查询
type TitleStore interface {
	Search(ctx context.Context, f repository.TitleFilter) ([]*model.TitleSummary, error)
	GenreAverage(ctx context.Context, genre string, minVotes int) (*float64, error)
	AboveAverage(ctx context.Context, genre string, minVotes int, avg float64) ([]*model.TitleSummary, error)
	FindByID(ctx context.Context, tconst string) (*model.TitleDetail, error)
	Principals(ctx context.Context, tconst string) ([]*model.Principal, error)
	Akas(ctx context.Context, tconst string) ([]*model.Aka, error)
	SummariesByIDs(ctx context.Context, ids []string) (map[string]*model.TitleSummary, error)
}

// PersonStore 人物查询
type PersonStore interface {
	List(ctx context.Context, q string) ([]*model.PersonSummary, error)
	FindByID(ctx context.Context, nconst string) (*model.PersonDetail, error)
	KnownFor(ctx context.Context, nconst string) ([]*model.KnownForTitle, error)
}

// GenreStore 类型查询
type GenreStore interface {
	ListAll(ctx context.Context) ([]*model.Genre, error)
}

// UserStore 用户读写
type UserStore interface {
	Create(ctx context.Context, username, email, password, displayName string) (*model.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	FindByIdentifier(ctx context.Context, identifier string) (*model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
	CheckPassword(user *model.User, password string) bool
	Update(ctx context.Context, id int64, upd model.UserUpdate) error
	ListAll(ctx context.Context) ([]*model.User, error)
	Delete(ctx context.Context, id int64) error
}

// ReviewStore 影评文档
type ReviewStore interface {
	Upsert(ctx context.Context, review *model.Review) (*model.Review, error)
	Delete(ctx context.Context, tconst string, userID int64) error
	ListByTitle(ctx context.Context, tconst string) ([]*model.Review, error)
	TopRated(ctx context.Context, minReviews, limit int) ([]*model.ReviewStat, error)
}

// WatchlistStore 片单文档
type WatchlistStore interface {
	Get(ctx context.Context, userID int64) (*model.Watchlist, error)
	Add(ctx context.Context, userID int64, item model.WatchlistItem) error
	Remove(ctx context.Context, userID int64, tconst string) error
}

// SearchLogStore 搜索日志文档
type SearchLogStore interface {
	Log(ctx context.Context, userID int64, q string, ts time.Time) error
	ListByUser(ctx context.Context, userID int64, limit int) ([]*model.SearchLog, error)
	Trending(ctx context.Context, minCount, limit int) ([]*model.TrendingQuery, error)
}

// Services 服务集合
type Services struct {
	Catalog   *CatalogService
	Account   *AccountService
	Review    *ReviewService
	Watchlist *WatchlistService
	SearchLog *SearchLogService
	Ranking   *RankingService
}

// NewServices 由仓库集合组装全部服务
func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Catalog:   NewCatalogService(repos.Title, repos.Person, repos.Genre),
		Account:   NewAccountService(repos.User),
		Review:    NewReviewService(repos.Review),
		Watchlist: NewWatchlistService(repos.Watchlist, repos.Title),
		SearchLog: NewSearchLogService(repos.SearchLog),
		Ranking:   NewRankingService(repos.Review, repos.SearchLog, repos.Title),
	}
}
