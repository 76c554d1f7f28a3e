package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Forfeit-15/INF2003/internal/config"
)

// InitDB 初始化关系型数据库连接（带连接池）
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DatabaseDSN())
	case "sqlite":
		dialector = sqlite.Open(cfg.DatabaseDSN())
	default:
		dialector = mysql.Open(cfg.DatabaseDSN())
	}

	logLevel := logger.Warn
	if !cfg.IsProduction() {
		logLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("无法连接数据库: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取底层连接失败: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("数据库 ping 失败: %w", err)
	}

	// 设置连接池
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

// Repositories 仓库集合
type Repositories struct {
	DB        *gorm.DB
	Mongo     *mongo.Database
	Title     *TitleRepository
	Person    *PersonRepository
	Genre     *GenreRepository
	User      *UserRepository
	Review    *ReviewRepository
	Watchlist *WatchlistRepository
	SearchLog *SearchLogRepository
}

// NewRepositories 创建仓库集合
func NewRepositories(db *gorm.DB, mdb *mongo.Database) *Repositories {
	return &Repositories{
		DB:        db,
		Mongo:     mdb,
		Title:     NewTitleRepository(db),
		Person:    NewPersonRepository(db),
		Genre:     NewGenreRepository(db),
		User:      NewUserRepository(db),
		Review:    NewReviewRepository(mdb),
		Watchlist: NewWatchlistRepository(mdb),
		SearchLog: NewSearchLogRepository(mdb),
	}
}

// Ping 检查两个数据源是否可用
func (r *Repositories) Ping(ctx context.Context) error {
	sqlDB, err := r.DB.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("sql: %w", err)
	}
	if err := r.Mongo.Client().Ping(ctx, nil); err != nil {
		return fmt.Errorf("mongo: %w", err)
	}
	return nil
}
