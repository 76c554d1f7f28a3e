// Package testutil 提供测试用的内存目录库与容器化数据源。
package testutil

import (
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Forfeit-15/INF2003/internal/model"
)

// catalogFixture 目录表结构与种子数据。
//
// Drama（票数 >= 50）：tt0000001 8.0 / tt0000002 6.0，均分 7.0；
// tt0000003 只有 10 票，tt0000004 没有评分。
const catalogFixture = `
CREATE TABLE Title (
	tconst VARCHAR(16) PRIMARY KEY,
	primaryTitle VARCHAR(255) NOT NULL,
	originalTitle VARCHAR(255) NOT NULL,
	titleType VARCHAR(255),
	startYear INTEGER,
	endYear INTEGER,
	runtimeMinutes INTEGER,
	isAdult BOOLEAN NOT NULL DEFAULT 0,
	averageRating DOUBLE,
	numVotes INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE Genre (genreID INTEGER PRIMARY KEY, genreName VARCHAR(64) NOT NULL UNIQUE);
CREATE TABLE HasGenre (tconst VARCHAR(16) NOT NULL, genreID INTEGER NOT NULL, PRIMARY KEY (tconst, genreID));
CREATE TABLE Person (nconst VARCHAR(16) PRIMARY KEY, primaryName VARCHAR(255) NOT NULL, birthYear INTEGER, deathYear INTEGER);
CREATE TABLE Profession (professionID INTEGER PRIMARY KEY, professionName VARCHAR(64) NOT NULL UNIQUE);
CREATE TABLE HasProfession (nconst VARCHAR(16) NOT NULL, professionID INTEGER NOT NULL, PRIMARY KEY (nconst, professionID));
CREATE TABLE KnownFor (nconst VARCHAR(16) NOT NULL, tconst VARCHAR(16) NOT NULL, PRIMARY KEY (nconst, tconst));
CREATE TABLE HasPrincipal (
	tconst VARCHAR(16) NOT NULL,
	ordering INTEGER NOT NULL,
	nconst VARCHAR(16) NOT NULL,
	category VARCHAR(255),
	job VARCHAR(255),
	characterName VARCHAR(255),
	PRIMARY KEY (tconst, ordering)
);
CREATE TABLE TitleAkas (
	titleId VARCHAR(16) NOT NULL,
	ordering INTEGER NOT NULL,
	title VARCHAR(255) NOT NULL,
	region VARCHAR(255),
	language VARCHAR(255),
	types VARCHAR(255),
	attributes VARCHAR(255),
	isOriginalTitle BOOLEAN,
	PRIMARY KEY (titleId, ordering)
);

INSERT INTO Title VALUES
	('tt0000001', 'The Alpha', 'Alpha Original', 'movie', 2001, NULL, 120, 0, 8.0, 100),
	('tt0000002', 'Beta Story', 'Beta Story', 'movie', 1999, NULL, 95, 0, 6.0, 200),
	('tt0000003', 'Gamma Ray', 'Gamma_Ray', 'movie', 2010, NULL, 101, 0, 7.0, 10),
	('tt0000004', 'Delta Force', 'Delta Force', 'tvSeries', 2005, 2008, 45, 0, NULL, 0),
	('tt0000005', 'Epsilon', 'Epsilon', 'movie', 2001, NULL, 88, 1, 9.0, 500);
INSERT INTO Genre VALUES (1, 'Action'), (2, 'Comedy'), (3, 'Drama');
INSERT INTO HasGenre VALUES
	('tt0000001', 3), ('tt0000001', 1),
	('tt0000002', 3),
	('tt0000003', 3), ('tt0000003', 2),
	('tt0000004', 1),
	('tt0000005', 2);

INSERT INTO Person VALUES
	('nm0000001', 'Alice Actor', 1970, NULL),
	('nm0000002', 'Bob Director', 1960, 2020),
	('nm0000003', 'Carol Writer', NULL, NULL);
INSERT INTO Profession VALUES (1, 'actress'), (2, 'producer'), (3, 'director');
INSERT INTO HasProfession VALUES ('nm0000001', 2), ('nm0000001', 1), ('nm0000002', 3);
INSERT INTO KnownFor VALUES ('nm0000001', 'tt0000003'), ('nm0000001', 'tt0000001');

INSERT INTO HasPrincipal VALUES
	('tt0000001', 2, 'nm0000099', 'director', NULL, NULL),
	('tt0000001', 1, 'nm0000001', 'actress', NULL, 'Hero');
INSERT INTO TitleAkas VALUES
	('tt0000001', 2, 'Alpha (DE)', 'DE', 'de', NULL, NULL, 0),
	('tt0000001', 1, 'The Alpha', 'US', 'en', 'imdbDisplay', NULL, 0)
`

// NewCatalogDB 创建带种子数据的内存 SQLite 库（含 users 表）
func NewCatalogDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// 内存库只在单个连接内可见
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sqlite handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	SeedCatalog(t, db)
	return db
}

// SeedCatalog 在给定库中建表并写入种子数据，SQLite 与 MySQL 通用
func SeedCatalog(t testing.TB, db *gorm.DB) {
	t.Helper()

	for _, stmt := range strings.Split(catalogFixture, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("seed catalog: %v\n%s", err, stmt)
		}
	}

	if err := db.AutoMigrate(&model.User{}); err != nil {
		t.Fatalf("migrate users: %v", err)
	}
}
