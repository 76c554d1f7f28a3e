package repository

import (
	"context"
	"database/sql"
	"strings"

	"gorm.io/gorm"

	"github.com/Forfeit-15/INF2003/internal/model"
)

// listLimit 列表类查询的最大返回条数
const listLimit = 200

// TitleFilter 影片列表过滤条件，零值字段表示不过滤
type TitleFilter struct {
	Query     string
	Genre     string
	YearStart *int
	YearEnd   *int
	MinRating *float64
}

func (f TitleFilter) predicates() []predicate {
	var preds []predicate

	if f.Query != "" {
		like := likePattern(f.Query)
		preds = append(preds, predicate{
			clause: "(LOWER(t.primaryTitle) LIKE ? ESCAPE '!' OR LOWER(t.originalTitle) LIKE ? ESCAPE '!')",
			args:   []any{like, like},
		})
	}

	if f.Genre != "" {
		preds = append(preds, hasGenre(f.Genre))
	}

	switch {
	case f.YearStart != nil && f.YearEnd != nil:
		preds = append(preds, predicate{clause: "t.startYear BETWEEN ? AND ?", args: []any{*f.YearStart, *f.YearEnd}})
	case f.YearStart != nil:
		preds = append(preds, predicate{clause: "t.startYear >= ?", args: []any{*f.YearStart}})
	case f.YearEnd != nil:
		preds = append(preds, predicate{clause: "t.startYear <= ?", args: []any{*f.YearEnd}})
	}

	if f.MinRating != nil {
		preds = append(preds, predicate{
			clause: "t.averageRating IS NOT NULL AND t.averageRating >= ?",
			args:   []any{*f.MinRating},
		})
	}

	return preds
}

// hasGenre 按类型名（不区分大小写）做存在性判断，与展示用的类型聚合互不影响
func hasGenre(genre string) predicate {
	return predicate{
		clause: `EXISTS (
			SELECT 1 FROM HasGenre hg2
			JOIN Genre g2 ON g2.genreID = hg2.genreID
			WHERE hg2.tconst = t.tconst AND LOWER(g2.genreName) = ?
		)`,
		args: []any{strings.ToLower(genre)},
	}
}

// genreCohort 参与类型均分计算的影片集合；均分与列表两次查询共用同一组条件
func genreCohort(genre string, minVotes int) []predicate {
	return []predicate{
		hasGenre(genre),
		{clause: "t.averageRating IS NOT NULL"},
		{clause: "t.numVotes >= ?", args: []any{minVotes}},
	}
}

// likePattern 构造不区分大小写的子串匹配模式，转义用户输入中的通配符
func likePattern(s string) string {
	r := strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")
	return "%" + r.Replace(strings.ToLower(s)) + "%"
}

type titleRow struct {
	TConst         string   `gorm:"column:tconst"`
	PrimaryTitle   string   `gorm:"column:primary_title"`
	OriginalTitle  string   `gorm:"column:original_title"`
	TitleType      *string  `gorm:"column:title_type"`
	StartYear      *int     `gorm:"column:start_year"`
	EndYear        *int     `gorm:"column:end_year"`
	RuntimeMinutes *int     `gorm:"column:runtime_minutes"`
	IsAdult        bool     `gorm:"column:is_adult"`
	AverageRating  *float64 `gorm:"column:average_rating"`
	NumVotes       *int     `gorm:"column:num_votes"`
	Genres         *string  `gorm:"column:genres"`
}

func (r titleRow) summary() *model.TitleSummary {
	return &model.TitleSummary{
		TConst:        r.TConst,
		Title:         r.PrimaryTitle,
		OriginalTitle: r.OriginalTitle,
		Year:          r.StartYear,
		Genres:        splitList(r.Genres),
		RatingAvg:     r.AverageRating,
		NumVotes:      r.NumVotes,
	}
}

type TitleRepository struct {
	db *gorm.DB
}

func NewTitleRepository(db *gorm.DB) *TitleRepository {
	return &TitleRepository{db: db}
}

// withGenres 影片表左连接类型表，并按影片聚合类型名
func (r *TitleRepository) withGenres(ctx context.Context, columns string) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("Title t").
		Select(columns+", "+groupConcat(r.db, "g.genreName")+" AS genres").
		Joins("LEFT JOIN HasGenre hg ON hg.tconst = t.tconst").
		Joins("LEFT JOIN Genre g ON g.genreID = hg.genreID")
}

const summaryColumns = `t.tconst AS tconst, t.primaryTitle AS primary_title, t.originalTitle AS original_title,
	t.startYear AS start_year, t.averageRating AS average_rating, t.numVotes AS num_votes`

// Search 搜索 / 过滤影片，按年份倒序、标题正序
func (r *TitleRepository) Search(ctx context.Context, f TitleFilter) ([]*model.TitleSummary, error) {
	var rows []titleRow
	q := applyPredicates(r.withGenres(ctx, summaryColumns), f.predicates())
	err := q.Group("t.tconst").
		Order("t.startYear DESC, t.primaryTitle").
		Limit(listLimit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return summaries(rows), nil
}

// GenreAverage 计算某类型（票数 >= minVotes）的平均评分，无数据时返回 nil
func (r *TitleRepository) GenreAverage(ctx context.Context, genre string, minVotes int) (*float64, error) {
	var avg sql.NullFloat64
	q := applyPredicates(r.db.WithContext(ctx).Table("Title t").Select("AVG(t.averageRating)"), genreCohort(genre, minVotes))
	if err := q.Row().Scan(&avg); err != nil {
		return nil, err
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}

// AboveAverage 返回同一集合中评分不低于 avg 的影片，按评分、票数倒序
func (r *TitleRepository) AboveAverage(ctx context.Context, genre string, minVotes int, avg float64) ([]*model.TitleSummary, error) {
	var rows []titleRow
	preds := append(genreCohort(genre, minVotes), predicate{clause: "t.averageRating >= ?", args: []any{avg}})
	err := applyPredicates(r.withGenres(ctx, summaryColumns), preds).
		Group("t.tconst").
		Order("t.averageRating DESC, t.numVotes DESC").
		Limit(listLimit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return summaries(rows), nil
}

// FindByID 根据 tconst 查找影片（不含演职员与别名），不存在返回 nil
func (r *TitleRepository) FindByID(ctx context.Context, tconst string) (*model.TitleDetail, error) {
	var rows []titleRow
	err := r.withGenres(ctx, summaryColumns+`, t.titleType AS title_type, t.endYear AS end_year,
			t.runtimeMinutes AS runtime_minutes, t.isAdult AS is_adult`).
		Where("t.tconst = ?", tconst).
		Group("t.tconst").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	row := rows[0]
	return &model.TitleDetail{
		TConst:         row.TConst,
		PrimaryTitle:   row.PrimaryTitle,
		OriginalTitle:  row.OriginalTitle,
		TitleType:      row.TitleType,
		Year:           row.StartYear,
		EndYear:        row.EndYear,
		RuntimeMinutes: row.RuntimeMinutes,
		IsAdult:        row.IsAdult,
		Genres:         splitList(row.Genres),
		RatingAvg:      row.AverageRating,
		NumVotes:       row.NumVotes,
		Principals:     []*model.Principal{},
		Akas:           []*model.Aka{},
	}, nil
}

// Principals 影片演职人员，人物记录缺失时保留该行
func (r *TitleRepository) Principals(ctx context.Context, tconst string) ([]*model.Principal, error) {
	principals := []*model.Principal{}
	err := r.db.WithContext(ctx).
		Table("HasPrincipal h").
		Select(`h.ordering AS ordering, h.category AS category, h.job AS job,
			h.characterName AS character_name, h.nconst AS nconst, p.primaryName AS primary_name`).
		Joins("LEFT JOIN Person p ON p.nconst = h.nconst").
		Where("h.tconst = ?", tconst).
		Order("h.ordering").
		Scan(&principals).Error
	return principals, err
}

// Akas 影片别名
func (r *TitleRepository) Akas(ctx context.Context, tconst string) ([]*model.Aka, error) {
	akas := []*model.Aka{}
	err := r.db.WithContext(ctx).
		Table("TitleAkas").
		Select(`ordering AS ordering, title AS title, region AS region, language AS language,
			types AS types, attributes AS attributes, isOriginalTitle AS is_original_title`).
		Where("titleId = ?", tconst).
		Order("ordering").
		Scan(&akas).Error
	return akas, err
}

// SummariesByIDs 按 tconst 批量查询摘要，找不到的 id 不会出现在结果中
func (r *TitleRepository) SummariesByIDs(ctx context.Context, ids []string) (map[string]*model.TitleSummary, error) {
	out := make(map[string]*model.TitleSummary, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var rows []titleRow
	err := r.withGenres(ctx, summaryColumns).
		Where("t.tconst IN ?", ids).
		Group("t.tconst").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.TConst] = row.summary()
	}
	return out, nil
}

func summaries(rows []titleRow) []*model.TitleSummary {
	out := make([]*model.TitleSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.summary())
	}
	return out
}
