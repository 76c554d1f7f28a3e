package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Forfeit-15/INF2003/internal/model"
)

type personRow struct {
	NConst      string  `gorm:"column:nconst"`
	PrimaryName string  `gorm:"column:primary_name"`
	BirthYear   *int    `gorm:"column:birth_year"`
	DeathYear   *int    `gorm:"column:death_year"`
	Professions *string `gorm:"column:professions"`
}

type PersonRepository struct {
	db *gorm.DB
}

func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

func (r *PersonRepository) withProfessions(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("Person p").
		Select(`p.nconst AS nconst, p.primaryName AS primary_name, p.birthYear AS birth_year,
			p.deathYear AS death_year, ` + groupConcat(r.db, "pr.professionName") + " AS professions").
		Joins("LEFT JOIN HasProfession hp ON hp.nconst = p.nconst").
		Joins("LEFT JOIN Profession pr ON pr.professionID = hp.professionID")
}

// List 人物列表，q 非空时按姓名子串过滤
func (r *PersonRepository) List(ctx context.Context, q string) ([]*model.PersonSummary, error) {
	var preds []predicate
	if q != "" {
		preds = append(preds, predicate{clause: "LOWER(p.primaryName) LIKE ? ESCAPE '!'", args: []any{likePattern(q)}})
	}

	var rows []personRow
	err := applyPredicates(r.withProfessions(ctx), preds).
		Group("p.nconst").
		Order("p.primaryName").
		Limit(listLimit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]*model.PersonSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, &model.PersonSummary{
			NConst:      row.NConst,
			PrimaryName: row.PrimaryName,
			BirthYear:   row.BirthYear,
			DeathYear:   row.DeathYear,
			Professions: splitList(row.Professions),
		})
	}
	return out, nil
}

// FindByID 人物基本信息与职业，不存在返回 nil
func (r *PersonRepository) FindByID(ctx context.Context, nconst string) (*model.PersonDetail, error) {
	var rows []personRow
	err := r.withProfessions(ctx).
		Where("p.nconst = ?", nconst).
		Group("p.nconst").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	row := rows[0]
	return &model.PersonDetail{
		NConst:      row.NConst,
		PrimaryName: row.PrimaryName,
		BirthYear:   row.BirthYear,
		DeathYear:   row.DeathYear,
		Professions: splitList(row.Professions),
		KnownFor:    []*model.KnownForTitle{},
	}, nil
}

// KnownFor 代表作，按上映年份正序
func (r *PersonRepository) KnownFor(ctx context.Context, nconst string) ([]*model.KnownForTitle, error) {
	titles := []*model.KnownForTitle{}
	err := r.db.WithContext(ctx).
		Table("KnownFor k").
		Select("k.tconst AS tconst, t.primaryTitle AS primary_title, t.startYear AS start_year, t.averageRating AS average_rating").
		Joins("JOIN Title t ON t.tconst = k.tconst").
		Where("k.nconst = ?", nconst).
		Order("t.startYear, k.tconst").
		Scan(&titles).Error
	return titles, err
}
