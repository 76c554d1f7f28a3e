package model

// PersonSummary 人物列表项
type PersonSummary struct {
	NConst      string   `json:"nconst"`
	PrimaryName string   `json:"primaryName"`
	BirthYear   *int     `json:"birthYear"`
	DeathYear   *int     `json:"deathYear"`
	Professions []string `json:"professions"`
}

// PersonDetail 人物详情
type PersonDetail struct {
	NConst      string           `json:"nconst"`
	PrimaryName string           `json:"primaryName"`
	BirthYear   *int             `json:"birthYear"`
	DeathYear   *int             `json:"deathYear"`
	Professions []string         `json:"professions"`
	KnownFor    []*KnownForTitle `json:"knownFor"`
}

// KnownForTitle 代表作
type KnownForTitle struct {
	TConst        string   `json:"tconst" gorm:"column:tconst"`
	PrimaryTitle  string   `json:"primaryTitle" gorm:"column:primary_title"`
	StartYear     *int     `json:"startYear" gorm:"column:start_year"`
	AverageRating *float64 `json:"averageRating" gorm:"column:average_rating"`
}
