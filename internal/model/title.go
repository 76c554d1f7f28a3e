package model

// TitleSummary 列表页使用的影片摘要
type TitleSummary struct {
	TConst        string   `json:"tconst"`
	Title         string   `json:"title"`
	OriginalTitle string   `json:"originalTitle"`
	Year          *int     `json:"year"`
	Genres        []string `json:"genres"`
	RatingAvg     *float64 `json:"ratingAvg"`
	NumVotes      *int     `json:"numVotes"`
}

// GenreAverageResult 高于类型均分的影片
type GenreAverageResult struct {
	Genre    string          `json:"genre"`
	GenreAvg *float64        `json:"genreAvg"`
	Count    int             `json:"count"`
	Movies   []*TitleSummary `json:"movies"`
}

// TitleDetail 影片详情
type TitleDetail struct {
	TConst         string       `json:"tconst"`
	PrimaryTitle   string       `json:"primaryTitle"`
	OriginalTitle  string       `json:"originalTitle"`
	TitleType      *string      `json:"titleType"`
	Year           *int         `json:"year"`
	EndYear        *int         `json:"endYear"`
	RuntimeMinutes *int         `json:"runtimeMinutes"`
	IsAdult        bool         `json:"isAdult"`
	Genres         []string     `json:"genres"`
	RatingAvg      *float64     `json:"ratingAvg"`
	NumVotes       *int         `json:"numVotes"`
	Principals     []*Principal `json:"principals"`
	Akas           []*Aka       `json:"akas"`
}

// Principal 演职人员（按 ordering 排序）
type Principal struct {
	Ordering      int     `json:"ordering" gorm:"column:ordering"`
	Category      *string `json:"category" gorm:"column:category"`
	Job           *string `json:"job" gorm:"column:job"`
	CharacterName *string `json:"characterName" gorm:"column:character_name"`
	NConst        string  `json:"nconst" gorm:"column:nconst"`
	PrimaryName   *string `json:"primaryName" gorm:"column:primary_name"` // 人物缺失时为 null
}

// Aka 别名
type Aka struct {
	Ordering        int     `json:"ordering" gorm:"column:ordering"`
	Title           string  `json:"title" gorm:"column:title"`
	Region          *string `json:"region" gorm:"column:region"`
	Language        *string `json:"language" gorm:"column:language"`
	Types           *string `json:"types" gorm:"column:types"`
	Attributes      *string `json:"attributes" gorm:"column:attributes"`
	IsOriginalTitle *bool   `json:"isOriginalTitle" gorm:"column:is_original_title"`
}

// Genre 类型
type Genre struct {
	GenreID int    `json:"genreID" gorm:"column:genre_id"`
	Name    string `json:"name" gorm:"column:name"`
}
