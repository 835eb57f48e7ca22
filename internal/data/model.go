package data

import (
	"time"
)

// User represents the users table
type User struct {
	ID             uint      `gorm:"primaryKey"`
	Username       string    `gorm:"uniqueIndex;not null;size:150"`
	Password       string    `gorm:"not null;size:128"`
	Email          string    `gorm:"size:254"`
	FirstName      string    `gorm:"size:150"`
	LastName       string    `gorm:"size:150"`
	ProfilePicture string    `gorm:"size:255;default:images/base.png"`
	Bio            *string   `gorm:"type:text"`
	Address        *string   `gorm:"size:255"`
	JoinDate       time.Time `gorm:"type:date;not null"`
	Token          int       `gorm:"not null;default:100"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

// TableName overrides the table name
func (User) TableName() string {
	return "users"
}

// Genre represents the genres table
type Genre struct {
	ID   uint   `gorm:"primaryKey;autoIncrement:false"`
	Name string `gorm:"not null;size:100"`
}

// TableName overrides the table name
func (Genre) TableName() string {
	return "genres"
}

// Movie represents the movies table, keyed by TMDB id
type Movie struct {
	TmdbID           int64      `gorm:"column:tmdb_id;primaryKey;autoIncrement:false"`
	OriginalLanguage string     `gorm:"size:255"`
	OriginalTitle    string     `gorm:"size:255"`
	Title            string     `gorm:"not null;size:255"`
	Overview         string     `gorm:"type:text"`
	ReleaseDate      *time.Time `gorm:"type:date"`
	PosterPath       *string    `gorm:"size:500"`
	BackdropPath     *string    `gorm:"size:500"`
	GenreIDs         []int64    `gorm:"column:genre_ids;type:text;serializer:json"`
	Adult            bool       `gorm:"not null;default:false"`
	Popularity       float64    `gorm:"type:decimal(20,3)"`
	VoteAverage      float64    `gorm:"type:decimal(20,1);index:idx_movies_vote_average"`
	VoteCount        int        `gorm:"not null;default:0"`
	Video            bool       `gorm:"not null;default:false"`

	Genres []Genre `gorm:"many2many:movie_genres;joinForeignKey:MovieID;joinReferences:GenreID"`
}

// TableName overrides the table name
func (Movie) TableName() string {
	return "movies"
}

// MovieLike is one row of a movie's liked-by set
type MovieLike struct {
	MovieID   int64     `gorm:"primaryKey;autoIncrement:false"`
	UserID    uint      `gorm:"primaryKey;autoIncrement:false;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	// Foreign keys
	Movie Movie `gorm:"foreignKey:MovieID;references:TmdbID;constraint:OnDelete:CASCADE"`
	User  User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name
func (MovieLike) TableName() string {
	return "movie_likes"
}

// Article represents the articles table
type Article struct {
	ID        uint      `gorm:"primaryKey"`
	Title     string    `gorm:"not null;size:100"`
	Content   string    `gorm:"not null;type:text"`
	UserID    uint      `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	User     User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Comments []Comment `gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name
func (Article) TableName() string {
	return "articles"
}

// Comment represents the comments table
type Comment struct {
	ID        uint      `gorm:"primaryKey"`
	Content   string    `gorm:"not null;type:text"`
	ArticleID uint      `gorm:"not null;index"`
	UserID    uint      `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name
func (Comment) TableName() string {
	return "comments"
}
