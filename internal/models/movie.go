package models

import "time"

// Movie is a local copy of a catalog movie, keyed by the catalog's id.
type Movie struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Title        string    `json:"title" gorm:"not null"`
	ReleaseDate  *string   `json:"release_date" gorm:"size:10"`
	PosterPath   *string   `json:"poster_path"`
	BackdropPath *string   `json:"backdrop_path"`
	Overview     *string   `json:"overview" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Genre struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name      string    `json:"name" gorm:"not null"`
	CreatedAt time.Time `json:"-"`
}

// MovieGenre is the movie/genre association; the row's existence is the membership.
type MovieGenre struct {
	MovieID int64 `gorm:"primaryKey;autoIncrement:false"`
	GenreID int64 `gorm:"primaryKey;autoIncrement:false;index"`
	Movie   Movie `json:"-" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE"`
	Genre   Genre `json:"-" gorm:"foreignKey:GenreID;constraint:OnDelete:CASCADE"`
}

// MovieUpsert carries the fields to merge into a movie row. Nil fields leave stored values alone.
type MovieUpsert struct {
	ID           int64
	Title        string
	ReleaseDate  *string
	PosterPath   *string
	BackdropPath *string
	Overview     *string
}

// GenreRef is the compact genre shape embedded in list responses.
type GenreRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
