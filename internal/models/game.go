package models

import "gorm.io/gorm"

// Platform is the closed set of platforms a game can be catalogued under.
type Platform string

const (
	PlatformPC     Platform = "PC"
	PlatformPS     Platform = "PlayStation"
	PlatformXbox   Platform = "Xbox"
	PlatformSwitch Platform = "Nintendo Switch"
	PlatformMulti  Platform = "Multi-platform"
)

// Genre is the closed set of genres a game can be catalogued under.
type Genre string

const (
	GenreRPG        Genre = "RPG"
	GenreFPS        Genre = "FPS"
	GenreStrategy   Genre = "Strategy"
	GenreRacing     Genre = "Racing"
	GenreAdventure  Genre = "Adventure"
	GenreSports     Genre = "Sports"
	GenrePuzzle     Genre = "Puzzle"
	GenreSimulation Genre = "Simulation"
	GenreHorror     Genre = "Horror"
	GenreFighting   Genre = "Fighting"
	GenreAction     Genre = "Action"
)

// Game represents a catalog entry. AddedByID records the user who created
// the entry and never changes afterwards; other users reference the game
// only through their library entries.
type Game struct {
	gorm.Model
	Title       string   `gorm:"size:100;not null"`
	Platform    Platform `gorm:"size:50;not null"`
	Genre       Genre    `gorm:"size:50;not null"`
	Year        int      `gorm:"not null"`
	Rating      float64  `gorm:"not null"`
	Description string   `gorm:"size:500;not null"`
	Developer   string   `gorm:"size:100"`
	Publisher   string   `gorm:"size:100"`
	PosterURL   string   `gorm:"size:300"`

	AddedByID uint `gorm:"not null;index"`
	AddedBy   User `gorm:"foreignKey:AddedByID"`
}
