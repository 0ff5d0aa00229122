package models

import "time"

// ListKind names one of the two per-user game lists.
type ListKind string

const (
	// ListCollection holds games the user owns.
	ListCollection ListKind = "collection"

	// ListWishlist holds games the user wants.
	ListWishlist ListKind = "wishlist"
)

// LibraryEntry links a user to a game in one of their lists.
// The composite primary key (UserID, GameID, List) forbids duplicates
// within a list while still allowing the same game to sit in both lists
// at once. CreatedAt preserves append order.
type LibraryEntry struct {
	UserID    uint     `gorm:"primaryKey"`
	GameID    uint     `gorm:"primaryKey"`
	List      ListKind `gorm:"primaryKey;type:varchar(20)"`
	CreatedAt time.Time

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Game Game `gorm:"foreignKey:GameID;references:ID"`
}
