package validation

import "regexp"

// Platforms is the closed set of accepted platform values.
var Platforms = []string{"PC", "PlayStation", "Xbox", "Nintendo Switch", "Multi-platform"}

// Genres is the closed set of accepted genre values.
var Genres = []string{
	"RPG",
	"FPS",
	"Strategy",
	"Racing",
	"Adventure",
	"Sports",
	"Puzzle",
	"Simulation",
	"Horror",
	"Fighting",
	"Action",
}

var emailRegex = regexp.MustCompile(`^\w+([\.-]?\w+)*@\w+([\.-]?\w+)*(\.\w{2,3})+$`)

// ValidPlatform reports whether p is one of the accepted platforms.
func ValidPlatform(p string) bool {
	for _, v := range Platforms {
		if v == p {
			return true
		}
	}
	return false
}

// ValidGenre reports whether g is one of the accepted genres.
func ValidGenre(g string) bool {
	for _, v := range Genres {
		if v == g {
			return true
		}
	}
	return false
}

// ValidYear reports whether year is within the accepted release range.
func ValidYear(year int) bool {
	return year >= 1980 && year <= 2025
}

// ValidRating reports whether rating is within the 0..5 scale.
func ValidRating(rating float64) bool {
	return rating >= 0 && rating <= 5
}

// ValidEmail reports whether email has a plausible local@domain.tld shape.
func ValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidUsername reports whether username is 3-20 characters long.
func ValidUsername(username string) bool {
	return len(username) >= 3 && len(username) <= 20
}

// ValidPassword reports whether password is at least 6 characters long.
func ValidPassword(password string) bool {
	return len(password) >= 6
}
