package users

import "github.com/dmitrijs2005/askpro/internal/models"

// Seed returns a fresh copy of the fixture accounts.
func Seed() []models.User {
	return []models.User{
		{
			ID:           1,
			Username:     "john_doe",
			Email:        "john@example.com",
			Password:     "password123",
			FullName:     "John Doe",
			Bio:          "Web developer and tech enthusiast. Love helping others learn!",
			ProfileImage: models.DefaultAvatar,
			Joined:       "2024-01-01",
		},
		{
			ID:           2,
			Username:     "jane_smith",
			Email:        "jane@example.com",
			Password:     "mypass456",
			FullName:     "Jane Smith",
			Bio:          "Math teacher with a passion for making learning fun!",
			ProfileImage: models.DefaultAvatar,
			Joined:       "2024-01-05",
		},
		{
			ID:           3,
			Username:     "code_wizard",
			Email:        "wizard@example.com",
			Password:     "wizard789",
			FullName:     "Code Wizard",
			Bio:          "Senior developer, always happy to help debug your code!",
			ProfileImage: models.DefaultAvatar,
			Joined:       "2024-01-10",
		},
	}
}
