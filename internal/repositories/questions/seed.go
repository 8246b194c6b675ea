package questions

import "github.com/dmitrijs2005/askpro/internal/models"

// Seed returns a fresh copy of the five fixture questions.
func Seed() []models.Question {
	return []models.Question{
		{
			ID:          1,
			Title:       "How do I calculate the area of a circle?",
			Description: "I'm struggling with the formula for finding the area of a circle. Can someone explain it step by step?",
			Category:    models.CategoryMath,
			UserID:      1,
			Username:    "john_doe",
			Timestamp:   "2024-01-15",
			Answers: []models.Answer{
				{
					ID:        101,
					Text:      "The formula is A = πr². Where π (pi) is approximately 3.14159, and r is the radius of the circle. For example, if the radius is 5, the area would be 3.14159 × 5² = 78.54 square units.",
					UserID:    2,
					Username:  "jane_smith",
					Likes:     12,
					Timestamp: "2024-01-15",
				},
				{
					ID:        102,
					Text:      "Remember that the radius is half of the diameter. So if you only know the diameter, divide it by 2 first to get the radius, then use the formula A = πr².",
					UserID:    3,
					Username:  "code_wizard",
					Likes:     5,
					Timestamp: "2024-01-15",
				},
			},
		},
		{
			ID:          2,
			Title:       "What is photosynthesis?",
			Description: "I need a clear explanation of how photosynthesis works in plants. What are the inputs and outputs?",
			Category:    models.CategoryScience,
			UserID:      2,
			Username:    "jane_smith",
			Timestamp:   "2024-01-14",
			Answers: []models.Answer{
				{
					ID:        201,
					Text:      "Photosynthesis is the process plants use to convert light energy into chemical energy (glucose). The inputs are carbon dioxide (CO₂), water (H₂O), and light. The outputs are glucose (C₆H₁₂O₆) and oxygen (O₂). The simplified equation is: 6CO₂ + 6H₂O + light → C₆H₁₂O₆ + 6O₂",
					UserID:    3,
					Username:  "code_wizard",
					Likes:     23,
					Timestamp: "2024-01-14",
				},
			},
		},
		{
			ID:          3,
			Title:       "How do I center a div in CSS?",
			Description: "I've tried multiple methods but can't seem to center a div both horizontally and vertically. What's the best modern approach?",
			Category:    models.CategoryProgramming,
			UserID:      3,
			Username:    "code_wizard",
			Timestamp:   "2024-01-13",
			Answers: []models.Answer{
				{
					ID:        301,
					Text:      "The easiest modern way is using Flexbox. On the parent container, use: display: flex; justify-content: center; align-items: center; This centers the child div both horizontally and vertically.",
					UserID:    1,
					Username:  "john_doe",
					Likes:     34,
					Timestamp: "2024-01-13",
				},
				{
					ID:        302,
					Text:      "CSS Grid is another great option: display: grid; place-items: center; This is even shorter and does the same thing!",
					UserID:    2,
					Username:  "jane_smith",
					Likes:     18,
					Timestamp: "2024-01-13",
				},
			},
		},
		{
			ID:          4,
			Title:       "What's the difference between RAM and ROM?",
			Description: "I'm confused about the difference between RAM and ROM in computers. Can someone explain in simple terms?",
			Category:    models.CategoryTech,
			UserID:      1,
			Username:    "john_doe",
			Timestamp:   "2024-01-12",
			Answers: []models.Answer{
				{
					ID:        401,
					Text:      "RAM (Random Access Memory) is temporary storage that your computer uses while running programs. It's fast but loses data when you turn off the computer. ROM (Read-Only Memory) is permanent storage that contains firmware and can't be easily changed. It keeps data even when powered off.",
					UserID:    3,
					Username:  "code_wizard",
					Likes:     15,
					Timestamp: "2024-01-12",
				},
			},
		},
		{
			ID:          5,
			Title:       "Why is the sky blue?",
			Description: "I've always wondered - what makes the sky appear blue during the day?",
			Category:    models.CategoryScience,
			UserID:      2,
			Username:    "jane_smith",
			Timestamp:   "2024-01-11",
			Answers:     []models.Answer{},
		},
	}
}
