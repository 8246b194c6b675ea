package models

// Category classifies a question.
type Category string

const (
	CategoryMath        Category = "Math"
	CategoryScience     Category = "Science"
	CategoryProgramming Category = "Programming"
	CategoryTech        Category = "Tech"
	CategoryOther       Category = "Other"

	// CategoryAll is the filter value matching every category. It is not a
	// valid category for a question.
	CategoryAll Category = "all"
)

// Categories lists the valid question categories in display order.
var Categories = []Category{CategoryMath, CategoryScience, CategoryProgramming, CategoryTech, CategoryOther}

// ParseCategory returns the category named s and whether it is valid.
// Matching is exact, as stored categories are case-sensitive.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Question is a posted question and its answers in display order.
//
// UserID/Username identify the author; Username is a snapshot taken when the
// question was posted and is not updated afterwards.
type Question struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	UserID      int64    `json:"user_id"`
	Username    string   `json:"username"`
	Timestamp   string   `json:"timestamp"`
	Answers     []Answer `json:"answers"`
}

// Answer belongs to exactly one Question. Likes only ever grows.
type Answer struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
	Likes     int    `json:"likes"`
	Timestamp string `json:"timestamp"`
}

// Clone returns a deep copy of q. The answer slice is never nil, so an
// unanswered question serializes as "answers": [].
func (q Question) Clone() Question {
	c := q
	c.Answers = make([]Answer, len(q.Answers))
	copy(c.Answers, q.Answers)
	return c
}

// CloneQuestions deep-copies a collection.
func CloneQuestions(qs []Question) []Question {
	out := make([]Question, len(qs))
	for i, q := range qs {
		out[i] = q.Clone()
	}
	return out
}
