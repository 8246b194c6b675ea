package models

// UserStats aggregates a user's activity across all questions.
type UserStats struct {
	QuestionCount int `json:"questionCount"`
	AnswerCount   int `json:"answerCount"`
	TotalLikes    int `json:"totalLikes"`
}

// UserAnswer is an answer together with the question it was posted on.
type UserAnswer struct {
	Answer        Answer `json:"answer"`
	QuestionID    int64  `json:"questionId"`
	QuestionTitle string `json:"questionTitle"`
}

// Profile is everything the profile view shows for one user.
type Profile struct {
	User      Session      `json:"user"`
	Joined    string       `json:"joined"`
	Stats     UserStats    `json:"stats"`
	Questions []Question   `json:"questions"`
	Answers   []UserAnswer `json:"answers"`
}
