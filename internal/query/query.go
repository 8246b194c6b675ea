// Package query holds pure read-side helpers over a question collection:
// search/category filtering and per-user aggregation for profile pages.
//
// None of the functions mutate their input.
package query

import (
	"strings"

	"github.com/dmitrijs2005/askpro/internal/models"
)

// Filter returns the questions whose title or description contains search
// (case-insensitive) and whose category equals category, preserving input
// order. An empty search matches everything; category "all" matches every
// category.
func Filter(qs []models.Question, search string, category models.Category) []models.Question {
	needle := strings.ToLower(search)
	out := make([]models.Question, 0, len(qs))
	for _, q := range qs {
		if category != models.CategoryAll && q.Category != category {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(q.Title), needle) &&
			!strings.Contains(strings.ToLower(q.Description), needle) {
			continue
		}
		out = append(out, q.Clone())
	}
	return out
}

// StatsForUser counts the questions authored by userID, the answers they
// wrote across all questions, and the likes those answers received.
func StatsForUser(qs []models.Question, userID int64) models.UserStats {
	var s models.UserStats
	for _, q := range qs {
		if q.UserID == userID {
			s.QuestionCount++
		}
		for _, a := range q.Answers {
			if a.UserID == userID {
				s.AnswerCount++
				s.TotalLikes += a.Likes
			}
		}
	}
	return s
}

// AnswersByUser lists every answer written by userID with the id and title
// of its question, in collection order then answer order.
func AnswersByUser(qs []models.Question, userID int64) []models.UserAnswer {
	out := []models.UserAnswer{}
	for _, q := range qs {
		for _, a := range q.Answers {
			if a.UserID == userID {
				out = append(out, models.UserAnswer{
					Answer:        a,
					QuestionID:    q.ID,
					QuestionTitle: q.Title,
				})
			}
		}
	}
	return out
}

// QuestionsByUser lists the questions authored by userID.
func QuestionsByUser(qs []models.Question, userID int64) []models.Question {
	out := []models.Question{}
	for _, q := range qs {
		if q.UserID == userID {
			out = append(out, q.Clone())
		}
	}
	return out
}

// FindQuestion returns the question with the given id.
func FindQuestion(qs []models.Question, id int64) (*models.Question, bool) {
	for _, q := range qs {
		if q.ID == id {
			c := q.Clone()
			return &c, true
		}
	}
	return nil, false
}

// FindAnswer returns the index of the answer with the given id in q, or -1.
func FindAnswer(q models.Question, answerID int64) int {
	for i, a := range q.Answers {
		if a.ID == answerID {
			return i
		}
	}
	return -1
}
