package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/askpro/internal/models"
)

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

func renderList(w io.Writer, qs []models.Question) {
	if len(qs) == 0 {
		fmt.Fprintln(w, "No questions found.")
		return
	}
	for _, q := range qs {
		fmt.Fprintf(w, "#%d  %s\n", q.ID, q.Title)
		fmt.Fprintf(w, "    [%s]  %s  by %s  asked on %s\n",
			q.Category, plural(len(q.Answers), "Answer"), q.Username, q.Timestamp)
	}
}

func renderQuestion(w io.Writer, q models.Question, liked map[likeKey]struct{}) {
	fmt.Fprintf(w, "#%d  %s\n", q.ID, q.Title)
	fmt.Fprintf(w, "[%s]  Asked by %s on %s\n\n", q.Category, q.Username, q.Timestamp)
	fmt.Fprintln(w, q.Description)
	fmt.Fprintln(w)

	fmt.Fprintln(w, plural(len(q.Answers), "Answer"))
	if len(q.Answers) == 0 {
		fmt.Fprintln(w, "No answers yet. Be the first to answer!")
		return
	}
	for _, ans := range q.Answers {
		mark := ""
		if _, ok := liked[likeKey{q.ID, ans.ID}]; ok {
			mark = " (liked)"
		}
		fmt.Fprintf(w, "  [%d] Answered by %s on %s  ♥ %d%s\n", ans.ID, ans.Username, ans.Timestamp, ans.Likes, mark)
		for _, line := range strings.Split(ans.Text, "\n") {
			fmt.Fprintf(w, "      %s\n", line)
		}
	}
}

func renderProfile(w io.Writer, p models.Profile) {
	u := models.User{Bio: p.User.Bio}
	fmt.Fprintf(w, "%s\n%s\n%s\n%s\n", p.User.Username, p.User.FullName, p.User.Email, u.DisplayBio())
	fmt.Fprintf(w, "Member since %s\n\n", p.Joined)
	fmt.Fprintf(w, "Questions: %d  Answers: %d  Likes: %d\n\n",
		p.Stats.QuestionCount, p.Stats.AnswerCount, p.Stats.TotalLikes)

	fmt.Fprintln(w, "Questions")
	if len(p.Questions) == 0 {
		fmt.Fprintln(w, "  No questions asked yet.")
	}
	for _, q := range p.Questions {
		fmt.Fprintf(w, "  #%d %s [%s] %s, asked on %s\n",
			q.ID, q.Title, q.Category, strings.ToLower(plural(len(q.Answers), "answer")), q.Timestamp)
	}

	fmt.Fprintln(w, "Answers")
	if len(p.Answers) == 0 {
		fmt.Fprintln(w, "  No answers posted yet.")
	}
	for _, ua := range p.Answers {
		fmt.Fprintf(w, "  on #%d %s  ♥ %d\n      %s\n",
			ua.QuestionID, ua.QuestionTitle, ua.Answer.Likes, ua.Answer.Text)
	}
}
