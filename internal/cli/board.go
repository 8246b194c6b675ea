package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/askpro/internal/common"
	"github.com/dmitrijs2005/askpro/internal/models"
)

func parseID(kind, s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id %q: %w", kind, s, common.ErrValidation)
	}
	return id, nil
}

// List sets the search text and prints the matching questions under the
// current category filter.
func (a *App) List(ctx context.Context, search string) error {
	a.search = strings.TrimSpace(search)
	return a.printList(ctx)
}

// Category sets the category filter ("all" or a category name, any case)
// and prints the matching questions.
func (a *App) Category(ctx context.Context, name string) error {
	if strings.EqualFold(name, string(models.CategoryAll)) {
		a.category = models.CategoryAll
		return a.printList(ctx)
	}
	for _, c := range models.Categories {
		if strings.EqualFold(name, string(c)) {
			a.category = c
			return a.printList(ctx)
		}
	}
	return fmt.Errorf("unknown category %q, choose one of %s or all: %w", name, categoryNames(), common.ErrValidation)
}

func (a *App) printList(ctx context.Context) error {
	qs, err := a.boardService.List(ctx, a.search, a.category)
	if err != nil {
		return err
	}
	renderList(a.out, qs)
	return nil
}

func (a *App) Show(ctx context.Context, id string) error {
	qid, err := parseID("question", id)
	if err != nil {
		return err
	}
	q, err := a.boardService.Question(ctx, qid)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Fprintln(a.out, "Question not found.")
			return nil
		}
		return err
	}
	renderQuestion(a.out, *q, a.liked)
	return nil
}

// Ask prompts for a new question. A guest is told to log in before any
// prompt is shown.
func (a *App) Ask(ctx context.Context) error {
	if !a.isLoggedIn() {
		return fmt.Errorf("please login to ask a question: %w", common.ErrUnauthorized)
	}

	title, err := getSimpleText(a.reader, "Question title", a.out)
	if err != nil {
		return err
	}
	description, err := getMultiline(a.reader, "Describe your question", a.out)
	if err != nil {
		return err
	}
	category, err := getSimpleText(a.reader, "Category ("+categoryNames()+")", a.out)
	if err != nil {
		return err
	}

	c, ok := matchCategory(category)
	if !ok {
		return fmt.Errorf("unknown category %q: %w", category, common.ErrValidation)
	}

	q, err := a.boardService.Ask(ctx, title, description, c)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Your question has been posted! (#%d)\n", q.ID)
	return nil
}

func (a *App) Answer(ctx context.Context, id string) error {
	qid, err := parseID("question", id)
	if err != nil {
		return err
	}
	if !a.isLoggedIn() {
		return fmt.Errorf("please login to post an answer: %w", common.ErrUnauthorized)
	}
	if _, err := a.boardService.Question(ctx, qid); err != nil {
		return err
	}

	text, err := getMultiline(a.reader, "Your answer", a.out)
	if err != nil {
		return err
	}

	ans, err := a.boardService.Answer(ctx, qid, text)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Your answer has been posted! (#%d)\n", ans.ID)
	return nil
}

// Like adds a like to an answer. Each answer can be liked once per login,
// matching the button that disables itself after a click.
func (a *App) Like(ctx context.Context, questionID, answerID string) error {
	qid, err := parseID("question", questionID)
	if err != nil {
		return err
	}
	aid, err := parseID("answer", answerID)
	if err != nil {
		return err
	}

	key := likeKey{qid, aid}
	if _, done := a.liked[key]; done {
		fmt.Fprintln(a.out, "You already liked this answer.")
		return nil
	}

	ans, err := a.boardService.Like(ctx, qid, aid)
	if err != nil {
		return err
	}
	a.liked[key] = struct{}{}
	fmt.Fprintf(a.out, "♥ %d\n", ans.Likes)
	return nil
}

func (a *App) Profile(ctx context.Context, handle string) error {
	p, err := a.boardService.Profile(ctx, handle)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Fprintln(a.out, "User not found.")
			return nil
		}
		return err
	}
	renderProfile(a.out, *p)
	return nil
}

// Reset asks for confirmation, wipes stored data and logs out.
func (a *App) Reset(ctx context.Context) error {
	confirm, err := getSimpleText(a.reader, "This deletes all questions, answers and the session. Type 'yes' to confirm", a.out)
	if err != nil {
		return err
	}
	if confirm != "yes" {
		fmt.Fprintln(a.out, "Reset cancelled.")
		return nil
	}

	if err := a.resetter.Reset(ctx); err != nil {
		return err
	}
	a.setSession(nil)
	a.search, a.category = "", models.CategoryAll
	a.log.Info(ctx, "board reset")
	fmt.Fprintln(a.out, "Board reset to sample data.")
	return nil
}

func matchCategory(s string) (models.Category, bool) {
	for _, c := range models.Categories {
		if strings.EqualFold(strings.TrimSpace(s), string(c)) {
			return c, true
		}
	}
	return "", false
}

func categoryNames() string {
	names := make([]string, len(models.Categories))
	for i, c := range models.Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
