package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/askpro/internal/app"
	"github.com/dmitrijs2005/askpro/internal/common"
	"github.com/dmitrijs2005/askpro/internal/ids"
	"github.com/dmitrijs2005/askpro/internal/kvstore"
	"github.com/dmitrijs2005/askpro/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ------------ helpers ------------

func newTestApp(t *testing.T, input ...string) (*App, *app.App, *bytes.Buffer) {
	t.Helper()

	origTerm := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = origTerm })
	capturePrints(t)

	alloc := ids.New(ids.WithClock(func() time.Time { return time.Date(2025, 3, 9, 10, 0, 0, 0, time.Local) }))
	wired, err := app.New(context.Background(), kvstore.NewMemoryStore(), app.Options{Allocator: alloc})
	require.NoError(t, err)

	var out bytes.Buffer
	in := strings.NewReader(strings.Join(input, "\n") + "\n")
	return NewApp(wired.Auth, wired.Board, wired, nil, in, &out), wired, &out
}

// ------------ auth ------------

func TestApp_LoginLogout(t *testing.T) {
	a, _, out := newTestApp(t, "jane@example.com", "mypass456")
	ctx := context.Background()

	require.NoError(t, a.Login(ctx))
	assert.True(t, a.isLoggedIn())
	assert.Equal(t, "(jane_smith)", a.getStatus())
	assert.Contains(t, out.String(), "Welcome back, jane_smith!")

	out.Reset()
	require.NoError(t, a.Login(ctx))
	assert.Contains(t, out.String(), "Already logged in as jane_smith")

	require.NoError(t, a.Logout(ctx))
	assert.False(t, a.isLoggedIn())
	assert.Equal(t, "(guest)", a.getStatus())
}

func TestApp_LoginInvalid(t *testing.T) {
	a, _, _ := newTestApp(t, "john_doe", "nope")
	err := a.Login(context.Background())
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	assert.False(t, a.isLoggedIn())
}

func TestApp_Signup(t *testing.T) {
	a, _, out := newTestApp(t, "alice", "alice@x.io", "Alice A", "secret1")
	require.NoError(t, a.Signup(context.Background()))
	assert.Equal(t, "(alice)", a.getStatus())
	assert.Contains(t, out.String(), "Welcome to AskPro, alice!")

	out.Reset()
	require.NoError(t, a.WhoAmI(context.Background()))
	assert.Equal(t, "alice (Alice A) <alice@x.io>\n", out.String())
}

func TestApp_SignupShortPassword(t *testing.T) {
	a, _, _ := newTestApp(t, "alice", "alice@x.io", "Alice", "12345")
	err := a.Signup(context.Background())
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Equal(t, "password must be at least 6 characters long", common.UserMessage(err))
}

func TestApp_RunRestoresSession(t *testing.T) {
	a, wired, _ := newTestApp(t, "exit")
	ctx := context.Background()
	_, err := wired.Auth.Login(ctx, "code_wizard", "wizard789")
	require.NoError(t, err)

	require.NoError(t, a.Run(ctx))
	assert.Equal(t, "(code_wizard)", a.getStatus())
}

// ------------ board ------------

func TestApp_ListAndCategory(t *testing.T) {
	a, _, out := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, a.List(ctx, "photosynthesis"))
	assert.Contains(t, out.String(), "#2  What is photosynthesis?")
	assert.NotContains(t, out.String(), "#1 ")

	out.Reset()
	require.NoError(t, a.List(ctx, ""))
	out.Reset()
	require.NoError(t, a.Category(ctx, "science"))
	s := out.String()
	idx := strings.Index(s, "#2  What is photosynthesis?")
	require.GreaterOrEqual(t, idx, 0)
	assert.Equal(t, 2, strings.Count(s[idx:], "#"), "science lists questions 2 and 5")
	assert.Contains(t, s, "0 Answers")
	assert.Contains(t, s, "1 Answer ")

	out.Reset()
	require.NoError(t, a.List(ctx, "quantum"))
	assert.Contains(t, out.String(), "No questions found.")

	err := a.Category(ctx, "History")
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestApp_Show(t *testing.T) {
	a, _, out := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, a.Show(ctx, "5"))
	assert.Contains(t, out.String(), "No answers yet.")

	out.Reset()
	require.NoError(t, a.Show(ctx, "404"))
	assert.Contains(t, out.String(), "Question not found.")

	require.ErrorIs(t, a.Show(ctx, "abc"), common.ErrValidation)
}

func TestApp_AskRequiresLogin(t *testing.T) {
	a, _, out := newTestApp(t)
	err := a.Ask(context.Background())
	require.ErrorIs(t, err, common.ErrUnauthorized)
	assert.Empty(t, out.String(), "no prompt is shown to a guest")
}

func TestApp_AskAndAnswer(t *testing.T) {
	a, wired, out := newTestApp(t,
		"john_doe", "password123",
		"What is a monad?", "Explain it simply.", "", "programming",
		"It is a burrito.", "",
	)
	ctx := context.Background()

	require.NoError(t, a.Login(ctx))
	require.NoError(t, a.Ask(ctx))
	assert.Contains(t, out.String(), "Your question has been posted! (#6)")

	require.NoError(t, a.Answer(ctx, "6"))
	assert.Contains(t, out.String(), "Your answer has been posted!")

	q, err := wired.Board.Question(ctx, 6)
	require.NoError(t, err)
	assert.Equal(t, models.CategoryProgramming, q.Category)
	assert.Equal(t, "Explain it simply.", q.Description)
	require.Len(t, q.Answers, 1)
	assert.Equal(t, "It is a burrito.", q.Answers[0].Text)
	assert.Equal(t, "john_doe", q.Answers[0].Username)
}

func TestApp_AnswerUnknownQuestion(t *testing.T) {
	a, _, _ := newTestApp(t, "john_doe", "password123")
	ctx := context.Background()
	require.NoError(t, a.Login(ctx))
	require.ErrorIs(t, a.Answer(ctx, "77"), common.ErrNotFound)
}

func TestApp_LikeOncePerLogin(t *testing.T) {
	a, wired, out := newTestApp(t, "john_doe", "password123")
	ctx := context.Background()

	require.NoError(t, a.Like(ctx, "2", "201"))
	require.NoError(t, a.Like(ctx, "2", "201"))
	assert.Contains(t, out.String(), "You already liked this answer.")

	q, err := wired.Board.Question(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 24, q.Answers[0].Likes)

	require.NoError(t, a.Login(ctx))
	require.NoError(t, a.Like(ctx, "2", "201"))
	q, err = wired.Board.Question(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 25, q.Answers[0].Likes, "a new login may like again")

	require.ErrorIs(t, a.Like(ctx, "2", "999"), common.ErrNotFound)
	require.ErrorIs(t, a.Like(ctx, "x", "201"), common.ErrValidation)
}

func TestApp_Profile(t *testing.T) {
	a, _, out := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, a.Profile(ctx, "code_wizard"))
	s := out.String()
	assert.Contains(t, s, "Code Wizard")
	assert.Contains(t, s, "Member since 2024-01-10")
	assert.Contains(t, s, "Questions: 1  Answers: 3  Likes: 43")
	assert.Contains(t, s, "#3 How do I center a div in CSS? [Programming] 2 answers")

	out.Reset()
	require.NoError(t, a.Profile(ctx, "nobody"))
	assert.Contains(t, out.String(), "User not found.")
}

func TestApp_ProfileOfSignup(t *testing.T) {
	a, _, out := newTestApp(t, "alice", "alice@x.io", "Alice", "secret1")
	ctx := context.Background()
	require.NoError(t, a.Signup(ctx))

	out.Reset()
	require.NoError(t, a.Profile(ctx, "alice"))
	s := out.String()
	assert.Contains(t, s, models.WelcomeBio)
	assert.Contains(t, s, "Member since 2025-03-09")
	assert.Contains(t, s, "No questions asked yet.")
	assert.Contains(t, s, "No answers posted yet.")
}

func TestApp_Reset(t *testing.T) {
	a, wired, out := newTestApp(t, "john_doe", "password123", "no", "yes")
	ctx := context.Background()

	require.NoError(t, a.Login(ctx))
	_, err := wired.Board.Like(ctx, 1, 101)
	require.NoError(t, err)

	require.NoError(t, a.Reset(ctx))
	assert.Contains(t, out.String(), "Reset cancelled.")
	assert.True(t, a.isLoggedIn())

	require.NoError(t, a.Reset(ctx))
	assert.False(t, a.isLoggedIn())

	q, err := wired.Board.Question(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 12, q.Answers[0].Likes)
}
