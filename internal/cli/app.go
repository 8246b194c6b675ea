package cli

import (
	"bufio"
	"context"
	"io"

	"github.com/dmitrijs2005/askpro/internal/logging"
	"github.com/dmitrijs2005/askpro/internal/models"
	"github.com/dmitrijs2005/askpro/internal/services"
)

// Resetter wipes persisted board data and restores the seed.
type Resetter interface {
	Reset(ctx context.Context) error
}

type likeKey struct{ questionID, answerID int64 }

type App struct {
	authService  services.AuthService
	boardService services.BoardService
	resetter     Resetter
	log          logging.Logger

	reader *bufio.Reader
	out    io.Writer

	session  *models.Session
	search   string
	category models.Category
	liked    map[likeKey]struct{}
}

// NewApp builds the REPL over the given services, reading from in and
// writing to out.
func NewApp(auth services.AuthService, board services.BoardService, resetter Resetter, log logging.Logger, in io.Reader, out io.Writer) *App {
	if log == nil {
		log = logging.NewNop()
	}
	return &App{
		authService:  auth,
		boardService: board,
		resetter:     resetter,
		log:          log.With("component", "cli"),
		reader:       bufio.NewReader(in),
		out:          out,
		category:     models.CategoryAll,
		liked:        map[likeKey]struct{}{},
	}
}

// Run restores a stored session, prints the question list and runs the REPL
// until the user exits.
func (a *App) Run(ctx context.Context) error {
	s, err := a.authService.Current(ctx)
	if err != nil {
		return err
	}
	a.session = s

	printlnFn("Welcome to AskPro (type 'help' for commands)")
	if err := a.List(ctx, ""); err != nil {
		return err
	}

	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) getStatus() string {
	if a.session == nil {
		return "(guest)"
	}
	return "(" + a.session.Username + ")"
}

// setSession replaces the logged-in user. Likes are tracked per login, so
// any change of session forgets them.
func (a *App) setSession(s *models.Session) {
	a.session = s
	a.liked = map[likeKey]struct{}{}
}
