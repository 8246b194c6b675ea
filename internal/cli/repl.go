package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/askpro/internal/common"
	"github.com/dmitrijs2005/askpro/internal/logging"
	"github.com/google/uuid"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	List(ctx context.Context, search string) error
	Category(ctx context.Context, name string) error
	Show(ctx context.Context, id string) error
	Ask(ctx context.Context) error
	Answer(ctx context.Context, id string) error
	Like(ctx context.Context, questionID, answerID string) error
	Profile(ctx context.Context, handle string) error
	Reset(ctx context.Context) error
}

const (
	helpAnonymous = "Available commands: login, signup, list [text], category <name|all>, show <id>, like <qid> <aid>, profile <handle>, reset, exit"
	helpLoggedIn  = "Available commands: whoami, list [text], category <name|all>, show <id>, ask, answer <id>, like <qid> <aid>, profile <handle>, logout, reset, exit"
)

// runREPL reads commands from reader until EOF or "exit"/"quit".
//
// The first token of a line is the command, the rest are its arguments.
// Every command runs under a context carrying a fresh op_id so its log lines
// can be correlated. Handler errors are printed and the loop continues.
//
//	help                 show available commands
//	login | signup       authenticate or create an account
//	logout | whoami      end the session or show who is logged in
//	list [text]          set the search text (empty clears it) and list
//	category <name|all>  set the category filter and list
//	show <id>            question detail with answers
//	ask                  post a question (login required)
//	answer <id>          answer a question (login required)
//	like <qid> <aid>     like an answer, once per login
//	profile <handle>     user profile with stats
//	reset                wipe stored data and restore the seed
//	exit | quit          leave the program
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("askpro %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || strings.TrimSpace(line) == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]
		opCtx := logging.WithOpID(ctx, uuid.NewString())

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpAnonymous)
			}

		case "login":
			cmdErr = a.Login(opCtx)

		case "signup", "register":
			cmdErr = a.Signup(opCtx)

		case "logout":
			cmdErr = a.Logout(opCtx)

		case "whoami":
			cmdErr = a.WhoAmI(opCtx)

		case "l", "list":
			cmdErr = a.List(opCtx, strings.Join(args, " "))

		case "category":
			if len(args) != 1 {
				printlnFn("Usage: category <name|all>")
				continue
			}
			cmdErr = a.Category(opCtx, args[0])

		case "show":
			if len(args) != 1 {
				printlnFn("Usage: show <id>")
				continue
			}
			cmdErr = a.Show(opCtx, args[0])

		case "ask":
			cmdErr = a.Ask(opCtx)

		case "answer":
			if len(args) != 1 {
				printlnFn("Usage: answer <question id>")
				continue
			}
			cmdErr = a.Answer(opCtx, args[0])

		case "like":
			if len(args) != 2 {
				printlnFn("Usage: like <question id> <answer id>")
				continue
			}
			cmdErr = a.Like(opCtx, args[0], args[1])

		case "profile":
			if len(args) != 1 {
				printlnFn("Usage: profile <username>")
				continue
			}
			cmdErr = a.Profile(opCtx, args[0])

		case "reset":
			cmdErr = a.Reset(opCtx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", common.UserMessage(cmdErr))
		}
		if err != nil {
			return
		}
	}
}
