//go:build js && wasm

// Command wasm exposes the AskPro data layer to a browser page as the global
// AskPro object. Every function takes plain JS arguments and returns a JSON
// string, either {"ok":true,"data":...} or {"ok":false,"error":"..."}.
// State lives in window.localStorage under the askpro_* keys.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/dmitrijs2005/askpro/internal/app"
	"github.com/dmitrijs2005/askpro/internal/common"
	"github.com/dmitrijs2005/askpro/internal/kvstore"
	"github.com/dmitrijs2005/askpro/internal/logging"
	"github.com/dmitrijs2005/askpro/internal/models"
)

var board *app.App

func main() {
	ctx := context.Background()

	logger, err := logging.New("info", consoleWriter{})
	if err != nil {
		fmt.Println("[AskPro] FATAL:", err.Error())
		return
	}

	store, err := kvstore.NewLocalStorage()
	if err != nil {
		fmt.Println("[AskPro] FATAL: localStorage unavailable:", err.Error())
		return
	}

	board, err = app.New(ctx, store, app.Options{Logger: logger})
	if err != nil {
		fmt.Println("[AskPro] FATAL: failed to initialize:", err.Error())
		return
	}

	js.Global().Set("AskPro", js.ValueOf(map[string]interface{}{
		// Auth
		"login":       js.FuncOf(login),
		"signup":      js.FuncOf(signup),
		"logout":      js.FuncOf(logout),
		"currentUser": js.FuncOf(currentUser),
		// Board
		"listQuestions": js.FuncOf(listQuestions),
		"getQuestion":   js.FuncOf(getQuestion),
		"askQuestion":   js.FuncOf(askQuestion),
		"postAnswer":    js.FuncOf(postAnswer),
		"likeAnswer":    js.FuncOf(likeAnswer),
		"profile":       js.FuncOf(profile),
		// Maintenance
		"reset": js.FuncOf(reset),
	}))

	fmt.Println("[AskPro] WASM ready")
	select {}
}

// consoleWriter sends log output to the browser console.
type consoleWriter struct{}

func (consoleWriter) Write(p []byte) (int, error) {
	js.Global().Get("console").Call("log", string(p))
	return len(p), nil
}

func result(data any, err error) interface{} {
	var body map[string]any
	if err != nil {
		body = map[string]any{"ok": false, "error": common.UserMessage(err)}
	} else {
		body = map[string]any{"ok": true, "data": data}
	}
	b, mErr := json.Marshal(body)
	if mErr != nil {
		return errorResult(mErr.Error())
	}
	return string(b)
}

func errorResult(msg string) interface{} {
	b, _ := json.Marshal(map[string]any{"ok": false, "error": msg})
	return string(b)
}

func argString(args []js.Value, i int) string {
	if i >= len(args) || args[i].IsUndefined() || args[i].IsNull() {
		return ""
	}
	return args[i].String()
}

func argInt(args []js.Value, i int) int64 {
	if i >= len(args) || args[i].Type() != js.TypeNumber {
		return 0
	}
	return int64(args[i].Int())
}

// login: [identifier string, password string]
func login(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return errorResult("requires 2 args: identifier, password")
	}
	return result(board.Auth.Login(context.Background(), argString(args, 0), argString(args, 1)))
}

// signup: [username, email, password, fullName]
func signup(this js.Value, args []js.Value) interface{} {
	if len(args) < 4 {
		return errorResult("requires 4 args: username, email, password, fullName")
	}
	return result(board.Auth.Signup(context.Background(),
		argString(args, 0), argString(args, 1), argString(args, 2), argString(args, 3)))
}

func logout(this js.Value, args []js.Value) interface{} {
	return result(nil, board.Auth.Logout(context.Background()))
}

func currentUser(this js.Value, args []js.Value) interface{} {
	return result(board.Auth.Current(context.Background()))
}

// listQuestions: [search string (optional), category string (optional)]
func listQuestions(this js.Value, args []js.Value) interface{} {
	category := models.Category(argString(args, 1))
	return result(board.Board.List(context.Background(), argString(args, 0), category))
}

// getQuestion: [id number]
func getQuestion(this js.Value, args []js.Value) interface{} {
	return result(board.Board.Question(context.Background(), argInt(args, 0)))
}

// askQuestion: [title, description, category]
func askQuestion(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return errorResult("requires 3 args: title, description, category")
	}
	return result(board.Board.Ask(context.Background(),
		argString(args, 0), argString(args, 1), models.Category(argString(args, 2))))
}

// postAnswer: [questionId number, text string]
func postAnswer(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return errorResult("requires 2 args: questionId, text")
	}
	return result(board.Board.Answer(context.Background(), argInt(args, 0), argString(args, 1)))
}

// likeAnswer: [questionId number, answerId number]
func likeAnswer(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return errorResult("requires 2 args: questionId, answerId")
	}
	return result(board.Board.Like(context.Background(), argInt(args, 0), argInt(args, 1)))
}

// profile: [username string]
func profile(this js.Value, args []js.Value) interface{} {
	return result(board.Board.Profile(context.Background(), argString(args, 0)))
}

func reset(this js.Value, args []js.Value) interface{} {
	return result(nil, board.Reset(context.Background()))
}
