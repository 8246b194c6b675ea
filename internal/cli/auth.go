package cli

import (
	"context"
	"fmt"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

// Login prompts for a username or email and a password. Like the login page
// it refuses to run while someone is already logged in.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		fmt.Fprintf(a.out, "Already logged in as %s. Use 'logout' first.\n", a.session.Username)
		return nil
	}

	identifier, err := getSimpleText(a.reader, "Username or email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	s, err := a.authService.Login(ctx, identifier, password)
	if err != nil {
		return err
	}
	a.setSession(s)

	fmt.Fprintf(a.out, "Login successful! Welcome back, %s!\n", s.Username)
	return nil
}

// Signup prompts for the account fields and logs the new account in.
func (a *App) Signup(ctx context.Context) error {
	if a.isLoggedIn() {
		fmt.Fprintf(a.out, "Already logged in as %s. Use 'logout' first.\n", a.session.Username)
		return nil
	}

	handle, err := getSimpleText(a.reader, "Choose a username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	fullName, err := getSimpleText(a.reader, "Full name", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	s, err := a.authService.Signup(ctx, handle, email, password, fullName)
	if err != nil {
		return err
	}
	a.setSession(s)

	fmt.Fprintf(a.out, "Signup successful! Welcome to AskPro, %s!\n", s.Username)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.setSession(nil)
	fmt.Fprintln(a.out, "You have been logged out!")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	fmt.Fprintf(a.out, "%s (%s) <%s>\n", a.session.Username, a.session.FullName, a.session.Email)
	return nil
}
