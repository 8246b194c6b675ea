// Package services contains the application services AskPro front ends call:
// AuthService for login, signup and logout, and BoardService for listing,
// asking, answering, liking and profile views.
//
// Services own the input rules (trimming, required fields, minimum password
// length, login requirement) and delegate storage to the repositories.
package services
