// Package models defines the AskPro data model: users, questions with their
// embedded answers, the session projection and derived profile views.
//
// JSON field names follow the stored format of the askpro_* keys, so a
// collection written by an earlier version of the board stays readable.
package models

const (
	// DefaultAvatar is the avatar reference given to every account.
	DefaultAvatar = "default-avatar.png"

	// WelcomeBio is stored as the biography of accounts created by signup.
	WelcomeBio = "New member of AskPro community!"

	// PlaceholderBio is shown for accounts without a biography. It is a
	// display default only and is never written to storage.
	PlaceholderBio = "No bio yet."
)

// User is an account record.
//
// Password is compared for equality at login and is stored as given. This
// repository is not a credential store; do not reuse it for real
// authentication without salted hashing.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	FullName     string `json:"full_name"`
	Bio          string `json:"bio,omitempty"`
	ProfileImage string `json:"profile_image"`
	// Joined is the ISO calendar date (YYYY-MM-DD) of account creation.
	Joined string `json:"joined"`
}

// DisplayBio returns the biography or the placeholder when it is empty.
func (u User) DisplayBio() string {
	if u.Bio == "" {
		return PlaceholderBio
	}
	return u.Bio
}

// Session is the persisted "who is logged in" record: a User without its
// credential secret.
type Session struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	FullName     string `json:"full_name"`
	Bio          string `json:"bio,omitempty"`
	ProfileImage string `json:"profile_image"`
}

// SessionOf projects u down to its Session.
func SessionOf(u User) Session {
	return Session{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		FullName:     u.FullName,
		Bio:          u.Bio,
		ProfileImage: u.ProfileImage,
	}
}
