// Package users holds the AskPro account list.
//
// The repository is seeded with three fixture accounts every time it is
// initialized. By default signups live only in memory, so a restart brings
// back the seed list while questions and answers written by those accounts
// stay in the question store. WithPersistence switches on write-through to
// the askpro_users key instead.
//
// Credentials are compared in plaintext. This is a demo account list, not a
// credential store: do not adapt it for real authentication without salted
// password hashing.
package users
