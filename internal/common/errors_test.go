package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSentinels_AreDistinct(t *testing.T) {
	all := []error{ErrNotFound, ErrAlreadyExists, ErrInvalidCredentials, ErrUnauthorized, ErrValidation}
	for i, a := range all {
		for j, b := range all {
			if i == j {
				continue
			}
			require.False(t, errors.Is(a, b), "%v must not match %v", a, b)
		}
	}
}

func TestSentinels_SurviveWrapping(t *testing.T) {
	err := fmt.Errorf("username or email already exists: %w", ErrAlreadyExists)
	require.ErrorIs(t, err, ErrAlreadyExists)
	require.NotErrorIs(t, err, ErrNotFound)
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("password must be at least 6 characters long: %w", ErrValidation), "password must be at least 6 characters long"},
		{fmt.Errorf("please login to ask a question: %w", ErrUnauthorized), "please login to ask a question"},
		{fmt.Errorf("username or email already exists: %w", ErrAlreadyExists), "username or email already exists"},
		{ErrInvalidCredentials, "invalid username or password"},
		{fmt.Errorf("question 9: %w", ErrNotFound), "question 9: not found"},
		{errors.New("disk full"), "disk full"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, UserMessage(tt.err))
	}
}
