package depot

import (
	"context"
	"log/slog"
	"strings"

	"github.com/erazemk/juicedepot/internal/auth"
	"github.com/erazemk/juicedepot/internal/model"
)

// Login returns the session of the user whose username and password match
// exactly. Unknown usernames and wrong passwords fail the same way.
func (s *Service) Login(ctx context.Context, username, password string) (model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.store.Users(ctx)
	if err != nil {
		return model.Session{}, err
	}

	for _, u := range users {
		if u.Username == username && passwordMatches(u, password) {
			slog.Info("user logged in", "user", u.Username, "user_type", u.UserType)
			return u.Session(), nil
		}
	}

	slog.Warn("login failed", "username", username)
	return model.Session{}, newError(ErrAuth, "invalid username or password")
}

// Signup creates a user. userType defaults to worker.
func (s *Service) Signup(ctx context.Context, username, password, confirmPassword, userType string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if err := model.ValidateCredentials(username, password); err != nil {
		return nil, newError(ErrValidation, "%v", err)
	}
	if password != confirmPassword {
		return nil, newError(ErrValidation, "passwords do not match")
	}
	if userType == "" {
		userType = model.UserTypeWorker
	}
	if !model.ValidUserType(userType) {
		return nil, newError(ErrValidation, "user type must be %s or %s", model.UserTypeOwner, model.UserTypeWorker)
	}

	user := model.User{Username: username, Password: password, UserType: userType}
	if s.hashPasswords {
		hash, err := auth.HashPassword(password)
		if err != nil {
			return nil, err
		}
		user.Password, user.PasswordHash = "", hash
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.store.Users(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Username == username {
			return nil, newError(ErrAuth, "username already exists")
		}
	}

	user.ID = nextID(users, func(u model.User) int64 { return u.ID })
	if err := s.store.SaveUsers(ctx, append(users, user)); err != nil {
		return nil, err
	}

	slog.Info("user signed up", "user", user.Username, "user_type", user.UserType)
	return &user, nil
}

// passwordMatches checks password against the record's own stored form. The
// form is never guessed from the stored text.
func passwordMatches(u model.User, password string) bool {
	if u.PasswordHash != "" {
		return auth.CheckPasswordHash(u.PasswordHash, password)
	}
	return auth.CheckPassword(u.Password, password)
}
