package auth

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/erazemk/prodajalna/internal/jsonfile"
	"github.com/erazemk/prodajalna/internal/model"
)

// Config configures a credential store.
type Config struct {
	// File is the path of the users document.
	File string
	// SessionTTL bounds how long a login stays valid. Zero means until logout.
	SessionTTL time.Duration
	// Cost is the bcrypt cost used for new password hashes.
	Cost int
}

// Session is the currently authenticated user.
type Session struct {
	User      model.User
	Token     string
	ExpiresAt time.Time
}

// Credentials owns the registered users and the single active session.
// It is not safe for concurrent use.
type Credentials struct {
	cfg     Config
	users   map[string]model.User
	session *Session
	secret  []byte
}

// Open loads the users document named by cfg.File. A missing or unreadable
// document is logged and the store starts with no users; call EnsureAdmin
// afterwards to seed an initial account.
func Open(cfg Config) (*Credentials, error) {
	secret, err := NewSecret()
	if err != nil {
		return nil, err
	}

	c := &Credentials{
		cfg:    cfg,
		users:  make(map[string]model.User),
		secret: secret,
	}

	var users map[string]model.User
	if err := jsonfile.Read(cfg.File, &users); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Info("users file not found, starting empty", "path", cfg.File)
		} else {
			slog.Warn("users file unreadable, starting empty", "path", cfg.File, "error", err)
		}
		return c, nil
	}
	if users != nil {
		c.users = users
	}

	slog.Info("users loaded", "path", cfg.File, "count", len(c.users))
	return c, nil
}

// EnsureAdmin registers a manager account when no users exist yet. It
// reports whether the account was created.
func (c *Credentials) EnsureAdmin(username, password string) (bool, error) {
	if len(c.users) > 0 {
		return false, nil
	}
	if err := c.Register(username, password, model.RoleManager); err != nil {
		return false, fmt.Errorf("creating default admin: %w", err)
	}
	slog.Info("default admin created", "user", username)
	return true, nil
}

// Register adds a user and persists the whole user set.
func (c *Credentials) Register(username, password string, role model.Role) error {
	if username == "" {
		return fmt.Errorf("%w: username must not be empty", model.ErrInvalidInput)
	}
	if !model.ValidRole(role) {
		return fmt.Errorf("%w: unknown role %q", model.ErrInvalidInput, role)
	}
	if _, exists := c.users[username]; exists {
		return fmt.Errorf("%w: username '%s' already exists", model.ErrInvalidInput, username)
	}

	hash, err := HashPassword(password, c.cfg.Cost)
	if err != nil {
		slog.Error("hashing password failed", "user", username, "error", err)
		return fmt.Errorf("hashing password: %w", model.ErrAuth)
	}

	c.users[username] = model.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}

	if err := c.save(); err != nil {
		delete(c.users, username)
		return err
	}

	slog.Info("user registered", "user", username, "role", role)
	return nil
}

// Login checks the credentials and starts a session. Unknown users, wrong
// passwords and verifier failures all return model.ErrAuth.
func (c *Credentials) Login(username, password string) error {
	user, ok := c.users[username]
	if !ok {
		slog.Warn("login failed", "username", username)
		return model.ErrAuth
	}

	if err := CheckPassword(password, user.PasswordHash); err != nil {
		slog.Warn("login failed", "username", username)
		return model.ErrAuth
	}

	token, err := GenerateToken(c.secret, user, c.cfg.SessionTTL)
	if err != nil {
		slog.Error("issuing session token failed", "user", username, "error", err)
		return model.ErrAuth
	}

	s := &Session{User: user, Token: token}
	if c.cfg.SessionTTL > 0 {
		s.ExpiresAt = time.Now().Add(c.cfg.SessionTTL)
	}
	c.session = s

	slog.Info("user logged in", "user", user.Username, "role", user.Role)
	return nil
}

// Logout ends the active session, if any.
func (c *Credentials) Logout() {
	if c.session != nil {
		slog.Info("user logged out", "user", c.session.User.Username)
	}
	c.session = nil
}

// IsManager reports whether the active session belongs to a manager.
func (c *Credentials) IsManager() bool {
	s, ok := c.Session()
	return ok && model.RoleAtLeast(s.User.Role, model.RoleManager)
}

// CurrentUser returns the user of the active session.
func (c *Credentials) CurrentUser() (model.User, bool) {
	s, ok := c.Session()
	if !ok {
		return model.User{}, false
	}
	return s.User, true
}

// Session returns the active session. A session whose token no longer
// validates, e.g. because it expired, is reported as absent.
func (c *Credentials) Session() (Session, bool) {
	if c.session == nil {
		return Session{}, false
	}
	claims, err := ValidateToken(c.secret, c.session.Token)
	if err != nil || claims.Username != c.session.User.Username {
		return Session{}, false
	}
	return *c.session, true
}

// Users returns all registered users ordered by username.
func (c *Credentials) Users() []model.User {
	users := make([]model.User, 0, len(c.users))
	for _, u := range c.users {
		users = append(users, u)
	}
	slices.SortFunc(users, func(a, b model.User) int {
		return cmp.Compare(a.Username, b.Username)
	})
	return users
}

func (c *Credentials) save() error {
	if err := jsonfile.Write(c.cfg.File, c.users, true, 0o600); err != nil {
		return fmt.Errorf("%w: saving users: %w", model.ErrDatabase, err)
	}
	return nil
}
