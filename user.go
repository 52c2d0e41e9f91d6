package ledger

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Role is the coarse access level of a local user.
type Role int

const (
	// RoleStaff users hold only the capabilities their flags grant.
	RoleStaff Role = iota
	// RoleAdmin users hold every capability regardless of their flags.
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleStaff:
		return "staff"
	case RoleAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// ParseRole parses a string into a Role.
func ParseRole(s string) (Role, error) {
	switch s {
	case "staff":
		return RoleStaff, nil
	case "admin":
		return RoleAdmin, nil
	default:
		return 0, fmt.Errorf("unknown role: %q", s)
	}
}

func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *Role) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	role, err := ParseRole(str)
	if err != nil {
		return err
	}
	*r = role
	return nil
}

// Capability is one gated feature of the application. The closed set
// replaces lookups of permission flags by feature-name string.
type Capability int

const (
	CapInbound Capability = iota
	CapOutbound
	CapReports
	CapUsers
)

func (c Capability) String() string {
	switch c {
	case CapInbound:
		return "inbound"
	case CapOutbound:
		return "outbound"
	case CapReports:
		return "reports"
	case CapUsers:
		return "users"
	default:
		return "unknown"
	}
}

// Permissions are the per-feature flags of a staff user.
type Permissions struct {
	Inbound  bool `json:"inbound"`
	Outbound bool `json:"outbound"`
	Reports  bool `json:"reports"`
	Users    bool `json:"users"`
}

// User is a locally authenticated operator of the application.
type User struct {
	ID           string      `json:"id"`
	Username     string      `json:"username"`
	PasswordHash string      `json:"passwordHash"`
	Role         Role        `json:"role"`
	Permissions  Permissions `json:"permissions"`
}

// Can reports whether the user may use the gated feature. Admins hold
// every capability; staff are gated by their flags.
func (u User) Can(c Capability) bool {
	if u.Role == RoleAdmin {
		return true
	}
	switch c {
	case CapInbound:
		return u.Permissions.Inbound
	case CapOutbound:
		return u.Permissions.Outbound
	case CapReports:
		return u.Permissions.Reports
	case CapUsers:
		return u.Permissions.Users
	default:
		return false
	}
}

// AddUser creates a user with a fresh id, hashes the password with bcrypt,
// and persists the collection. The plain password is never stored.
func (s *Store) AddUser(username, password string, role Role, perms Permissions) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("could not hash password: %w", err)
	}
	u := User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		Permissions:  perms,
	}
	s.users = append(s.users, u)
	return u, saveCollection(s.blobs, keyUsers, s.users)
}

// Users returns the users in creation order.
func (s *Store) Users() []User {
	users := make([]User, len(s.users))
	copy(users, s.users)
	return users
}

// Authenticate checks a username/password pair against the user
// collection and returns the matching user. The comparison is bcrypt's
// constant-time check. On a fresh store with no users every login fails;
// the caller is expected to bootstrap a first admin via AddUser.
func (s *Store) Authenticate(username, password string) (User, bool) {
	for _, u := range s.users {
		if u.Username != username {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			return User{}, false
		}
		return u, true
	}
	return User{}, false
}
