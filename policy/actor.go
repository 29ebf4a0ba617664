package policy

import (
	"fmt"

	"github.com/jikgwan/companion-api/schema"
)

// Actor is the authenticated user a decision is made for. It is either a
// Senior or a Helper.
type Actor interface {
	UserID() uint
	Role() schema.Role
	actor()
}

// Senior opens requests and owns them
type Senior struct {
	ID uint
}

func (s Senior) UserID() uint      { return s.ID }
func (s Senior) Role() schema.Role { return schema.RoleSenior }
func (Senior) actor()              {}

// Helper answers requests with proposals
type Helper struct {
	ID uint
}

func (h Helper) UserID() uint      { return h.ID }
func (h Helper) Role() schema.Role { return schema.RoleHelper }
func (Helper) actor()              {}

// ActorOf builds the actor variant of a stored user
func ActorOf(u *schema.User) (Actor, error) {
	switch u.Role {
	case schema.RoleSenior:
		return Senior{ID: u.ID}, nil
	case schema.RoleHelper:
		return Helper{ID: u.ID}, nil
	default:
		return nil, fmt.Errorf("%w: unknown role %q", ErrForbidden, u.Role)
	}
}
