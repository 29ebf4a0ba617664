package policy

import (
	"fmt"

	"github.com/jikgwan/companion-api/schema"
)

var (
	// ErrForbidden is returned when the role of an actor may not perform an action
	ErrForbidden = fmt.Errorf("this action is not allowed for your role")
	// ErrUnauthorized is returned when an actor acts on a resource it does not own
	ErrUnauthorized = fmt.Errorf("you are not allowed to access this resource")
)

type Capability int

const (
	Read Capability = iota
	Write
)

func (c Capability) String() string {
	if c == Write {
		return "write"
	}
	return "read"
}

// Gate is a single access decision. Gates are pure and never touch storage.
type Gate interface {
	Check(actor Actor, capability Capability) error
}

// Authorize passes only if every gate allows the actor
func Authorize(actor Actor, capability Capability, gates ...Gate) error {
	if actor == nil {
		return ErrUnauthorized
	}

	for _, g := range gates {
		if err := g.Check(actor, capability); err != nil {
			return err
		}
	}
	return nil
}

// RoleGate allows actors whose role is in Roles, whatever the capability
type RoleGate struct {
	Roles []schema.Role
}

func (g RoleGate) Check(actor Actor, capability Capability) error {
	for _, r := range g.Roles {
		if actor.Role() == r {
			return nil
		}
	}
	return fmt.Errorf("%w: %s cannot %s", ErrForbidden, actor.Role(), capability)
}

// SeniorOnly and HelperOnly are the role gates used by the lifecycle
var (
	SeniorOnly = RoleGate{Roles: []schema.Role{schema.RoleSenior}}
	HelperOnly = RoleGate{Roles: []schema.Role{schema.RoleHelper}}
)

// RequestGate lets the owner read and write a request, and any helper read it
type RequestGate struct {
	Request *schema.Request
}

func (g RequestGate) Check(actor Actor, capability Capability) error {
	if g.Request.UserID == actor.UserID() {
		return nil
	}

	if capability == Read {
		if _, ok := actor.(Helper); ok {
			return nil
		}
	}

	return fmt.Errorf("%w: request %d", ErrUnauthorized, g.Request.ID)
}

// ProposalGate lets the owner of the parent request read and write a
// proposal, and the helper who wrote it read it
type ProposalGate struct {
	Proposal *schema.Proposal
	Request  *schema.Request
}

func (g ProposalGate) Check(actor Actor, capability Capability) error {
	if g.Request != nil && g.Request.UserID == actor.UserID() {
		return nil
	}

	if capability == Read && g.Proposal.HelperID == actor.UserID() {
		return nil
	}

	return fmt.Errorf("%w: proposal %d", ErrUnauthorized, g.Proposal.ID)
}
