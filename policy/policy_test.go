package policy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jikgwan/companion-api/schema"
)

func TestActorOf(t *testing.T) {
	a, err := ActorOf(&schema.User{ID: 1, Role: schema.RoleSenior})
	assert.NoError(t, err)
	assert.Equal(t, Senior{ID: 1}, a)

	a, err = ActorOf(&schema.User{ID: 2, Role: schema.RoleHelper})
	assert.NoError(t, err)
	assert.Equal(t, Helper{ID: 2}, a)

	_, err = ActorOf(&schema.User{ID: 3, Role: "admin"})
	assert.True(t, errors.Is(err, ErrForbidden))
}

func TestRoleGate(t *testing.T) {
	assert.NoError(t, Authorize(Senior{ID: 1}, Write, SeniorOnly))
	assert.NoError(t, Authorize(Helper{ID: 2}, Write, HelperOnly))

	err := Authorize(Helper{ID: 2}, Write, SeniorOnly)
	assert.True(t, errors.Is(err, ErrForbidden))

	err = Authorize(Senior{ID: 1}, Read, HelperOnly)
	assert.True(t, errors.Is(err, ErrForbidden))
}

func TestRequestGate(t *testing.T) {
	req := &schema.Request{ID: 10, UserID: 1}
	gate := RequestGate{Request: req}

	assert.NoError(t, Authorize(Senior{ID: 1}, Write, gate))
	assert.NoError(t, Authorize(Senior{ID: 1}, Read, gate))
	assert.NoError(t, Authorize(Helper{ID: 5}, Read, gate))

	err := Authorize(Helper{ID: 5}, Write, gate)
	assert.True(t, errors.Is(err, ErrUnauthorized))

	err = Authorize(Senior{ID: 2}, Read, gate)
	assert.True(t, errors.Is(err, ErrUnauthorized))

	err = Authorize(Senior{ID: 2}, Write, gate)
	assert.True(t, errors.Is(err, ErrUnauthorized))
}

func TestProposalGate(t *testing.T) {
	req := &schema.Request{ID: 10, UserID: 1}
	p := &schema.Proposal{ID: 20, RequestID: 10, HelperID: 5}
	gate := ProposalGate{Proposal: p, Request: req}

	assert.NoError(t, Authorize(Senior{ID: 1}, Write, gate))
	assert.NoError(t, Authorize(Helper{ID: 5}, Read, gate))

	err := Authorize(Helper{ID: 5}, Write, gate)
	assert.True(t, errors.Is(err, ErrUnauthorized))

	err = Authorize(Helper{ID: 6}, Read, gate)
	assert.True(t, errors.Is(err, ErrUnauthorized))
}

func TestAuthorizeChecksEveryGate(t *testing.T) {
	req := &schema.Request{ID: 10, UserID: 2}

	// a helper that happens to carry the owner id still fails the role gate
	err := Authorize(Helper{ID: 2}, Write, SeniorOnly, RequestGate{Request: req})
	assert.True(t, errors.Is(err, ErrForbidden))

	err = Authorize(nil, Read)
	assert.True(t, errors.Is(err, ErrUnauthorized))
}
