package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestStatusForwardEdges(t *testing.T) {
	assert.True(t, RequestWaitingForHelper.CanTransitionTo(RequestTicketProposed))
	assert.True(t, RequestTicketProposed.CanTransitionTo(RequestHelperMatched))
	assert.True(t, RequestHelperMatched.CanTransitionTo(RequestSeatConfirmed))
	assert.True(t, RequestSeatConfirmed.CanTransitionTo(RequestCompleted))

	assert.False(t, RequestTicketProposed.CanTransitionTo(RequestCompleted))
	assert.False(t, RequestWaitingForHelper.CanTransitionTo(RequestHelperMatched))
	assert.False(t, RequestHelperMatched.CanTransitionTo(RequestTicketProposed))
	assert.False(t, RequestSeatConfirmed.CanTransitionTo(RequestWaitingForHelper))
	assert.False(t, RequestTicketProposed.CanTransitionTo(RequestTicketProposed))
}

func TestRequestStatusCancellation(t *testing.T) {
	for _, s := range NonTerminalRequestStatuses() {
		assert.True(t, s.CanTransitionTo(RequestCancelled), string(s))
		assert.False(t, s.IsTerminal(), string(s))
	}

	for _, s := range []RequestStatus{RequestCompleted, RequestCancelled} {
		assert.True(t, s.IsTerminal())
		assert.False(t, s.CanTransitionTo(RequestCancelled))
		assert.False(t, s.CanTransitionTo(RequestWaitingForHelper))
	}
}

func TestRequestStatusValid(t *testing.T) {
	assert.True(t, RequestSeatConfirmed.Valid())
	assert.False(t, RequestStatus("pending").Valid())
	assert.False(t, RequestStatus("").Valid())
}

func TestRequestStatusAcceptsProposals(t *testing.T) {
	assert.True(t, RequestWaitingForHelper.AcceptsProposals())
	assert.True(t, RequestTicketProposed.AcceptsProposals())
	assert.False(t, RequestHelperMatched.AcceptsProposals())
	assert.False(t, RequestCancelled.AcceptsProposals())
}

func TestRoleAndAccompanyType(t *testing.T) {
	assert.True(t, RoleSenior.Valid())
	assert.True(t, RoleHelper.Valid())
	assert.False(t, Role("admin").Valid())

	assert.True(t, AccompanyWith.Valid())
	assert.True(t, AccompanyTicketOnly.Valid())
	assert.False(t, AccompanyType("alone").Valid())
}
