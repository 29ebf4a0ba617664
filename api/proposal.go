package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jikgwan/companion-api/lifecycle"
	"github.com/jikgwan/companion-api/policy"
	"github.com/jikgwan/companion-api/schema"
)

// submitProposal is the API for a helper to offer tickets for a request
func (s *Server) submitProposal(c *gin.Context) {
	id, ok := pathID(c, "requestID")
	if !ok {
		return
	}

	var params struct {
		SeatType   string `json:"seatType"`
		TotalPrice string `json:"totalPrice"`
		Message    string `json:"message"`
	}

	if err := c.ShouldBindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	proposal, err := s.lifecycle.SubmitProposal(actorOf(c), id, lifecycle.ProposalParams{
		SeatType:   params.SeatType,
		TotalPrice: params.TotalPrice,
		Message:    params.Message,
	})
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": proposal})
}

// listRequestProposals returns the proposals of a request the actor may read.
// The owner sees all of them and a helper only its own.
func (s *Server) listRequestProposals(c *gin.Context) {
	request, ok := s.readableRequest(c)
	if !ok {
		return
	}

	proposals, err := s.store.ListProposalsByRequest(request.ID)
	if shouldInterupt(err, c) {
		return
	}

	actor := actorOf(c)
	readable := make([]schema.Proposal, 0, len(proposals))
	for i := range proposals {
		gate := policy.ProposalGate{Proposal: &proposals[i], Request: request}
		if policy.Authorize(actor, policy.Read, gate) == nil {
			readable = append(readable, proposals[i])
		}
	}

	c.JSON(http.StatusOK, gin.H{"result": readable})
}

func (s *Server) proposalDetail(c *gin.Context) {
	id, ok := pathID(c, "proposalID")
	if !ok {
		return
	}

	proposal, err := s.store.GetProposal(id)
	if shouldInterupt(err, c) {
		return
	}

	request, err := s.store.GetRequest(proposal.RequestID)
	if shouldInterupt(err, c) {
		return
	}

	if err := policy.Authorize(actorOf(c), policy.Read, policy.ProposalGate{
		Proposal: proposal,
		Request:  request,
	}); shouldInterupt(err, c) {
		return
	}

	proposal.Request = request
	c.JSON(http.StatusOK, gin.H{"result": proposal})
}

func (s *Server) acceptProposal(c *gin.Context) {
	s.transitProposal(c, s.lifecycle.AcceptProposal)
}

func (s *Server) rejectProposal(c *gin.Context) {
	s.transitProposal(c, s.lifecycle.RejectProposal)
}

// transitProposal runs a proposal transition of the path proposal
func (s *Server) transitProposal(c *gin.Context, transit func(policy.Actor, uint) (*schema.Proposal, error)) {
	id, ok := pathID(c, "proposalID")
	if !ok {
		return
	}

	proposal, err := transit(actorOf(c), id)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": proposal})
}
