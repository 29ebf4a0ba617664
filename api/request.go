package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jikgwan/companion-api/lifecycle"
	"github.com/jikgwan/companion-api/policy"
	"github.com/jikgwan/companion-api/schema"
	"github.com/jikgwan/companion-api/store"
)

// createRequest is the API for a senior to ask for tickets of a game
func (s *Server) createRequest(c *gin.Context) {
	var params struct {
		TeamID          string               `json:"teamId"`
		GameDate        string               `json:"gameDate"`
		NumberOfTickets int                  `json:"numberOfTickets"`
		AccompanyType   schema.AccompanyType `json:"accompanyType"`
		AdditionalInfo  string               `json:"additionalInfo"`
	}

	if err := c.ShouldBindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	request, err := s.lifecycle.CreateRequest(actorOf(c), lifecycle.CreateRequestParams{
		TeamCode:        params.TeamID,
		GameDate:        params.GameDate,
		NumberOfTickets: params.NumberOfTickets,
		AccompanyType:   params.AccompanyType,
		AdditionalInfo:  params.AdditionalInfo,
	})
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": request})
}

// listOpenRequests is the helper listing of requests still waiting for a helper
func (s *Server) listOpenRequests(c *gin.Context) {
	if err := policy.Authorize(actorOf(c), policy.Read, policy.HelperOnly); shouldInterupt(err, c) {
		return
	}

	var params struct {
		GameDate      string               `form:"gameDate"`
		Team          string               `form:"team"`
		Stadium       string               `form:"stadium"`
		AccompanyType schema.AccompanyType `form:"accompanyType"`
	}

	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if params.AccompanyType != "" && !params.AccompanyType.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	requests, err := s.store.ListOpenRequests(store.RequestFilter{
		GameDate:      params.GameDate,
		Team:          params.Team,
		Stadium:       params.Stadium,
		AccompanyType: params.AccompanyType,
	})
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": requests})
}

// readableRequest loads the request of the path and checks the actor may read it
func (s *Server) readableRequest(c *gin.Context) (*schema.Request, bool) {
	id, ok := pathID(c, "requestID")
	if !ok {
		return nil, false
	}

	request, err := s.store.GetRequest(id)
	if shouldInterupt(err, c) {
		return nil, false
	}

	if err := policy.Authorize(actorOf(c), policy.Read, policy.RequestGate{Request: request}); shouldInterupt(err, c) {
		return nil, false
	}

	return request, true
}

func (s *Server) requestDetail(c *gin.Context) {
	request, ok := s.readableRequest(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": request})
}

// updateRequest edits a request no helper has answered yet
func (s *Server) updateRequest(c *gin.Context) {
	id, ok := pathID(c, "requestID")
	if !ok {
		return
	}

	var params struct {
		NumberOfTickets int                  `json:"numberOfTickets"`
		AccompanyType   schema.AccompanyType `json:"accompanyType"`
		AdditionalInfo  string               `json:"additionalInfo"`
	}

	if err := c.ShouldBindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	request, err := s.lifecycle.UpdateRequest(actorOf(c), id, lifecycle.UpdateRequestParams{
		NumberOfTickets: params.NumberOfTickets,
		AccompanyType:   params.AccompanyType,
		AdditionalInfo:  params.AdditionalInfo,
	})
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": request})
}

// proposedTicket returns the proposal a request is committed to
func (s *Server) proposedTicket(c *gin.Context) {
	request, ok := s.readableRequest(c)
	if !ok {
		return
	}

	proposal, err := s.store.GetAcceptedProposal(request.ID)
	if shouldInterupt(err, c) {
		return
	}

	if err := policy.Authorize(actorOf(c), policy.Read, policy.ProposalGate{
		Proposal: proposal,
		Request:  request,
	}); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": gin.H{
			"request":  request,
			"proposal": proposal,
		},
	})
}

func (s *Server) confirmTicket(c *gin.Context) {
	s.transitRequest(c, s.lifecycle.ConfirmTicket)
}

func (s *Server) completeRequest(c *gin.Context) {
	s.transitRequest(c, s.lifecycle.CompleteRequest)
}

func (s *Server) cancelRequest(c *gin.Context) {
	s.transitRequest(c, s.lifecycle.CancelRequest)
}

// transitRequest runs a request transition of the path request
func (s *Server) transitRequest(c *gin.Context, transit func(policy.Actor, uint) (*schema.Request, error)) {
	id, ok := pathID(c, "requestID")
	if !ok {
		return
	}

	request, err := transit(actorOf(c), id)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": request})
}
