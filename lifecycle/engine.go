package lifecycle

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jikgwan/companion-api/consts"
	"github.com/jikgwan/companion-api/metrics"
	"github.com/jikgwan/companion-api/policy"
	"github.com/jikgwan/companion-api/schema"
	"github.com/jikgwan/companion-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "lifecycle")
}

// Lifecycle applies the request and proposal transitions
type Lifecycle interface {
	CreateRequest(actor policy.Actor, params CreateRequestParams) (*schema.Request, error)
	UpdateRequest(actor policy.Actor, requestID uint, params UpdateRequestParams) (*schema.Request, error)
	SubmitProposal(actor policy.Actor, requestID uint, params ProposalParams) (*schema.Proposal, error)
	AcceptProposal(actor policy.Actor, proposalID uint) (*schema.Proposal, error)
	RejectProposal(actor policy.Actor, proposalID uint) (*schema.Proposal, error)
	ConfirmTicket(actor policy.Actor, requestID uint) (*schema.Request, error)
	CompleteRequest(actor policy.Actor, requestID uint) (*schema.Request, error)
	CancelRequest(actor policy.Actor, requestID uint) (*schema.Request, error)
}

type CreateRequestParams struct {
	TeamCode        string
	GameDate        string
	NumberOfTickets int
	AccompanyType   schema.AccompanyType
	AdditionalInfo  string
}

type UpdateRequestParams struct {
	NumberOfTickets int
	AccompanyType   schema.AccompanyType
	AdditionalInfo  string
}

type ProposalParams struct {
	SeatType   string
	TotalPrice string
	Message    string
}

// Engine is the store-backed implementation of Lifecycle. Every method runs
// its reads, checks and writes in one store transaction.
type Engine struct {
	store store.MatchingCore
}

func NewEngine(s store.MatchingCore) *Engine {
	return &Engine{store: s}
}

type transition struct {
	from, to schema.RequestStatus
}

// record reports committed transitions once the transaction is done
func record(requestID uint, transitions []transition) {
	for _, t := range transitions {
		metrics.RecordTransition(string(t.from), string(t.to))
		log.WithField("request", requestID).Infof("request status %s -> %s", t.from, t.to)
	}
}

// CreateRequest opens a request for the game a team plays on a date
func (e *Engine) CreateRequest(actor policy.Actor, params CreateRequestParams) (*schema.Request, error) {
	if err := policy.Authorize(actor, policy.Write, policy.SeniorOnly); err != nil {
		return nil, err
	}

	if params.AccompanyType == "" {
		params.AccompanyType = schema.AccompanyTicketOnly
	}
	if err := validateRequestDetails(params.NumberOfTickets, params.AccompanyType); err != nil {
		return nil, err
	}

	params.TeamCode = strings.TrimSpace(params.TeamCode)
	if params.TeamCode == "" {
		return nil, validationError("team is required")
	}
	if _, err := time.Parse(schema.GameDateLayout, params.GameDate); err != nil {
		return nil, validationError("game date must be YYYY-MM-DD")
	}

	var request *schema.Request
	err := e.store.Transaction(func(tx store.MatchingCore) error {
		team, err := tx.GetTeamByCode(params.TeamCode)
		if err != nil {
			return err
		}

		game, err := tx.FindGame(team.ID, params.GameDate)
		if errors.Is(err, store.ErrNotFound) {
			return ErrGameNotScheduled
		} else if err != nil {
			return err
		}

		request = &schema.Request{
			UserID:          actor.UserID(),
			GameID:          game.ID,
			NumberOfTickets: params.NumberOfTickets,
			AccompanyType:   params.AccompanyType,
			AdditionalInfo:  params.AdditionalInfo,
			Status:          schema.RequestWaitingForHelper,
		}
		return tx.CreateRequest(request)
	})
	if err != nil {
		return nil, err
	}

	log.WithField("request", request.ID).Info("request created")
	return e.store.GetRequest(request.ID)
}

// UpdateRequest edits a request that no helper has answered yet
func (e *Engine) UpdateRequest(actor policy.Actor, requestID uint, params UpdateRequestParams) (*schema.Request, error) {
	if params.AccompanyType == "" {
		params.AccompanyType = schema.AccompanyTicketOnly
	}
	if err := validateRequestDetails(params.NumberOfTickets, params.AccompanyType); err != nil {
		return nil, err
	}

	err := e.store.Transaction(func(tx store.MatchingCore) error {
		request, err := tx.GetRequest(requestID)
		if err != nil {
			return err
		}

		if err := policy.Authorize(actor, policy.Write, policy.RequestGate{Request: request}); err != nil {
			return err
		}

		if request.Status != schema.RequestWaitingForHelper {
			return actionNotAllowed(request.Status, "be edited")
		}

		err = tx.UpdateRequestDetails(requestID, schema.RequestWaitingForHelper,
			params.NumberOfTickets, params.AccompanyType, params.AdditionalInfo)
		if errors.Is(err, store.ErrStatusMismatch) {
			return fmt.Errorf("%w: request is no longer %s, cannot be edited", ErrInvalidStateTransition, schema.RequestWaitingForHelper)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	return e.store.GetRequest(requestID)
}

// SubmitProposal records a helper's offer and marks the request as proposed
func (e *Engine) SubmitProposal(actor policy.Actor, requestID uint, params ProposalParams) (*schema.Proposal, error) {
	if err := policy.Authorize(actor, policy.Write, policy.HelperOnly); err != nil {
		return nil, err
	}

	var proposal *schema.Proposal
	var transitions []transition
	err := e.store.Transaction(func(tx store.MatchingCore) error {
		request, err := tx.GetRequest(requestID)
		if err != nil {
			return err
		}

		if !request.Status.AcceptsProposals() {
			return invalidTransition(request.Status, schema.RequestTicketProposed)
		}

		exists, err := tx.HasProposal(requestID, actor.UserID())
		if err != nil {
			return err
		}
		if exists {
			return store.ErrConflict
		}

		proposal = &schema.Proposal{
			RequestID:  requestID,
			HelperID:   actor.UserID(),
			SeatType:   params.SeatType,
			TotalPrice: params.TotalPrice,
			Message:    params.Message,
			Status:     schema.ProposalPending,
		}
		if err := tx.CreateProposal(proposal); err != nil {
			return err
		}

		// re-checks the status in the same statement, so a request that got
		// matched meanwhile rolls the new proposal back
		if err := tx.TransitionRequest(requestID, []schema.RequestStatus{
			schema.RequestWaitingForHelper,
			schema.RequestTicketProposed,
		}, schema.RequestTicketProposed); err != nil {
			return staleAsInvalid(err, request.Status, schema.RequestTicketProposed)
		}

		if request.Status != schema.RequestTicketProposed {
			transitions = append(transitions, transition{request.Status, schema.RequestTicketProposed})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	record(requestID, transitions)
	return e.store.GetProposal(proposal.ID)
}

// AcceptProposal commits a request to one proposal, chosen by id, and rejects
// all of its siblings
func (e *Engine) AcceptProposal(actor policy.Actor, proposalID uint) (*schema.Proposal, error) {
	var requestID uint
	err := e.store.Transaction(func(tx store.MatchingCore) error {
		proposal, request, err := loadProposal(tx, proposalID)
		if err != nil {
			return err
		}
		requestID = request.ID

		if err := policy.Authorize(actor, policy.Write, policy.ProposalGate{Proposal: proposal, Request: request}); err != nil {
			return err
		}

		if !request.Status.CanTransitionTo(schema.RequestHelperMatched) {
			return invalidTransition(request.Status, schema.RequestHelperMatched)
		}
		if proposal.Status != schema.ProposalPending {
			return invalidProposalTransition(proposal.ID, proposal.Status, schema.ProposalAccepted)
		}

		if err := tx.TransitionRequest(request.ID, []schema.RequestStatus{request.Status}, schema.RequestHelperMatched); err != nil {
			return staleAsInvalid(err, request.Status, schema.RequestHelperMatched)
		}

		if err := tx.TransitionProposal(proposal.ID, []schema.ProposalStatus{schema.ProposalPending}, schema.ProposalAccepted); err != nil {
			return staleAsInvalid(err, request.Status, schema.RequestHelperMatched)
		}

		rejected, err := tx.RejectOtherProposals(request.ID, proposal.ID)
		if err != nil {
			return err
		}

		log.WithField("request", request.ID).Debugf("proposal %d accepted, %d rejected", proposal.ID, rejected)
		return nil
	})
	if err != nil {
		return nil, err
	}

	record(requestID, []transition{{schema.RequestTicketProposed, schema.RequestHelperMatched}})
	return e.store.GetProposal(proposalID)
}

// RejectProposal declines a pending proposal. The request status is kept.
func (e *Engine) RejectProposal(actor policy.Actor, proposalID uint) (*schema.Proposal, error) {
	err := e.store.Transaction(func(tx store.MatchingCore) error {
		proposal, request, err := loadProposal(tx, proposalID)
		if err != nil {
			return err
		}

		if err := policy.Authorize(actor, policy.Write, policy.ProposalGate{Proposal: proposal, Request: request}); err != nil {
			return err
		}

		if request.Status.IsTerminal() {
			return actionNotAllowed(request.Status, "reject its proposals")
		}
		if proposal.Status != schema.ProposalPending {
			return invalidProposalTransition(proposal.ID, proposal.Status, schema.ProposalRejected)
		}

		err = tx.TransitionProposal(proposal.ID, []schema.ProposalStatus{schema.ProposalPending}, schema.ProposalRejected)
		if errors.Is(err, store.ErrStatusMismatch) {
			return invalidProposalTransition(proposal.ID, proposal.Status, schema.ProposalRejected)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	return e.store.GetProposal(proposalID)
}

// ConfirmTicket locks the seat of the proposal accepted earlier. It never
// picks a proposal on its own.
func (e *Engine) ConfirmTicket(actor policy.Actor, requestID uint) (*schema.Request, error) {
	err := e.store.Transaction(func(tx store.MatchingCore) error {
		request, err := ownedRequest(tx, actor, requestID)
		if err != nil {
			return err
		}

		if !request.Status.CanTransitionTo(schema.RequestSeatConfirmed) {
			return invalidTransition(request.Status, schema.RequestSeatConfirmed)
		}

		if _, err := tx.GetAcceptedProposal(requestID); errors.Is(err, store.ErrNotFound) {
			return invalidTransition(request.Status, schema.RequestSeatConfirmed)
		} else if err != nil {
			return err
		}

		err = tx.TransitionRequest(requestID, []schema.RequestStatus{request.Status}, schema.RequestSeatConfirmed)
		return staleAsInvalid(err, request.Status, schema.RequestSeatConfirmed)
	})
	if err != nil {
		return nil, err
	}

	record(requestID, []transition{{schema.RequestHelperMatched, schema.RequestSeatConfirmed}})
	return e.store.GetRequest(requestID)
}

// CompleteRequest closes a confirmed request and credits mileage to the
// requester and to the helper of the accepted proposal. It is the only place
// mileage is ever credited.
func (e *Engine) CompleteRequest(actor policy.Actor, requestID uint) (*schema.Request, error) {
	var credits []schema.MileageEntry
	err := e.store.Transaction(func(tx store.MatchingCore) error {
		credits = nil

		request, err := ownedRequest(tx, actor, requestID)
		if err != nil {
			return err
		}

		if !request.Status.CanTransitionTo(schema.RequestCompleted) {
			return invalidTransition(request.Status, schema.RequestCompleted)
		}

		if err := tx.TransitionRequest(requestID, []schema.RequestStatus{request.Status}, schema.RequestCompleted); err != nil {
			return staleAsInvalid(err, request.Status, schema.RequestCompleted)
		}

		credits = append(credits, schema.MileageEntry{
			RequestID: requestID,
			UserID:    request.UserID,
			Points:    consts.REQUESTER_COMPLETION_MILEAGE,
			Reason:    consts.MILEAGE_REASON_REQUEST_COMPLETED,
		})

		accepted, err := tx.GetAcceptedProposal(requestID)
		switch {
		case errors.Is(err, store.ErrNotFound):
		case err != nil:
			return err
		default:
			if err := tx.TransitionProposal(accepted.ID, []schema.ProposalStatus{schema.ProposalAccepted}, schema.ProposalCompleted); err != nil {
				return staleAsInvalid(err, request.Status, schema.RequestCompleted)
			}

			credits = append(credits, schema.MileageEntry{
				RequestID: requestID,
				UserID:    accepted.HelperID,
				Points:    consts.HELPER_COMPLETION_MILEAGE,
				Reason:    consts.MILEAGE_REASON_PROPOSAL_COMPLETED,
			})
		}

		for i := range credits {
			if err := tx.CreditMileage(&credits[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	record(requestID, []transition{{schema.RequestSeatConfirmed, schema.RequestCompleted}})
	for _, c := range credits {
		role := string(schema.RoleSenior)
		if c.Reason == consts.MILEAGE_REASON_PROPOSAL_COMPLETED {
			role = string(schema.RoleHelper)
		}
		metrics.RecordMileage(role, c.Points)
	}

	return e.store.GetRequest(requestID)
}

// CancelRequest withdraws a request from any non-terminal status and rejects
// every open proposal
func (e *Engine) CancelRequest(actor policy.Actor, requestID uint) (*schema.Request, error) {
	var from schema.RequestStatus
	err := e.store.Transaction(func(tx store.MatchingCore) error {
		request, err := ownedRequest(tx, actor, requestID)
		if err != nil {
			return err
		}
		from = request.Status

		if !request.Status.CanTransitionTo(schema.RequestCancelled) {
			return invalidTransition(request.Status, schema.RequestCancelled)
		}

		if err := tx.TransitionRequest(requestID, []schema.RequestStatus{request.Status}, schema.RequestCancelled); err != nil {
			return staleAsInvalid(err, request.Status, schema.RequestCancelled)
		}

		_, err = tx.RejectOtherProposals(requestID, 0)
		return err
	})
	if err != nil {
		return nil, err
	}

	record(requestID, []transition{{from, schema.RequestCancelled}})
	return e.store.GetRequest(requestID)
}

// ownedRequest loads a request the actor is allowed to write
func ownedRequest(tx store.MatchingCore, actor policy.Actor, requestID uint) (*schema.Request, error) {
	request, err := tx.GetRequest(requestID)
	if err != nil {
		return nil, err
	}

	if err := policy.Authorize(actor, policy.Write, policy.RequestGate{Request: request}); err != nil {
		return nil, err
	}

	return request, nil
}

func loadProposal(tx store.MatchingCore, proposalID uint) (*schema.Proposal, *schema.Request, error) {
	proposal, err := tx.GetProposal(proposalID)
	if err != nil {
		return nil, nil, err
	}

	request, err := tx.GetRequest(proposal.RequestID)
	if err != nil {
		return nil, nil, err
	}

	return proposal, request, nil
}

func validateRequestDetails(numberOfTickets int, accompanyType schema.AccompanyType) error {
	if numberOfTickets < schema.MinTicketsPerRequest || numberOfTickets > schema.MaxTicketsPerRequest {
		return validationError("number of tickets must be between %d and %d",
			schema.MinTicketsPerRequest, schema.MaxTicketsPerRequest)
	}
	if !accompanyType.Valid() {
		return validationError("unknown accompany type %q", accompanyType)
	}
	return nil
}
