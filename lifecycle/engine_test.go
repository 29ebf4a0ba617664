package lifecycle

import (
	"errors"
	"testing"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/suite"

	"github.com/jikgwan/companion-api/policy"
	"github.com/jikgwan/companion-api/schema"
	"github.com/jikgwan/companion-api/store"
)

const gameDate = "2024-05-01"

type EngineTestSuite struct {
	suite.Suite
	db     *gorm.DB
	store  *store.MatchingStore
	engine *Engine

	senior      policy.Senior
	otherSenior policy.Senior
	helper      policy.Helper
	otherHelper policy.Helper
}

func TestEngine(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupTest() {
	db, err := gorm.Open("sqlite3", ":memory:")
	if err != nil {
		s.T().Fatalf("open sqlite with error: %s", err)
	}
	db.DB().SetMaxOpenConns(1)

	if err := store.Migrate(db); err != nil {
		s.T().Fatalf("migrate with error: %s", err)
	}

	s.db = db
	s.store = store.NewMatchingStore(db)
	s.engine = NewEngine(s.store)

	if err := s.loadFixtures(); err != nil {
		s.T().Fatal(err)
	}
}

func (s *EngineTestSuite) TearDownTest() {
	s.db.Close()
}

func (s *EngineTestSuite) loadFixtures() error {
	lg := schema.Team{Code: "lg", Name: "LG Twins", Stadium: "Jamsil"}
	doosan := schema.Team{Code: "doosan", Name: "Doosan Bears", Stadium: "Jamsil"}
	kia := schema.Team{Code: "kia", Name: "KIA Tigers", Stadium: "Gwangju"}
	for _, t := range []*schema.Team{&lg, &doosan, &kia} {
		if err := s.store.CreateTeam(t); err != nil {
			return err
		}
	}

	if err := s.store.CreateGame(&schema.Game{
		Date:       gameDate,
		Time:       "18:30",
		Stadium:    "Jamsil",
		HomeTeamID: lg.ID,
		AwayTeamID: doosan.ID,
	}); err != nil {
		return err
	}

	users := []struct {
		phone string
		role  schema.Role
	}{
		{"01011112222", schema.RoleSenior},
		{"01033334444", schema.RoleSenior},
		{"01055556666", schema.RoleHelper},
		{"01077778888", schema.RoleHelper},
	}

	ids := make([]uint, 0, len(users))
	for _, u := range users {
		user := schema.User{Phone: u.phone, Name: u.phone, Role: u.role, PasswordHash: "x"}
		if err := s.store.CreateAccount(&user, &schema.Profile{}); err != nil {
			return err
		}
		ids = append(ids, user.ID)
	}

	s.senior = policy.Senior{ID: ids[0]}
	s.otherSenior = policy.Senior{ID: ids[1]}
	s.helper = policy.Helper{ID: ids[2]}
	s.otherHelper = policy.Helper{ID: ids[3]}
	return nil
}

func (s *EngineTestSuite) newRequest() *schema.Request {
	r, err := s.engine.CreateRequest(s.senior, CreateRequestParams{
		TeamCode:        "doosan",
		GameDate:        gameDate,
		NumberOfTickets: 2,
		AccompanyType:   schema.AccompanyWith,
		AdditionalInfo:  "near the aisle please",
	})
	s.Require().NoError(err)
	return r
}

func (s *EngineTestSuite) propose(h policy.Helper, requestID uint) *schema.Proposal {
	p, err := s.engine.SubmitProposal(h, requestID, ProposalParams{
		SeatType:   "blue",
		TotalPrice: "30000",
		Message:    "I can go with you",
	})
	s.Require().NoError(err)
	return p
}

func (s *EngineTestSuite) mileage(id uint) int {
	u, err := s.store.GetUser(id)
	s.Require().NoError(err)
	return u.MileagePoints
}

func (s *EngineTestSuite) TestCreateRequest() {
	r := s.newRequest()

	s.Equal(schema.RequestWaitingForHelper, r.Status)
	s.Equal(s.senior.ID, r.UserID)
	s.Equal(2, r.NumberOfTickets)
	s.Equal("lg", r.Game.HomeTeam.Code)
	s.Equal("doosan", r.Game.AwayTeam.Code)
}

func (s *EngineTestSuite) TestCreateRequestDefaultsToTicketOnly() {
	r, err := s.engine.CreateRequest(s.senior, CreateRequestParams{
		TeamCode:        "lg",
		GameDate:        gameDate,
		NumberOfTickets: 1,
	})
	s.Require().NoError(err)
	s.Equal(schema.AccompanyTicketOnly, r.AccompanyType)
}

func (s *EngineTestSuite) TestCreateRequestValidation() {
	cases := []CreateRequestParams{
		{TeamCode: "lg", GameDate: gameDate, NumberOfTickets: 0},
		{TeamCode: "lg", GameDate: gameDate, NumberOfTickets: 5},
		{TeamCode: "lg", GameDate: gameDate, NumberOfTickets: 1, AccompanyType: "carpool"},
		{TeamCode: "lg", GameDate: "05/01/2024", NumberOfTickets: 1},
		{TeamCode: " ", GameDate: gameDate, NumberOfTickets: 1},
	}

	for _, c := range cases {
		_, err := s.engine.CreateRequest(s.senior, c)
		s.True(errors.Is(err, ErrValidation), "params %+v", c)
	}
}

func (s *EngineTestSuite) TestCreateRequestWithoutGame() {
	_, err := s.engine.CreateRequest(s.senior, CreateRequestParams{
		TeamCode:        "kia",
		GameDate:        gameDate,
		NumberOfTickets: 1,
	})
	s.True(errors.Is(err, ErrGameNotScheduled))

	_, err = s.engine.CreateRequest(s.senior, CreateRequestParams{
		TeamCode:        "unknown",
		GameDate:        gameDate,
		NumberOfTickets: 1,
	})
	s.True(errors.Is(err, store.ErrNotFound))
}

func (s *EngineTestSuite) TestCreateRequestByHelper() {
	_, err := s.engine.CreateRequest(s.helper, CreateRequestParams{
		TeamCode:        "lg",
		GameDate:        gameDate,
		NumberOfTickets: 1,
	})
	s.True(errors.Is(err, policy.ErrForbidden))
}

func (s *EngineTestSuite) TestUpdateRequest() {
	r := s.newRequest()

	updated, err := s.engine.UpdateRequest(s.senior, r.ID, UpdateRequestParams{
		NumberOfTickets: 3,
		AccompanyType:   schema.AccompanyTicketOnly,
		AdditionalInfo:  "any seat",
	})
	s.Require().NoError(err)
	s.Equal(3, updated.NumberOfTickets)
	s.Equal(schema.AccompanyTicketOnly, updated.AccompanyType)
	s.Equal("any seat", updated.AdditionalInfo)

	_, err = s.engine.UpdateRequest(s.otherSenior, r.ID, UpdateRequestParams{NumberOfTickets: 1})
	s.True(errors.Is(err, policy.ErrUnauthorized))

	s.propose(s.helper, r.ID)

	_, err = s.engine.UpdateRequest(s.senior, r.ID, UpdateRequestParams{NumberOfTickets: 1})
	s.Require().True(errors.Is(err, ErrInvalidStateTransition))
	s.Contains(err.Error(), "request is TICKET_PROPOSED, cannot be edited")
}

func (s *EngineTestSuite) TestFullLifecycle() {
	r := s.newRequest()

	first := s.propose(s.helper, r.ID)
	second := s.propose(s.otherHelper, r.ID)
	s.Equal(schema.ProposalPending, first.Status)

	r, err := s.store.GetRequest(r.ID)
	s.Require().NoError(err)
	s.Equal(schema.RequestTicketProposed, r.Status)

	accepted, err := s.engine.AcceptProposal(s.senior, first.ID)
	s.Require().NoError(err)
	s.Equal(schema.ProposalAccepted, accepted.Status)

	sibling, err := s.store.GetProposal(second.ID)
	s.Require().NoError(err)
	s.Equal(schema.ProposalRejected, sibling.Status)

	r, err = s.engine.ConfirmTicket(s.senior, r.ID)
	s.Require().NoError(err)
	s.Equal(schema.RequestSeatConfirmed, r.Status)

	r, err = s.engine.CompleteRequest(s.senior, r.ID)
	s.Require().NoError(err)
	s.Equal(schema.RequestCompleted, r.Status)

	done, err := s.store.GetProposal(first.ID)
	s.Require().NoError(err)
	s.Equal(schema.ProposalCompleted, done.Status)

	s.Equal(10, s.mileage(s.senior.ID))
	s.Equal(20, s.mileage(s.helper.ID))
	s.Equal(0, s.mileage(s.otherHelper.ID))

	seniorStats, err := s.store.SeniorStats(s.senior.ID)
	s.Require().NoError(err)
	s.Equal(1, seniorStats.TotalRequests)
	s.Equal(1, seniorStats.CompletedRequests)
	s.Equal(0, seniorStats.InProgressRequests)

	helperStats, err := s.store.HelperStats(s.helper.ID)
	s.Require().NoError(err)
	s.Equal(1, helperStats.TotalProposals)
	s.Equal(1, helperStats.CompletedProposals)
	s.Equal(20, helperStats.MileagePoints)
}

func (s *EngineTestSuite) TestSubmitProposalTwice() {
	r := s.newRequest()
	s.propose(s.helper, r.ID)

	_, err := s.engine.SubmitProposal(s.helper, r.ID, ProposalParams{SeatType: "red"})
	s.True(errors.Is(err, store.ErrConflict))
}

func (s *EngineTestSuite) TestSubmitProposalBySenior() {
	r := s.newRequest()

	_, err := s.engine.SubmitProposal(s.otherSenior, r.ID, ProposalParams{})
	s.True(errors.Is(err, policy.ErrForbidden))
}

func (s *EngineTestSuite) TestSubmitProposalAfterMatch() {
	r := s.newRequest()
	p := s.propose(s.helper, r.ID)

	_, err := s.engine.AcceptProposal(s.senior, p.ID)
	s.Require().NoError(err)

	_, err = s.engine.SubmitProposal(s.otherHelper, r.ID, ProposalParams{})
	s.True(errors.Is(err, ErrInvalidStateTransition))

	has, err := s.store.HasProposal(r.ID, s.otherHelper.ID)
	s.Require().NoError(err)
	s.False(has)
}

func (s *EngineTestSuite) TestAcceptProposalAccess() {
	r := s.newRequest()
	p := s.propose(s.helper, r.ID)

	_, err := s.engine.AcceptProposal(s.otherSenior, p.ID)
	s.True(errors.Is(err, policy.ErrUnauthorized))

	_, err = s.engine.AcceptProposal(s.helper, p.ID)
	s.True(errors.Is(err, policy.ErrUnauthorized))

	_, err = s.engine.AcceptProposal(s.senior, 9999)
	s.True(errors.Is(err, store.ErrNotFound))
}

func (s *EngineTestSuite) TestAcceptProposalTwice() {
	r := s.newRequest()
	first := s.propose(s.helper, r.ID)
	second := s.propose(s.otherHelper, r.ID)

	_, err := s.engine.AcceptProposal(s.senior, first.ID)
	s.Require().NoError(err)

	_, err = s.engine.AcceptProposal(s.senior, second.ID)
	s.True(errors.Is(err, ErrInvalidStateTransition))

	_, err = s.engine.AcceptProposal(s.senior, first.ID)
	s.True(errors.Is(err, ErrInvalidStateTransition))

	accepted, err := s.store.GetAcceptedProposal(r.ID)
	s.Require().NoError(err)
	s.Equal(first.ID, accepted.ID)
}

func (s *EngineTestSuite) TestRejectProposal() {
	r := s.newRequest()
	p := s.propose(s.helper, r.ID)

	rejected, err := s.engine.RejectProposal(s.senior, p.ID)
	s.Require().NoError(err)
	s.Equal(schema.ProposalRejected, rejected.Status)

	r, err = s.store.GetRequest(r.ID)
	s.Require().NoError(err)
	s.Equal(schema.RequestTicketProposed, r.Status)

	_, err = s.engine.RejectProposal(s.senior, p.ID)
	s.True(errors.Is(err, ErrInvalidStateTransition))

	_, err = s.engine.AcceptProposal(s.senior, p.ID)
	s.True(errors.Is(err, ErrInvalidStateTransition))
}

func (s *EngineTestSuite) TestConfirmWithoutAcceptedProposal() {
	r := s.newRequest()
	s.propose(s.helper, r.ID)

	_, err := s.engine.ConfirmTicket(s.senior, r.ID)
	s.True(errors.Is(err, ErrInvalidStateTransition))

	// a matched request whose proposal vanished must not pick another one
	s.Require().NoError(s.store.TransitionRequest(r.ID,
		[]schema.RequestStatus{schema.RequestTicketProposed}, schema.RequestHelperMatched))

	_, err = s.engine.ConfirmTicket(s.senior, r.ID)
	s.True(errors.Is(err, ErrInvalidStateTransition))
}

func (s *EngineTestSuite) TestCompleteTwice() {
	r := s.newRequest()
	p := s.propose(s.helper, r.ID)

	_, err := s.engine.AcceptProposal(s.senior, p.ID)
	s.Require().NoError(err)
	_, err = s.engine.ConfirmTicket(s.senior, r.ID)
	s.Require().NoError(err)
	_, err = s.engine.CompleteRequest(s.senior, r.ID)
	s.Require().NoError(err)

	_, err = s.engine.CompleteRequest(s.senior, r.ID)
	s.True(errors.Is(err, ErrInvalidStateTransition))

	s.Equal(10, s.mileage(s.senior.ID))
	s.Equal(20, s.mileage(s.helper.ID))
}

func (s *EngineTestSuite) TestCompleteBeforeConfirm() {
	r := s.newRequest()
	p := s.propose(s.helper, r.ID)

	_, err := s.engine.AcceptProposal(s.senior, p.ID)
	s.Require().NoError(err)

	_, err = s.engine.CompleteRequest(s.senior, r.ID)
	s.True(errors.Is(err, ErrInvalidStateTransition))
	s.Equal(0, s.mileage(s.senior.ID))
}

func (s *EngineTestSuite) TestCompleteByHelper() {
	r := s.newRequest()

	_, err := s.engine.CompleteRequest(s.helper, r.ID)
	s.True(errors.Is(err, policy.ErrUnauthorized))
}

func (s *EngineTestSuite) TestRejectProposalByNonOwner() {
	r := s.newRequest()
	p := s.propose(s.helper, r.ID)

	for _, actor := range []policy.Actor{s.otherSenior, s.helper, s.otherHelper} {
		_, err := s.engine.RejectProposal(actor, p.ID)
		s.True(errors.Is(err, policy.ErrUnauthorized), "%s %d", actor.Role(), actor.UserID())
	}

	p, err := s.store.GetProposal(p.ID)
	s.Require().NoError(err)
	s.Equal(schema.ProposalPending, p.Status)
}

func (s *EngineTestSuite) TestConfirmByNonOwner() {
	r := s.newRequest()
	p := s.propose(s.helper, r.ID)
	_, err := s.engine.AcceptProposal(s.senior, p.ID)
	s.Require().NoError(err)

	for _, actor := range []policy.Actor{s.otherSenior, s.helper} {
		_, err := s.engine.ConfirmTicket(actor, r.ID)
		s.True(errors.Is(err, policy.ErrUnauthorized), "%s %d", actor.Role(), actor.UserID())
	}

	r, err = s.store.GetRequest(r.ID)
	s.Require().NoError(err)
	s.Equal(schema.RequestHelperMatched, r.Status)
}

func (s *EngineTestSuite) TestCompleteByOtherSenior() {
	r := s.newRequest()
	p := s.propose(s.helper, r.ID)
	_, err := s.engine.AcceptProposal(s.senior, p.ID)
	s.Require().NoError(err)
	_, err = s.engine.ConfirmTicket(s.senior, r.ID)
	s.Require().NoError(err)

	for _, actor := range []policy.Actor{s.otherSenior, s.helper} {
		_, err := s.engine.CompleteRequest(actor, r.ID)
		s.True(errors.Is(err, policy.ErrUnauthorized), "%s %d", actor.Role(), actor.UserID())
	}

	r, err = s.store.GetRequest(r.ID)
	s.Require().NoError(err)
	s.Equal(schema.RequestSeatConfirmed, r.Status)
	s.Equal(0, s.mileage(s.senior.ID))
	s.Equal(0, s.mileage(s.helper.ID))
	s.Equal(0, s.mileage(s.otherSenior.ID))
}

func (s *EngineTestSuite) TestCancelRequest() {
	r := s.newRequest()
	first := s.propose(s.helper, r.ID)
	second := s.propose(s.otherHelper, r.ID)

	_, err := s.engine.AcceptProposal(s.senior, first.ID)
	s.Require().NoError(err)

	r, err = s.engine.CancelRequest(s.senior, r.ID)
	s.Require().NoError(err)
	s.Equal(schema.RequestCancelled, r.Status)

	for _, id := range []uint{first.ID, second.ID} {
		p, err := s.store.GetProposal(id)
		s.Require().NoError(err)
		s.Equal(schema.ProposalRejected, p.Status)
	}

	_, err = s.engine.CancelRequest(s.senior, r.ID)
	s.True(errors.Is(err, ErrInvalidStateTransition))

	_, err = s.engine.CompleteRequest(s.senior, r.ID)
	s.True(errors.Is(err, ErrInvalidStateTransition))

	_, err = s.engine.SubmitProposal(s.helper, r.ID, ProposalParams{})
	s.True(errors.Is(err, ErrInvalidStateTransition))

	_, err = s.engine.RejectProposal(s.senior, second.ID)
	s.Require().True(errors.Is(err, ErrInvalidStateTransition))
	s.Contains(err.Error(), "request is CANCELLED, cannot reject its proposals")
}

func (s *EngineTestSuite) TestCancelByOtherSenior() {
	r := s.newRequest()

	_, err := s.engine.CancelRequest(s.otherSenior, r.ID)
	s.True(errors.Is(err, policy.ErrUnauthorized))

	r, err = s.store.GetRequest(r.ID)
	s.Require().NoError(err)
	s.Equal(schema.RequestWaitingForHelper, r.Status)
}
