package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jinzhu/gorm"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"

	"github.com/jikgwan/companion-api/schema"
)

var (
	ErrNotFound       = fmt.Errorf("the record does not exist")
	ErrConflict       = fmt.Errorf("the record already exists")
	ErrStatusMismatch = fmt.Errorf("the record is not in the expected status")
)

// MatchingCore is the relational datastore of the matching service
type MatchingCore interface {
	Ping() error

	// Transaction runs fn against a store bound to a single database
	// transaction. Any error returned by fn rolls the transaction back.
	Transaction(fn func(MatchingCore) error) error

	// Account
	CreateAccount(user *schema.User, profile *schema.Profile) error
	GetUser(id uint) (*schema.User, error)
	GetUserByPhone(phone string) (*schema.User, error)
	PhoneExists(phone string) (bool, error)
	UpdateAccount(userID uint, name string, profile schema.Profile) (*schema.User, error)

	// Team and game
	CreateTeam(team *schema.Team) error
	ListTeams() ([]schema.Team, error)
	GetTeamByCode(code string) (*schema.Team, error)
	CreateGame(game *schema.Game) error
	FindGame(teamID uint, date string) (*schema.Game, error)
	ListGames(filter GameFilter) ([]schema.Game, error)

	// Request
	CreateRequest(request *schema.Request) error
	GetRequest(id uint) (*schema.Request, error)
	UpdateRequestDetails(id uint, status schema.RequestStatus, numberOfTickets int, accompanyType schema.AccompanyType, additionalInfo string) error
	TransitionRequest(id uint, from []schema.RequestStatus, to schema.RequestStatus) error
	ListOpenRequests(filter RequestFilter) ([]schema.Request, error)
	ListRequestsByOwner(userID uint) ([]schema.Request, error)

	// Proposal
	CreateProposal(proposal *schema.Proposal) error
	GetProposal(id uint) (*schema.Proposal, error)
	HasProposal(requestID, helperID uint) (bool, error)
	GetAcceptedProposal(requestID uint) (*schema.Proposal, error)
	ListProposalsByRequest(requestID uint) ([]schema.Proposal, error)
	ListProposalsByHelper(helperID uint) ([]schema.Proposal, error)
	TransitionProposal(id uint, from []schema.ProposalStatus, to schema.ProposalStatus) error
	RejectOtherProposals(requestID, keepID uint) (int64, error)

	// Mileage
	CreditMileage(entry *schema.MileageEntry) error

	// Stats
	SeniorStats(userID uint) (*schema.SeniorStats, error)
	HelperStats(userID uint) (*schema.HelperStats, error)
}

// MatchingStore is an implementation of MatchingCore
type MatchingStore struct {
	ormDB *gorm.DB
}

func NewMatchingStore(ormDB *gorm.DB) *MatchingStore {
	return &MatchingStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *MatchingStore) Ping() error {
	return s.ormDB.DB().Ping()
}

// Transaction binds a copy of the store to a database transaction
func (s *MatchingStore) Transaction(fn func(MatchingCore) error) error {
	return s.atomic(func(tx *gorm.DB) error {
		return fn(&MatchingStore{ormDB: tx})
	})
}

// atomic runs fn in a new transaction, or in the current one when the store
// is already bound to a transaction
func (s *MatchingStore) atomic(fn func(tx *gorm.DB) error) error {
	if _, ok := s.ormDB.CommonDB().(*sql.Tx); ok {
		return fn(s.ormDB)
	}
	return s.ormDB.Transaction(fn)
}

// notFound converts the gorm not-found error into ErrNotFound
func notFound(err error) error {
	if gorm.IsRecordNotFoundError(err) {
		return ErrNotFound
	}
	return err
}

// isUniqueViolation detects a unique constraint failure from either
// the postgres or the sqlite driver
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}

	return false
}

func requestStatusStrings(statuses []schema.RequestStatus) []string {
	s := make([]string, 0, len(statuses))
	for _, st := range statuses {
		s = append(s, string(st))
	}
	return s
}

func proposalStatusStrings(statuses []schema.ProposalStatus) []string {
	s := make([]string, 0, len(statuses))
	for _, st := range statuses {
		s = append(s, string(st))
	}
	return s
}
