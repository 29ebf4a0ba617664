package schema

import (
	"time"
)

type RequestStatus string

const (
	RequestWaitingForHelper RequestStatus = "WAITING_FOR_HELPER"
	RequestTicketProposed   RequestStatus = "TICKET_PROPOSED"
	RequestHelperMatched    RequestStatus = "HELPER_MATCHED"
	RequestSeatConfirmed    RequestStatus = "SEAT_CONFIRMED"
	RequestCompleted        RequestStatus = "COMPLETED"
	RequestCancelled        RequestStatus = "CANCELLED"
)

// requestTransitions is the complete edge set of the request lifecycle.
// Any status missing from the map is terminal.
var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestWaitingForHelper: {RequestTicketProposed, RequestCancelled},
	RequestTicketProposed:   {RequestHelperMatched, RequestCancelled},
	RequestHelperMatched:    {RequestSeatConfirmed, RequestCancelled},
	RequestSeatConfirmed:    {RequestCompleted, RequestCancelled},
}

// Valid reports whether the status belongs to the lifecycle enumeration
func (s RequestStatus) Valid() bool {
	switch s {
	case RequestWaitingForHelper, RequestTicketProposed, RequestHelperMatched,
		RequestSeatConfirmed, RequestCompleted, RequestCancelled:
		return true
	}
	return false
}

func (s RequestStatus) IsTerminal() bool {
	return s == RequestCompleted || s == RequestCancelled
}

// CanTransitionTo reports whether next is a direct successor of s
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	for _, n := range requestTransitions[s] {
		if n == next {
			return true
		}
	}
	return false
}

// AcceptsProposals reports whether helpers may still propose tickets
func (s RequestStatus) AcceptsProposals() bool {
	return s == RequestWaitingForHelper || s == RequestTicketProposed
}

// NonTerminalRequestStatuses lists every status a request can be cancelled from
func NonTerminalRequestStatuses() []RequestStatus {
	return []RequestStatus{
		RequestWaitingForHelper,
		RequestTicketProposed,
		RequestHelperMatched,
		RequestSeatConfirmed,
	}
}

type AccompanyType string

const (
	AccompanyWith       AccompanyType = "with"
	AccompanyTicketOnly AccompanyType = "ticket_only"
)

func (a AccompanyType) Valid() bool {
	return a == AccompanyWith || a == AccompanyTicketOnly
}

const (
	MinTicketsPerRequest = 1
	MaxTicketsPerRequest = 4
)

type Request struct {
	ID              uint          `json:"requestId" gorm:"primary_key"`
	UserID          uint          `json:"userId" gorm:"index;not null"`
	User            *User         `json:"user,omitempty" gorm:"foreignkey:UserID;save_associations:false"`
	GameID          uint          `json:"gameId" gorm:"index;not null"`
	Game            *Game         `json:"game,omitempty" gorm:"foreignkey:GameID;save_associations:false"`
	NumberOfTickets int           `json:"numberOfTickets" gorm:"not null"`
	AccompanyType   AccompanyType `json:"accompanyType" gorm:"type:varchar(20);not null"`
	AdditionalInfo  string        `json:"additionalInfo" gorm:"type:text"`
	Status          RequestStatus `json:"status" gorm:"type:varchar(50);index;not null"`
	ProposalCount   int           `json:"proposalCount" gorm:"-"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}
