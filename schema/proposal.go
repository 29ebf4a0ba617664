package schema

import (
	"time"
)

type ProposalStatus string

const (
	ProposalPending   ProposalStatus = "pending"
	ProposalAccepted  ProposalStatus = "accepted"
	ProposalRejected  ProposalStatus = "rejected"
	ProposalCompleted ProposalStatus = "completed"
)

// Proposal is a helper's ticket offer for a request. The composite unique
// index keeps one proposal per helper and request.
type Proposal struct {
	ID         uint           `json:"proposalId" gorm:"primary_key"`
	RequestID  uint           `json:"requestId" gorm:"unique_index:proposal_request_helper;not null"`
	Request    *Request       `json:"request,omitempty" gorm:"foreignkey:RequestID;save_associations:false"`
	HelperID   uint           `json:"helperId" gorm:"unique_index:proposal_request_helper;not null"`
	Helper     *User          `json:"helper,omitempty" gorm:"foreignkey:HelperID;save_associations:false"`
	SeatType   string         `json:"seatType" gorm:"type:varchar(100)"`
	TotalPrice string         `json:"totalPrice" gorm:"type:varchar(50)"`
	Message    string         `json:"message" gorm:"type:text"`
	Status     ProposalStatus `json:"status" gorm:"type:varchar(20);index;not null"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}
