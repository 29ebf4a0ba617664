package schema

import (
	"time"
)

type Role string

const (
	RoleSenior Role = "senior"
	RoleHelper Role = "helper"
)

// Valid reports whether the role is one a user can sign up with
func (r Role) Valid() bool {
	return r == RoleSenior || r == RoleHelper
}

type User struct {
	ID            uint      `json:"id" gorm:"primary_key"`
	Phone         string    `json:"phone" gorm:"type:varchar(20);unique_index;not null"`
	Name          string    `json:"name" gorm:"type:varchar(100);not null"`
	Role          Role      `json:"role" gorm:"type:varchar(10);not null"`
	PasswordHash  string    `json:"-" gorm:"not null"`
	MileagePoints int       `json:"mileagePoints" gorm:"not null"`
	Profile       *Profile  `json:"profile,omitempty" gorm:"foreignkey:UserID;save_associations:false"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"-"`
}

// Profile is owned by exactly one user and created together with it
type Profile struct {
	ID               uint      `json:"-" gorm:"primary_key"`
	UserID           uint      `json:"-" gorm:"unique_index;not null"`
	Nickname         string    `json:"nickname" gorm:"type:varchar(50)"`
	FavoriteTeamID   *uint     `json:"favoriteTeamId"`
	VerificationInfo string    `json:"verificationInfo" gorm:"type:varchar(100)"`
	CreatedAt        time.Time `json:"-"`
	UpdatedAt        time.Time `json:"-"`
}

// MileageEntry is one line of the mileage ledger. A user is credited at most
// once per request.
type MileageEntry struct {
	ID        uint      `json:"id" gorm:"primary_key"`
	RequestID uint      `json:"requestId" gorm:"unique_index:mileage_entry_request_user;not null"`
	UserID    uint      `json:"userId" gorm:"unique_index:mileage_entry_request_user;not null"`
	Points    int       `json:"points" gorm:"not null"`
	Reason    string    `json:"reason" gorm:"type:varchar(50)"`
	CreatedAt time.Time `json:"createdAt"`
}

// SeniorStats summarises the requests opened by a senior
type SeniorStats struct {
	TotalRequests      int `json:"totalRequests"`
	CompletedRequests  int `json:"completedRequests"`
	InProgressRequests int `json:"inProgressRequests"`
	MileagePoints      int `json:"mileagePoints"`
}

// HelperStats summarises the proposals submitted by a helper
type HelperStats struct {
	TotalProposals     int `json:"totalProposals"`
	AcceptedProposals  int `json:"acceptedProposals"`
	CompletedProposals int `json:"completedProposals"`
	MileagePoints      int `json:"mileagePoints"`
}
