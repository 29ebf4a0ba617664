package store

import (
	"fmt"

	"github.com/jinzhu/gorm"

	"github.com/jikgwan/companion-api/schema"
)

// Migrate creates or updates every table of the matching service
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&schema.User{},
		&schema.Profile{},
		&schema.Team{},
		&schema.Game{},
		&schema.Request{},
		&schema.Proposal{},
		&schema.MileageEntry{},
	).Error; err != nil {
		return err
	}

	// a request never has more than one accepted proposal
	if err := db.Model(&schema.Proposal{}).Where(fmt.Sprintf("status = '%s'", schema.ProposalAccepted)).
		AddUniqueIndex("proposal_unique_accepted_per_request", "request_id").Error; err != nil {
		return err
	}

	return nil
}
