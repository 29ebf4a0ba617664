package store

import (
	"github.com/jikgwan/companion-api/schema"
)

// CreateProposal inserts a proposal. A second proposal by the same helper for
// the same request violates the composite unique index and returns
// ErrConflict.
func (s *MatchingStore) CreateProposal(proposal *schema.Proposal) error {
	if err := s.ormDB.Create(proposal).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return err
	}
	return nil
}

// GetProposal returns a proposal with its helper
func (s *MatchingStore) GetProposal(id uint) (*schema.Proposal, error) {
	var p schema.Proposal
	if err := s.ormDB.Preload("Helper").Where("id = ?", id).First(&p).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (s *MatchingStore) HasProposal(requestID, helperID uint) (bool, error) {
	var count int
	if err := s.ormDB.Model(&schema.Proposal{}).
		Where("request_id = ? AND helper_id = ?", requestID, helperID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetAcceptedProposal returns the proposal committed to a request
func (s *MatchingStore) GetAcceptedProposal(requestID uint) (*schema.Proposal, error) {
	var p schema.Proposal
	if err := s.ormDB.Preload("Helper").
		Where("request_id = ? AND status = ?", requestID, string(schema.ProposalAccepted)).
		First(&p).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

// ListProposalsByRequest returns the proposals of a request, newest first
func (s *MatchingStore) ListProposalsByRequest(requestID uint) ([]schema.Proposal, error) {
	proposals := []schema.Proposal{}
	if err := s.ormDB.Preload("Helper").
		Where("request_id = ?", requestID).
		Order("created_at DESC, id DESC").
		Find(&proposals).Error; err != nil {
		return nil, err
	}
	return proposals, nil
}

// ListProposalsByHelper returns the proposals of a helper with their requests,
// newest first
func (s *MatchingStore) ListProposalsByHelper(helperID uint) ([]schema.Proposal, error) {
	proposals := []schema.Proposal{}
	if err := s.ormDB.
		Preload("Request.Game.HomeTeam").
		Preload("Request.Game.AwayTeam").
		Where("helper_id = ?", helperID).
		Order("created_at DESC, id DESC").
		Find(&proposals).Error; err != nil {
		return nil, err
	}
	return proposals, nil
}

// TransitionProposal moves a proposal to `to` only if its stored status is one
// of `from`
func (s *MatchingStore) TransitionProposal(id uint, from []schema.ProposalStatus, to schema.ProposalStatus) error {
	result := s.ormDB.Model(&schema.Proposal{}).
		Where("id = ? AND status IN (?)", id, proposalStatusStrings(from)).
		Update("status", string(to))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrStatusMismatch
	}

	return nil
}

// RejectOtherProposals rejects every open proposal of a request except keepID.
// A zero keepID rejects all of them.
func (s *MatchingStore) RejectOtherProposals(requestID, keepID uint) (int64, error) {
	q := s.ormDB.Model(&schema.Proposal{}).
		Where("request_id = ? AND status IN (?)", requestID, proposalStatusStrings([]schema.ProposalStatus{
			schema.ProposalPending,
			schema.ProposalAccepted,
		}))
	if keepID != 0 {
		q = q.Where("id <> ?", keepID)
	}

	result := q.Update("status", string(schema.ProposalRejected))
	return result.RowsAffected, result.Error
}
