package store

import (
	"github.com/jikgwan/companion-api/schema"
)

// SeniorStats counts the requests of a senior. In-progress covers every
// non-terminal status.
func (s *MatchingStore) SeniorStats(userID uint) (*schema.SeniorStats, error) {
	u, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}

	stats := schema.SeniorStats{MileagePoints: u.MileagePoints}

	q := s.ormDB.Model(&schema.Request{}).Where("user_id = ?", userID)
	if err := q.Count(&stats.TotalRequests).Error; err != nil {
		return nil, err
	}

	if err := q.Where("status = ?", string(schema.RequestCompleted)).
		Count(&stats.CompletedRequests).Error; err != nil {
		return nil, err
	}

	if err := s.ormDB.Model(&schema.Request{}).
		Where("user_id = ? AND status IN (?)", userID, requestStatusStrings(schema.NonTerminalRequestStatuses())).
		Count(&stats.InProgressRequests).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}

// HelperStats counts the proposals of a helper
func (s *MatchingStore) HelperStats(userID uint) (*schema.HelperStats, error) {
	u, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}

	stats := schema.HelperStats{MileagePoints: u.MileagePoints}

	q := s.ormDB.Model(&schema.Proposal{}).Where("helper_id = ?", userID)
	if err := q.Count(&stats.TotalProposals).Error; err != nil {
		return nil, err
	}

	if err := q.Where("status = ?", string(schema.ProposalAccepted)).
		Count(&stats.AcceptedProposals).Error; err != nil {
		return nil, err
	}

	if err := s.ormDB.Model(&schema.Proposal{}).
		Where("helper_id = ? AND status = ?", userID, string(schema.ProposalCompleted)).
		Count(&stats.CompletedProposals).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
