package store

import (
	"github.com/jikgwan/companion-api/schema"
)

// RequestFilter narrows down the helper-facing request listing. Empty fields
// are ignored.
type RequestFilter struct {
	GameDate      string
	Team          string
	Stadium       string
	AccompanyType schema.AccompanyType
}

func (s *MatchingStore) CreateRequest(request *schema.Request) error {
	return s.ormDB.Create(request).Error
}

// GetRequest returns a request with its owner and game
func (s *MatchingStore) GetRequest(id uint) (*schema.Request, error) {
	var r schema.Request
	if err := s.ormDB.
		Preload("User").
		Preload("Game.HomeTeam").
		Preload("Game.AwayTeam").
		Where("id = ?", id).
		First(&r).Error; err != nil {
		return nil, notFound(err)
	}
	return &r, nil
}

// UpdateRequestDetails rewrites the editable fields of a request only while it
// is still in the given status
func (s *MatchingStore) UpdateRequestDetails(id uint, status schema.RequestStatus, numberOfTickets int, accompanyType schema.AccompanyType, additionalInfo string) error {
	result := s.ormDB.Model(&schema.Request{}).
		Where("id = ? AND status = ?", id, string(status)).
		Updates(map[string]interface{}{
			"number_of_tickets": numberOfTickets,
			"accompany_type":    string(accompanyType),
			"additional_info":   additionalInfo,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrStatusMismatch
	}

	return nil
}

// TransitionRequest moves a request to `to` only if its stored status is one
// of `from`. The status check and the write are one statement, so concurrent
// transitions on the same request cannot both succeed.
func (s *MatchingStore) TransitionRequest(id uint, from []schema.RequestStatus, to schema.RequestStatus) error {
	result := s.ormDB.Model(&schema.Request{}).
		Where("id = ? AND status IN (?)", id, requestStatusStrings(from)).
		Update("status", string(to))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrStatusMismatch
	}

	return nil
}

// ListOpenRequests returns requests still waiting for a helper, newest first
func (s *MatchingStore) ListOpenRequests(filter RequestFilter) ([]schema.Request, error) {
	requests := []schema.Request{}

	q := withTeams(s.ormDB.Model(&schema.Request{}).
		Joins("JOIN games ON games.id = requests.game_id")).
		Select("requests.*").
		Where("requests.status = ?", string(schema.RequestWaitingForHelper))

	if filter.GameDate != "" {
		q = q.Where("games.date = ?", filter.GameDate)
	}
	if filter.Team != "" {
		q = whereTeam(q, filter.Team)
	}
	if filter.Stadium != "" {
		q = q.Where("games.stadium = ?", filter.Stadium)
	}
	if filter.AccompanyType != "" {
		q = q.Where("requests.accompany_type = ?", string(filter.AccompanyType))
	}

	if err := q.
		Preload("User").
		Preload("Game.HomeTeam").
		Preload("Game.AwayTeam").
		Order("requests.created_at DESC, requests.id DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}

	return requests, nil
}

// ListRequestsByOwner returns the requests of a senior, newest first, with the
// number of proposals each one received
func (s *MatchingStore) ListRequestsByOwner(userID uint) ([]schema.Request, error) {
	requests := []schema.Request{}
	if err := s.ormDB.
		Preload("Game.HomeTeam").
		Preload("Game.AwayTeam").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}

	if len(requests) == 0 {
		return requests, nil
	}

	ids := make([]uint, 0, len(requests))
	for _, r := range requests {
		ids = append(ids, r.ID)
	}

	var counts []struct {
		RequestID uint
		Total     int
	}
	if err := s.ormDB.Model(&schema.Proposal{}).
		Select("request_id, count(*) AS total").
		Where("request_id IN (?)", ids).
		Group("request_id").
		Scan(&counts).Error; err != nil {
		return nil, err
	}

	countByRequest := make(map[uint]int, len(counts))
	for _, c := range counts {
		countByRequest[c.RequestID] = c.Total
	}
	for i := range requests {
		requests[i].ProposalCount = countByRequest[requests[i].ID]
	}

	return requests, nil
}
