package store

import (
	"github.com/jinzhu/gorm"

	"github.com/jikgwan/companion-api/schema"
)

// GameFilter narrows down the game listing. Empty fields are ignored.
type GameFilter struct {
	Date string
	Team string
}

func (s *MatchingStore) CreateTeam(team *schema.Team) error {
	if err := s.ormDB.Create(team).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return err
	}
	return nil
}

func (s *MatchingStore) ListTeams() ([]schema.Team, error) {
	teams := []schema.Team{}
	if err := s.ormDB.Order("id").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// GetTeamByCode returns a team by its short code, e.g. `lg`
func (s *MatchingStore) GetTeamByCode(code string) (*schema.Team, error) {
	var t schema.Team
	if err := s.ormDB.Where("code = ?", code).First(&t).Error; err != nil {
		return nil, notFound(err)
	}
	return &t, nil
}

func (s *MatchingStore) CreateGame(game *schema.Game) error {
	return s.ormDB.Create(game).Error
}

// FindGame returns the earliest game of a team, home or away, on a date
func (s *MatchingStore) FindGame(teamID uint, date string) (*schema.Game, error) {
	var g schema.Game
	if err := s.ormDB.
		Preload("HomeTeam").
		Preload("AwayTeam").
		Where("games.date = ? AND (games.home_team_id = ? OR games.away_team_id = ?)", date, teamID, teamID).
		Order("games.time").
		First(&g).Error; err != nil {
		return nil, notFound(err)
	}
	return &g, nil
}

// ListGames returns games ordered by date and time ascending. The team filter
// matches either the team code or its name, on both sides of the fixture.
func (s *MatchingStore) ListGames(filter GameFilter) ([]schema.Game, error) {
	games := []schema.Game{}

	q := withTeams(s.ormDB.Model(&schema.Game{})).Select("games.*")
	if filter.Date != "" {
		q = q.Where("games.date = ?", filter.Date)
	}
	if filter.Team != "" {
		q = whereTeam(q, filter.Team)
	}

	if err := q.
		Preload("HomeTeam").
		Preload("AwayTeam").
		Order("games.date ASC, games.time ASC, games.id ASC").
		Find(&games).Error; err != nil {
		return nil, err
	}

	return games, nil
}

func withTeams(q *gorm.DB) *gorm.DB {
	return q.
		Joins("JOIN teams home ON home.id = games.home_team_id").
		Joins("JOIN teams away ON away.id = games.away_team_id")
}

func whereTeam(q *gorm.DB, team string) *gorm.DB {
	return q.Where("home.code = ? OR home.name = ? OR away.code = ? OR away.name = ?", team, team, team, team)
}
