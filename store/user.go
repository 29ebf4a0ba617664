package store

import (
	"github.com/jinzhu/gorm"

	"github.com/jikgwan/companion-api/schema"
)

// CreateAccount registers a user together with its profile. Both rows are
// written in one transaction so a user never exists without a profile.
func (s *MatchingStore) CreateAccount(user *schema.User, profile *schema.Profile) error {
	return s.atomic(func(tx *gorm.DB) error {
		if err := teamExists(tx, profile.FavoriteTeamID); err != nil {
			return err
		}

		if err := tx.Create(user).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrConflict
			}
			return err
		}

		profile.UserID = user.ID
		if err := tx.Create(profile).Error; err != nil {
			return err
		}

		user.Profile = profile
		return nil
	})
}

// GetUser returns a user with its profile
func (s *MatchingStore) GetUser(id uint) (*schema.User, error) {
	var u schema.User
	if err := s.ormDB.Preload("Profile").Where("id = ?", id).First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

// GetUserByPhone returns the user registered with a normalized phone number
func (s *MatchingStore) GetUserByPhone(phone string) (*schema.User, error) {
	var u schema.User
	if err := s.ormDB.Preload("Profile").Where("phone = ?", phone).First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (s *MatchingStore) PhoneExists(phone string) (bool, error) {
	var count int
	if err := s.ormDB.Model(&schema.User{}).Where("phone = ?", phone).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateAccount changes the display name of a user and replaces the editable
// fields of its profile. An empty name keeps the current one.
func (s *MatchingStore) UpdateAccount(userID uint, name string, profile schema.Profile) (*schema.User, error) {
	err := s.atomic(func(tx *gorm.DB) error {
		if err := teamExists(tx, profile.FavoriteTeamID); err != nil {
			return err
		}

		if name != "" {
			result := tx.Model(&schema.User{}).Where("id = ?", userID).Update("name", name)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrNotFound
			}
		}

		return tx.Model(&schema.Profile{}).Where("user_id = ?", userID).Updates(map[string]interface{}{
			"nickname":          profile.Nickname,
			"favorite_team_id":  profile.FavoriteTeamID,
			"verification_info": profile.VerificationInfo,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetUser(userID)
}

// teamExists returns ErrNotFound when a favorite team is set but unknown
func teamExists(tx *gorm.DB, teamID *uint) error {
	if teamID == nil {
		return nil
	}

	var t schema.Team
	return notFound(tx.Select("id").Where("id = ?", *teamID).First(&t).Error)
}
