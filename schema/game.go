package schema

type Team struct {
	ID      uint   `json:"teamId" gorm:"primary_key"`
	Code    string `json:"code" gorm:"type:varchar(20);unique_index;not null"`
	Name    string `json:"name" gorm:"type:varchar(50);not null"`
	Stadium string `json:"stadium" gorm:"type:varchar(100)"`
	Logo    string `json:"logoUrl"`
}

// Game is a scheduled fixture. Date is YYYY-MM-DD and Time is HH:MM so that
// lexical order is chronological order in every dialect.
type Game struct {
	ID         uint   `json:"gameId" gorm:"primary_key"`
	Date       string `json:"date" gorm:"type:varchar(10);index;not null"`
	Time       string `json:"time" gorm:"type:varchar(5);not null"`
	Stadium    string `json:"stadium" gorm:"type:varchar(100)"`
	HomeTeamID uint   `json:"-" gorm:"not null"`
	HomeTeam   *Team  `json:"homeTeam,omitempty" gorm:"foreignkey:HomeTeamID;save_associations:false"`
	AwayTeamID uint   `json:"-" gorm:"not null"`
	AwayTeam   *Team  `json:"awayTeam,omitempty" gorm:"foreignkey:AwayTeamID;save_associations:false"`
}

const (
	GameDateLayout = "2006-01-02"
	GameTimeLayout = "15:04"
)
