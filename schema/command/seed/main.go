package main

import (
	"errors"
	"flag"
	"strings"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/jikgwan/companion-api/schema"
	"github.com/jikgwan/companion-api/store"
	"github.com/jikgwan/companion-api/utils"
)

var log = logrus.WithField("prefix", "seed")

var teams = []schema.Team{
	{Code: "lg", Name: "LG 트윈스", Stadium: "잠실야구장", Logo: "https://i.imgur.com/wG5G2C3.png"},
	{Code: "doosan", Name: "두산 베어스", Stadium: "잠실야구장", Logo: "https://i.imgur.com/agB85z5.png"},
	{Code: "kt", Name: "KT 위즈", Stadium: "수원KT위즈파크", Logo: "https://i.imgur.com/uF1a2R4.png"},
	{Code: "hanwha", Name: "한화 이글스", Stadium: "대전한화생명이글스파크", Logo: "https://i.imgur.com/L4zzF2x.png"},
	{Code: "samsung", Name: "삼성 라이온즈", Stadium: "대구삼성라이온즈파크", Logo: "https://i.imgur.com/R3d4J4f.png"},
	{Code: "lotte", Name: "롯데 자이언츠", Stadium: "사직야구장", Logo: "https://i.imgur.com/rS2jA5M.png"},
	{Code: "kia", Name: "KIA 타이거즈", Stadium: "광주-기아챔피언스필드", Logo: "https://i.imgur.com/E85b7gT.png"},
	{Code: "nc", Name: "NC 다이노스", Stadium: "창원NC파크", Logo: "https://i.imgur.com/zSg3gZ2.png"},
	{Code: "ssg", Name: "SSG 랜더스", Stadium: "인천SSG랜더스필드", Logo: "https://i.imgur.com/lZH3G4R.png"},
	{Code: "kiwoom", Name: "키움 히어로즈", Stadium: "고척스카이돔", Logo: "https://i.imgur.com/2s3Fq3h.png"},
}

var demoUsers = []schema.User{
	{Phone: "01012345678", Name: "김시니어", Role: schema.RoleSenior},
	{Phone: "01087654321", Name: "이도우미", Role: schema.RoleHelper},
}

const demoPassword = "testpass123"

func init() {
	godotenv.Load()

	viper.AutomaticEnv()
	viper.SetEnvPrefix("companion")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetDefault("orm.dialect", "postgres")
}

func main() {
	var days int
	flag.IntVar(&days, "days", 7, "number of days of fixtures to create from tomorrow")
	flag.Parse()

	db, err := gorm.Open(viper.GetString("orm.dialect"), viper.GetString("orm.conn"))
	if err != nil {
		log.Panic(err)
	}
	defer db.Close()

	if err := store.Migrate(db); err != nil {
		log.Panic(err)
	}

	s := store.NewMatchingStore(db)
	if err := s.Transaction(func(tx store.MatchingCore) error {
		stored, err := seedTeams(tx)
		if err != nil {
			return err
		}

		if err := seedUsers(tx); err != nil {
			return err
		}

		return seedGames(tx, stored, time.Now().AddDate(0, 0, 1), days)
	}); err != nil {
		log.Panic(err)
	}

	log.Info("sample data is ready")
}

func seedTeams(tx store.MatchingCore) ([]schema.Team, error) {
	stored := make([]schema.Team, 0, len(teams))
	for _, t := range teams {
		existing, err := tx.GetTeamByCode(t.Code)
		switch {
		case err == nil:
			stored = append(stored, *existing)
			continue
		case !errors.Is(err, store.ErrNotFound):
			return nil, err
		}

		team := t
		if err := tx.CreateTeam(&team); err != nil {
			return nil, err
		}
		log.Infof("team created: %s (%s)", team.Name, team.Code)
		stored = append(stored, team)
	}
	return stored, nil
}

func seedUsers(tx store.MatchingCore) error {
	hash, err := utils.HashPassword(demoPassword)
	if err != nil {
		return err
	}

	for _, u := range demoUsers {
		exists, err := tx.PhoneExists(u.Phone)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		user := u
		user.PasswordHash = hash
		if err := tx.CreateAccount(&user, &schema.Profile{Nickname: user.Name}); err != nil {
			return err
		}
		log.Infof("%s created: %s (%s)", user.Role, user.Name, user.Phone)
	}
	return nil
}

// seedGames schedules every team once a day, rotating the pairings
func seedGames(tx store.MatchingCore, stored []schema.Team, from time.Time, days int) error {
	n := len(stored)
	for d := 0; d < days; d++ {
		date := from.AddDate(0, 0, d).Format(schema.GameDateLayout)

		for i := 0; i < n/2; i++ {
			home := stored[(i+d)%n]
			away := stored[(n-1-i+d)%n]

			if _, err := tx.FindGame(home.ID, date); err == nil {
				continue
			} else if !errors.Is(err, store.ErrNotFound) {
				return err
			}

			if err := tx.CreateGame(&schema.Game{
				Date:       date,
				Time:       "18:30",
				Stadium:    home.Stadium,
				HomeTeamID: home.ID,
				AwayTeamID: away.ID,
			}); err != nil {
				return err
			}
			log.Infof("game created: %s vs %s (%s)", home.Name, away.Name, date)
		}
	}
	return nil
}
