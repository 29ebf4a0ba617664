package main

import (
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/jikgwan/companion-api/store"
)

func init() {
	godotenv.Load()

	viper.AutomaticEnv()
	viper.SetEnvPrefix("companion")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetDefault("orm.dialect", "postgres")
}

func main() {
	db, err := gorm.Open(viper.GetString("orm.dialect"), viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}
	defer db.Close()

	if err := store.Migrate(db); err != nil {
		panic(err)
	}

	log.WithField("prefix", "migrate").Info("database schema is up to date")
}
