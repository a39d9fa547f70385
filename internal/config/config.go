package config

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Settings holds everything the process reads from the environment.
type Settings struct {
	Port             string
	DatabaseDSN      string
	BlueprintPath    string
	ReminderInterval time.Duration
	RecurrenceHour   int
	DailyLogHour     int
	DailyLogMinute   int
	LogLevel         string
	ShutdownTimeout  time.Duration
	ReminderLookback time.Duration
}

func Init() {
	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	level, err := logrus.ParseLevel(viper.GetString("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// Load reads settings from the environment with sane defaults.
func Load() *Settings {
	viper.AutomaticEnv()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATABASE_DSN", "host=localhost user=mentora password=mentora dbname=mentora port=5432 sslmode=disable")
	viper.SetDefault("BLUEPRINT_PATH", "blueprints/blueprint.json")
	viper.SetDefault("REMINDER_INTERVAL", "1m")
	viper.SetDefault("RECURRENCE_HOUR", 0)
	viper.SetDefault("DAILY_LOG_HOUR", 23)
	viper.SetDefault("DAILY_LOG_MINUTE", 59)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	return &Settings{
		Port:             viper.GetString("PORT"),
		DatabaseDSN:      viper.GetString("DATABASE_DSN"),
		BlueprintPath:    viper.GetString("BLUEPRINT_PATH"),
		ReminderInterval: viper.GetDuration("REMINDER_INTERVAL"),
		RecurrenceHour:   viper.GetInt("RECURRENCE_HOUR"),
		DailyLogHour:     viper.GetInt("DAILY_LOG_HOUR"),
		DailyLogMinute:   viper.GetInt("DAILY_LOG_MINUTE"),
		LogLevel:         viper.GetString("LOG_LEVEL"),
		ShutdownTimeout:  viper.GetDuration("SHUTDOWN_TIMEOUT"),
		ReminderLookback: 5 * time.Minute,
	}
}
