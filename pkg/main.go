package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	pkg "github.com/grovesocial/grove/pkg/internal"
	"github.com/grovesocial/grove/pkg/internal/cache"
	"github.com/grovesocial/grove/pkg/internal/checkers"
	"github.com/grovesocial/grove/pkg/internal/database"
	"github.com/grovesocial/grove/pkg/internal/http"
	"github.com/grovesocial/grove/pkg/internal/security"
	"github.com/grovesocial/grove/pkg/internal/services"

	"github.com/fatih/color"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

func main() {
	// Booting screen
	fmt.Println(color.GreenString("  ____\n / ___|_ __ _____   _____\n| |  _| '__/ _ \\ \\ / / _ \\\n| |_| | | | (_) \\ V /  __/\n \\____|_|  \\___/ \\_/ \\___|"))
	fmt.Printf("%s v%s\n", color.New(color.FgHiGreen).Add(color.Bold).Sprintf("Grove"), pkg.AppVersion)
	fmt.Printf("The community backbone of Grove\n")
	color.HiBlack("=====================================================\n")

	// Configure settings
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.SetConfigName("settings")
	viper.SetConfigType("toml")

	// Load settings
	if err := viper.ReadInConfig(); err != nil {
		log.Panic().Err(err).Msg("An error occurred when loading settings.")
	}

	// Prepare the in-process cache
	if err := cache.NewStore(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when initializing the cache store.")
	}

	// Connect to database
	if err := database.NewGorm(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when connect to database.")
	} else if err := database.RunMigration(database.C); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when running database auto migration.")
	}

	// Wire the authorization core
	tokens := security.NewTokens(
		viper.GetString("security.token_secret"),
		viper.GetString("security.token_algorithm"),
		time.Duration(viper.GetInt("security.token_ttl"))*time.Second,
	)
	services.Checks = checkers.New(database.C, checkers.ConfigFromSettings(), tokens)
	http.Tokens = tokens

	// Configure timed tasks
	quartz := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(&log.Logger)))
	quartz.AddFunc("@every 60m", services.DoAutoDatabaseCleanup)
	quartz.Start()

	// Server
	go http.NewServer().Listen()

	// Messages
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	quartz.Stop()
}
