package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	pkg "github.com/inklet-app/inklet/pkg/internal"
	"github.com/inklet-app/inklet/pkg/internal/cache"
	"github.com/inklet-app/inklet/pkg/internal/database"
	"github.com/inklet-app/inklet/pkg/internal/http"
	"github.com/inklet-app/inklet/pkg/internal/http/api"
	"github.com/inklet-app/inklet/pkg/internal/services"
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
	fmt.Println(color.YellowString(" ___       _    _      _\n|_ _|_ __ | | _| | ___| |_\n | || '_ \\| |/ / |/ _ \\ __|\n | || | | |   <| |  __/ |_\n|___|_| |_|_|\\_\\_|\\___|\\__|"))
	fmt.Printf("%s v%s\n", color.New(color.FgHiYellow).Add(color.Bold).Sprintf("Inklet"), pkg.AppVersion)
	fmt.Printf("The minimal blogging backend\n")
	color.HiBlack("=====================================================\n")

	// Configure settings
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.SetConfigName("settings")
	viper.SetConfigType("toml")
	viper.SetDefault("bind", "0.0.0.0:4000")

	// Load settings
	if err := viper.ReadInConfig(); err != nil {
		log.Panic().Err(err).Msg("An error occurred when loading settings.")
	}

	// Connect to database
	db, err := database.Open(viper.GetString("database.dsn"))
	if err != nil {
		log.Fatal().Err(err).Msg("An error occurred when connecting to database.")
	} else if err := database.RunMigration(db); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when running database auto migration.")
	}

	// Build the in-process cache
	cacheStore, err := cache.NewStore()
	if err != nil {
		log.Fatal().Err(err).Msg("An error occurred when setting up cache.")
	}

	// Reach the Google identity provider
	var identity services.IdentityVerifier
	if verifier, err := services.NewGoogleVerifier(
		context.Background(),
		viper.GetString("security.google_client_id"),
	); err != nil {
		log.Error().Err(err).Msg("An error occurred when reaching google identity provider. Login will be disabled.")
	} else {
		identity = verifier
	}

	// Wire up services
	accounts := services.NewAccounts(db)
	auth := services.NewAuth([]byte(viper.GetString("security.jwt_secret")), accounts)
	posts := services.NewPosts(db)
	comments := services.NewComments(db)
	likes := services.NewLikes(db, cacheStore)
	maintenance := services.NewMaintenance(db)

	// Configure timed tasks
	quartz := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(&log.Logger)))
	quartz.AddFunc("@every 60m", maintenance.CleanupOrphanEngagement)
	quartz.Start()

	// Server
	server := http.NewServer(api.NewGate(auth, identity, accounts, posts, comments, likes))
	go server.Listen()

	// Messages
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	quartz.Stop()
	if err := server.Shutdown(); err != nil {
		log.Error().Err(err).Msg("An error occurred when shutting down server...")
	}
	if err := database.Close(db); err != nil {
		log.Error().Err(err).Msg("An error occurred when closing database...")
	}
}
