package main

import (
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/snapspend/backend/internal/capture"
	v1 "github.com/snapspend/backend/internal/controllers/v1"
	"github.com/snapspend/backend/internal/images"
	"github.com/snapspend/backend/internal/models"
	"github.com/snapspend/backend/internal/router"
)

func main() {
	// Local development configuration is read from a .env file when
	// there is one
	_ = godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	dbPath, ok := os.LookupEnv("DB_PATH")
	if !ok {
		dbPath = filepath.Join(".", "data", "snapspend.db")
	}

	err := os.MkdirAll(filepath.Dir(dbPath), os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	err = models.Connect(dbPath + "?_pragma=foreign_keys(1)")
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	imageDir, ok := os.LookupEnv("IMAGE_DIR")
	if !ok {
		imageDir = filepath.Join(".", "data", "images")
	}

	store, err := images.NewStore(imageDir)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		log.Fatal().Msg("environment variable API_URL must be set")
	}

	baseURL, err := url.Parse(apiURL)
	if err != nil {
		log.Fatal().Msg("environment variable API_URL must be a valid URL")
	}

	r, err := router.Config(baseURL)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	err = router.RegisterPrometheusMetrics()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// The server has no camera hardware of its own. Captures come in
	// through clients that implement the capture interfaces, everything
	// else reports the unsupported failure.
	session := capture.NewSession(capture.UnsupportedDevice{}, capture.NopSurface{}, capture.Options{})

	router.AttachRoutes(v1.NewController(store, session), r.Group("/"))

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
