package main

import (
	"fmt"
	"log"
	"os"

	"github.com/beka-birhanu/maze-world-api/api"
	episodeapi "github.com/beka-birhanu/maze-world-api/api/episode"
	api_i "github.com/beka-birhanu/maze-world-api/api/i"
	"github.com/beka-birhanu/maze-world-api/config"
	"github.com/beka-birhanu/maze-world-api/infrastruture/logger"
	"github.com/beka-birhanu/maze-world-api/service"
	"github.com/beka-birhanu/maze-world-api/service/i"
	"github.com/gin-gonic/gin"
)

// Global variables for dependencies
var (
	sessionManager    i.EpisodeSessionManager
	episodeController api_i.Controller
	router            *api.Router
	appLogger         i.Logger
)

func initSessionManager() {
	var err error
	sessionManager, err = service.NewEpisodeSessionManager(&service.Config{
		DefaultWidth:  config.Envs.MazeWidth,
		DefaultHeight: config.Envs.MazeHeight,
		Logger:        log.New(os.Stdout, "", log.LstdFlags),
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating episode session manager: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Episode session manager initialized")
}

func initEpisodeController() {
	var err error
	episodeController, err = episodeapi.NewEpisodeController(sessionManager)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating episode controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Episode controller initialized")
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{episodeController},
	})
	appLogger.Info("Router initialized")
}

func main() {
	config.Load()
	gin.SetMode(config.Envs.GinMode)

	// Initialize dependencies
	var err error
	appLogger, err = logger.New("APP", config.ColorGreen, os.Stdout)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Creating app logger: %v", err)
	}

	initSessionManager()
	initEpisodeController()
	initRouter()

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
