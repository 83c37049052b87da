package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/beka-birhanu/lightning-maze/api"
	api_i "github.com/beka-birhanu/lightning-maze/api/i"
	mazeapi "github.com/beka-birhanu/lightning-maze/api/maze"
	"github.com/beka-birhanu/lightning-maze/config"
	"github.com/beka-birhanu/lightning-maze/logger"
	"github.com/beka-birhanu/lightning-maze/service"
	"github.com/beka-birhanu/lightning-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Global variables for dependencies
var (
	appLogger      *logrus.Logger
	animator       *service.Animator
	sessionManager *service.SessionManager
	mazeController api_i.Controller
	router         *api.Router
)

func mustLogger(name, color string) *logrus.Logger {
	l, err := logger.New(name, color, os.Stdout, config.Envs.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Creating %s logger: %v\n", name, err)
		os.Exit(1)
	}
	return l
}

func initAnimator() {
	var err error
	animator, err = service.NewAnimator(config.Envs.TickInterval, mustLogger("ANIMATOR", config.ColorMagenta))
	if err != nil {
		appLogger.Errorf("Creating animator: %v", err)
		os.Exit(1)
	}
	appLogger.Info("Animator initialized")
}

func initSessionManager() {
	var err error
	sessionManager, err = service.NewSessionManager(&service.Config{
		Animator:    animator,
		MaxSessions: config.Envs.MaxSessions,
		Logger:      mustLogger("SESSION-MANAGER", config.ColorCyan),
	})
	if err != nil {
		appLogger.Errorf("Creating session manager: %v", err)
		os.Exit(1)
	}
	appLogger.Info("Session manager initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewMazeController(sessionManager, i.MazeParams{
		Width:          uint32(config.Envs.MazeWidth),
		Height:         uint32(config.Envs.MazeHeight),
		VerticalOpen:   config.Envs.VerticalOpen,
		HorizontalOpen: config.Envs.HorizontalOpen,
	})
	if err != nil {
		appLogger.Errorf("Creating maze controller: %v", err)
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initRouter() {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{mazeController},
		Middlewares: []gin.HandlerFunc{api.RequestLogger(mustLogger("HTTP", config.ColorBlue))},
	})
	appLogger.Info("Router initialized")
}

func main() {
	appLogger = mustLogger("APP", config.ColorGreen)

	initAnimator()
	initSessionManager()
	defer sessionManager.StopAll()
	initMazeController()
	initRouter()

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		appLogger.Info("Shutting down")
		sessionManager.StopAll()
		os.Exit(0)
	}()

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Errorf("Starting server: %v", err)
		os.Exit(1)
	}
}
