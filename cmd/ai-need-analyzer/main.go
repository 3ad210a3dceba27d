package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"sync/atomic"

	"ai-need-analyzer/internal/charts"
	"ai-need-analyzer/internal/config"
	"ai-need-analyzer/internal/controllers"
	"ai-need-analyzer/internal/fonts"
	"ai-need-analyzer/internal/loader"
	"ai-need-analyzer/internal/logger"
	"ai-need-analyzer/internal/models"
	"ai-need-analyzer/internal/shutdown"
	"ai-need-analyzer/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/golang/freetype/truetype"
)

const (
	AppName    = "AI Need Analyzer"
	AppID      = "org.survey.ai-need-analyzer"
	AppVersion = "1.0.0"
)

// Application holds the wired components of the running program
type Application struct {
	// Core components
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger
	config  *config.Config

	// MVC Components
	controller *controllers.MainController
	view       *views.MainView

	// Models
	table *models.SurveyTable

	// Lifecycle management
	shutdown *shutdown.Manager
	stopped  atomic.Bool
}

func main() {
	cfg, err := config.Load(os.Getenv(config.EnvPrefix + "_CONFIG"))
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	appLogger, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("Logger initialization failed: %v", err)
	}

	appLogger.Info("Application", "Application starting", map[string]interface{}{
		"version":    AppVersion,
		"go_version": runtime.Version(),
		"data_file":  cfg.Data.File,
		"log_level":  cfg.Log.Level,
	})

	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	fyneApp := app.NewWithID(AppID)

	chartFont := applyFont(fyneApp, cfg, appLogger)

	application, err := NewApplication(fyneApp, cfg, appLogger, chartFont)
	if err != nil {
		appLogger.Error("Application", err, map[string]interface{}{
			"data_file": cfg.Data.File,
		})
		views.ShowFatalError(fyneApp, "Error", fmt.Errorf(
			"failed to read the spreadsheet (%s): %w\nMake sure the file is in the application directory", cfg.Data.File, err))
		return
	}

	application.Run()
	appLogger.Info("Application", "Application terminated successfully", nil)
}

// NewApplication loads the survey and wires the window around it. A load
// failure is returned before any window is created.
func NewApplication(fyneApp fyne.App, cfg *config.Config, appLogger logger.Logger, chartFont *truetype.Font) (*Application, error) {
	table, err := loader.New(appLogger).Load(cfg.Data.File)
	if err != nil {
		return nil, err
	}

	window := fyneApp.NewWindow(views.Title)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.SetFixedSize(true)
	window.SetMaster()
	window.CenterOnScreen()

	renderer := charts.NewRenderer(cfg.Chart.Width, cfg.Chart.Height, chartFont)
	mainView := views.NewMainView(fyneApp, window)
	mainController := controllers.NewMainController(table, renderer, appLogger)
	mainController.SetMainView(mainView)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     appLogger,
		config:     cfg,
		controller: mainController,
		view:       mainView,
		table:      table,
		shutdown:   shutdown.NewManager(appLogger),
	}

	application.setupWindowEvents()
	application.setupShutdown()

	appLogger.Info("Application", "Application initialized successfully", map[string]interface{}{
		"rows":       table.Len(),
		"industries": table.Industries(),
	})

	return application, nil
}

// Run shows the main window and blocks until the application quits
func (app *Application) Run() {
	app.logger.Info("Application", "Starting application UI", nil)

	app.shutdown.Listen()
	app.view.Show()
	app.fyneApp.Run()

	app.stopped.Store(true)
	app.shutdown.Shutdown()
}

// setupShutdown registers components in start order; they stop in reverse.
// UI steps are skipped once the event loop has already exited.
func (app *Application) setupShutdown() {
	app.shutdown.Register(shutdown.Func(func() {
		if !app.stopped.Load() {
			fyne.Do(app.fyneApp.Quit)
		}
	}))
	app.shutdown.Register(shutdown.Func(func() {
		if !app.stopped.Load() {
			fyne.Do(app.view.CloseCharts)
		}
	}))
	app.shutdown.Register(app.controller)
}

// setupWindowEvents configures window lifecycle events
func (app *Application) setupWindowEvents() {
	app.window.SetOnClosed(func() {
		app.logger.Info("Application", "Window closed, performing cleanup", nil)
	})
}

// applyFont installs a Hangul-capable font into the Fyne theme and returns
// it parsed for the chart renderer. Missing fonts fall back to the defaults.
func applyFont(fyneApp fyne.App, cfg *config.Config, appLogger logger.Logger) *truetype.Font {
	font, err := fonts.Resolve(cfg.Font.Path)
	if err != nil {
		appLogger.Warning("Application", "font unavailable, using defaults", map[string]interface{}{
			"path":  cfg.Font.Path,
			"error": err.Error(),
		})
		return nil
	}
	if font == nil {
		appLogger.Warning("Application", "no Hangul font found, using defaults", map[string]interface{}{
			"candidates": fonts.Candidates(runtime.GOOS),
		})
		return nil
	}

	fyneApp.Settings().SetTheme(views.NewFontTheme(font.Name(), font.Data))

	parsed, err := font.TrueType()
	if err != nil {
		appLogger.Warning("Application", "font not usable for charts", map[string]interface{}{
			"path":  font.Path,
			"error": err.Error(),
		})
		return nil
	}

	appLogger.Debug("Application", "font applied", map[string]interface{}{
		"path": font.Path,
	})
	return parsed
}
