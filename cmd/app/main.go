package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/prasetyowira/qrbooth/api"
	"github.com/prasetyowira/qrbooth/booth"
	"github.com/prasetyowira/qrbooth/config"
	"github.com/prasetyowira/qrbooth/constant"
	appLogger "github.com/prasetyowira/qrbooth/infrastructure/logger"
	"github.com/prasetyowira/qrbooth/infrastructure/metadata"
	"github.com/prasetyowira/qrbooth/infrastructure/qrcode"
	"github.com/prasetyowira/qrbooth/plugin"
)

func main() {
	// Load configuration from environment variables
	cfg := config.LoadConfig()

	// Initialize logger based on environment
	isProduction := cfg.LogLevel == "INFO"
	appLogger.Initialize(isProduction)
	defer appLogger.Close()

	appLogger.Info(constant.MsgApplicationStarting, appLogger.LoggerInfo{
		ContextFunction: constant.CtxMain,
		Data: map[string]interface{}{
			constant.DataPort:        cfg.Port,
			constant.DataDirectory:   cfg.OutputDir,
			constant.DataDBPath:      cfg.MetadataDB,
			constant.DataEnvironment: cfg.LogLevel,
		},
	})

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		appLogger.Fatal("Failed to create output directory", appLogger.LoggerInfo{
			ContextFunction: constant.CtxMain,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeAppCycle,
				Message: err.Error(),
				Type:    constant.ErrTypeApp,
			},
			Data: map[string]interface{}{
				constant.DataDirectory: cfg.OutputDir,
			},
		})
	}

	// Create the picture metadata store
	store, err := metadata.NewStore(cfg.MetadataDB)
	if err != nil {
		appLogger.Fatal(constant.MsgFailedToInitMetadata, appLogger.LoggerInfo{
			ContextFunction: constant.CtxMain,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeAppMetaInit,
				Message: err.Error(),
				Type:    constant.ErrTypeApp,
			},
			Data: map[string]interface{}{
				constant.DataDBPath: cfg.MetadataDB,
			},
		})
	}
	defer store.Close()

	// Build the plugin and run its configuration lifecycle
	registry := booth.NewRegistry()
	qr := plugin.New(qrcode.NewGenerator(), booth.LayoutText)
	qr.Configure(registry)

	// Host-owned settings and per-run overrides
	registry.Set(constant.SectionGeneral, constant.OptDirectory, cfg.OutputDir)
	registry.Set(constant.SectionWindow, constant.OptTextColor, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	registry.Set(constant.SectionQRCode, constant.OptSave, cfg.SaveQR)
	if cfg.SideText != "" {
		registry.Set(constant.SectionQRCode, constant.OptSideText, cfg.SideText)
	}

	if err := qr.Startup(registry); err != nil {
		appLogger.Fatal("Plugin startup failed", appLogger.LoggerInfo{
			ContextFunction: constant.CtxMain,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeUnknownLocation,
				Message: err.Error(),
				Type:    constant.ErrTypeValidation,
			},
		})
	}

	// Simulate capture cycles the way the booth drives the plugin
	session := booth.NewSession(store)
	win := booth.NewWindow(800, 480)

	for i := 1; i <= cfg.Captures; i++ {
		name := fmt.Sprintf("booth_%04d.png", i)
		picture := filepath.Join(cfg.OutputDir, name)

		appLogger.Info(constant.MsgCaptureCycle, appLogger.LoggerInfo{
			ContextFunction: constant.CtxBooth,
			Data: map[string]interface{}{
				constant.DataCount:   i,
				constant.DataPicture: picture,
			},
		})

		if err := writePicture(picture, i); err != nil {
			appLogger.Error("Failed to write capture", appLogger.LoggerInfo{
				ContextFunction: constant.CtxBooth,
				Error: &appLogger.CustomError{
					Code:    constant.ErrCodeAppCycle,
					Message: err.Error(),
					Type:    constant.ErrTypeApp,
				},
				Data: map[string]interface{}{
					constant.DataPath: picture,
				},
			})
			continue
		}

		session.BeginCapture(picture)
		session.SetPreviousURL(cfg.BaseURL + "/pictures/" + name)

		qr.ProcessingDo(registry, session)

		// Wait screen, redrawn once as the host loop would
		win.Fill(color.Black)
		qr.WaitEnter(registry, session, win)
		qr.WaitDo(session, win)
		if err := win.WritePNG(filepath.Join(cfg.OutputDir, "screen_wait.png")); err != nil {
			appLogger.Error("Failed to write wait screen", appLogger.LoggerInfo{
				ContextFunction: constant.CtxBooth,
				Error: &appLogger.CustomError{
					Code:    constant.ErrCodeAppCycle,
					Message: err.Error(),
					Type:    constant.ErrTypeApp,
				},
			})
		}

		// Print screen
		win.Fill(color.Black)
		qr.PrintEnter(registry, session, win)
		if err := win.WritePNG(filepath.Join(cfg.OutputDir, "screen_print.png")); err != nil {
			appLogger.Error("Failed to write print screen", appLogger.LoggerInfo{
				ContextFunction: constant.CtxBooth,
				Error: &appLogger.CustomError{
					Code:    constant.ErrCodeAppCycle,
					Message: err.Error(),
					Type:    constant.ErrTypeApp,
				},
			})
		}
	}

	// Create API handler and router serving pictures, QR codes and metadata
	handler := api.NewHandler(cfg.OutputDir, store)
	router := api.NewRouter(handler)
	router.SetupRoutes()

	// Configure HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		appLogger.Info(constant.MsgServerStarting, appLogger.LoggerInfo{
			ContextFunction: constant.CtxMain,
			Data: map[string]interface{}{
				constant.DataPort: cfg.Port,
			},
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal(constant.MsgServerFailedToStart, appLogger.LoggerInfo{
				ContextFunction: constant.CtxMain,
				Error: &appLogger.CustomError{
					Code:    constant.ErrCodeAppServerStart,
					Message: err.Error(),
					Type:    constant.ErrTypeApp,
				},
				Data: map[string]interface{}{
					constant.DataPort: cfg.Port,
				},
			})
		}
	}()

	// Set up graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	appLogger.Info(constant.MsgServerShuttingDown, appLogger.LoggerInfo{
		ContextFunction: constant.CtxMain,
	})

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error(constant.MsgServerShutdownError, appLogger.LoggerInfo{
			ContextFunction: constant.CtxMain,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeAppServerShutdown,
				Message: err.Error(),
				Type:    constant.ErrTypeApp,
			},
		})
	}

	appLogger.Info(constant.MsgServerStopped, appLogger.LoggerInfo{
		ContextFunction: constant.CtxMain,
	})
}

// writePicture renders a synthetic capture so the simulator needs no camera
func writePicture(path string, index int) error {
	img := image.NewRGBA(image.Rect(0, 0, 640, 480))
	for y := 0; y < 480; y++ {
		for x := 0; x < 640; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8((x + index*40) % 256),
				G: uint8((y + index*80) % 256),
				B: uint8((index * 50) % 256),
				A: 255,
			})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
