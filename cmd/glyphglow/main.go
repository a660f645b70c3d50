// glyphglow renders a glowing cube that lights two extruded characters.
// w and s move the cube, a and d move the camera, escape quits.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
	"gopkg.in/natefinch/lumberjack.v2"

	"glyphglow/internal/app"
	"glyphglow/internal/config"
	"glyphglow/internal/fontload"
	"glyphglow/internal/game"
)

// defined flags
var (
	levelFlag   logLevelFlag
	configFlag  = flag.String("config", "", "YAML file overriding the built-in scene")
	logFileFlag = flag.String("logfile", "", "write logs to this file instead of the console")
	fontURLFlag = flag.String("font-url", "", "typeface JSON or OpenType font to extrude the text from")
	overlayFlag = flag.Bool("overlay", false, "show frame rate and font state in the window")
)

func init() {
	// GLFW and GL calls must stay on the main thread
	runtime.LockOSThread()

	levelFlag.value = slog.LevelInfo
	flag.Var(&levelFlag, "loglevel", "set log level")
}

func main() {
	flag.Parse()
	slog.SetLogLoggerLevel(levelFlag.value)
	if *logFileFlag != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   *logFileFlag,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
		})
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		closer.Exit(1)
	}
	if *fontURLFlag != "" {
		cfg.FontURL = *fontURLFlag
	}
	config.SetFPSLimit(cfg.FPSLimit)

	if err := run(cfg); err != nil {
		slog.Error("Terminated", "error", err)
		closer.Exit(1)
	}
	closer.Close()
}

func run(cfg config.Config) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}

	window, err := app.SetupWindow(cfg.Window)
	if err != nil {
		glfw.Terminate()
		return err
	}

	// A signal handler cannot touch GL from its own goroutine. It asks the
	// loop to stop and waits until the main thread has cleaned up.
	done := make(chan struct{})
	closer.Bind(shutdownHandler(func() {
		window.SetShouldClose(true)
		glfw.PostEmptyEvent()
	}, done))
	defer func() {
		glfw.Terminate()
		close(done)
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	slog.Info("Loading font", "url", cfg.FontURL)
	font := fontload.Load(ctx, fontload.NewClient(nil), cfg.FontURL)

	session, err := game.NewSession(cfg, font)
	if err != nil {
		return err
	}
	a, err := app.New(window, session, app.Options{Overlay: *overlayFlag})
	if err != nil {
		return err
	}
	defer a.Dispose()

	a.Run()
	slog.Info("Window closed", "frames", session.Frames)
	return nil
}

// shutdownHandler returns a cleanup that calls stop and blocks until done is
// closed. Once done is closed it returns at once without calling stop.
func shutdownHandler(stop func(), done <-chan struct{}) func() {
	return func() {
		select {
		case <-done:
			return
		default:
		}
		stop()
		<-done
	}
}
