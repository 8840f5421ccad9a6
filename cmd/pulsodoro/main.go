package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"pulsodoro/internal/control"
	"pulsodoro/internal/core/model"
	"pulsodoro/internal/core/timekeeper"
	"pulsodoro/internal/media"
	"pulsodoro/internal/platform"
	"pulsodoro/internal/session"
	"pulsodoro/internal/sound"
	"pulsodoro/internal/storage"
	"pulsodoro/internal/ui/activity"
	"pulsodoro/internal/ui/preferences"
	"pulsodoro/internal/ui/timerview"
	"pulsodoro/internal/ui/tray"
	"pulsodoro/internal/wallpaper"
	"pulsodoro/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appName = "Pulsodoro"

// Build variables - set by ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	var configPath string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "runtime config file (default is <user config dir>/pulsodoro/config.yml)")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("Pulsodoro %s (%s)\n", version, commit)
		return
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if cfg.LogFile != "" {
		logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Printf("log file: %v", err)
		} else {
			defer logFile.Close()
			log.SetOutput(logFile)
		}
	}

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			log.Printf("single instance: %v, activated the running one", err)
		} else {
			log.Printf("single instance: %v", err)
		}
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	store := storage.NewStore(cfg.ConfigDir)
	settings, err := store.Load()
	if err != nil {
		log.Printf("settings: %v, using defaults", err)
	}

	fyneApp := app.NewWithID("com.pulsodoro.app")
	fyneApp.SetIcon(resources.MustIcon("logo.svg"))

	var autostart session.Autostarter
	if loginItem, err := platform.NewLoginItem(appName); err != nil {
		log.Printf("autostart: %v", err)
	} else {
		if err := loginItem.Sync(settings.LaunchAtLogin); err != nil {
			log.Printf("autostart: %v", err)
		}
		autostart = loginItem
	}

	keeper := timekeeper.New(settings.Durations(), timekeeper.Config{TickInterval: cfg.TickInterval})
	pomodoro := session.New(keeper, settings, session.Options{
		Store:     store,
		Wallpaper: wallpaper.New(platform.NewWallpaperSetter()),
		Player:    sound.NewPlayer(),
		Notifier:  notifier{app: fyneApp},
		Autostart: autostart,
	})
	defer pomodoro.Shutdown()

	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		log.Printf("system tray unsupported on this platform")
		return
	}

	playMusic := func() {
		link, err := media.URL(pomodoro.Settings().CustomMediaID)
		if err != nil {
			log.Printf("media: %v", err)
			return
		}
		if err := fyneApp.OpenURL(link); err != nil {
			log.Printf("media: open %s: %v", link, err)
		}
	}

	timerWindow := timerview.New(fyneApp, keeper.Status(), activity.NewPicker(nil, nil), timerview.Controls{
		OnStart: func() { pomodoro.Start() },
		OnPause: func() { pomodoro.Pause() },
		OnReset: func() { pomodoro.Reset() },
		OnSkip:  func() { pomodoro.Skip() },
		OnMusic: playMusic,
	})
	timerWindow.SetBackgrounds(settings.FocusBackground, settings.BreakBackground)
	timerWindow.SetAlwaysOnTop(settings.AlwaysOnTop)

	prefsWindow := preferences.New(fyneApp, settings, func(updated model.Settings) {
		applied, err := pomodoro.UpdateSettings(updated)
		if err != nil {
			log.Printf("settings: %v", err)
		}
		timerWindow.SetBackgrounds(applied.FocusBackground, applied.BreakBackground)
		timerWindow.SetAlwaysOnTop(applied.AlwaysOnTop)
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	trayManager := tray.New(desktopApp, tray.Callbacks{
		OnShowTimer: timerWindow.Show,
		OnToggle:    func() { pomodoro.Toggle() },
		OnReset:     func() { pomodoro.Reset() },
		OnSkip:      func() { pomodoro.Skip() },
		OnMusic:     playMusic,
		OnPreferences: func() {
			prefsWindow.UpdateSettings(pomodoro.Settings())
			prefsWindow.Show()
		},
		OnQuit: func() {
			cancel()
			pomodoro.Shutdown()
			fyneApp.Quit()
		},
	})

	guard.OnActivate(func() {
		fyne.Do(timerWindow.Show)
	})

	if cfg.ControlEnabled {
		server := control.NewServer(cfg.SocketPath, pomodoro)
		if err := server.Start(); err != nil {
			log.Printf("control: %v", err)
		} else {
			defer server.Stop()
		}
	}

	events := keeper.Subscribe(64)
	go pomodoro.Watch(events, func(event timekeeper.Event) {
		fyne.Do(func() {
			trayManager.SetStatus(event.Status)
		})
		timerWindow.Update(event.Status)
	})
	go keeper.Run(ctx)

	timerWindow.Show()
	fyneApp.Run()
}

type notifier struct {
	app fyne.App
}

func (n notifier) Notify(title, message string) {
	fyne.Do(func() {
		n.app.SendNotification(fyne.NewNotification(title, message))
	})
}
