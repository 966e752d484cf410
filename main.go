// Package main provides the entry point for the Booth Mapper application.
package main

import (
	"log"
	"os"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"

	"booth-mapper/internal/app"
	"booth-mapper/internal/config"
	"booth-mapper/ui/mainwindow"
)

const appTitle = "Booth Mapper"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	fyneApp := fyneapp.NewWithID("io.boothmapper.app")
	fyneApp.Settings().SetTheme(&app.BoothMapperTheme{})

	// Loader completions are marshalled onto the main event queue so state
	// mutation never races the render or input handlers.
	state := app.NewState(cfg, fyne.Do)
	defer state.Close()

	win := mainwindow.New(fyneApp, state)
	win.SetTitle(appTitle)

	// A plan image path on the command line overrides the remembered one.
	if len(os.Args) > 1 {
		state.LoadImage(os.Args[1])
	}

	setupHotReload(win)

	win.ShowAndRun()
}

// setupHotReload configures automatic restart detection when the binary is
// recompiled during development.
func setupHotReload(win *mainwindow.MainWindow) {
	reloader := app.NewHotReloader(2 * time.Second)
	if reloader == nil {
		log.Println("Hot reload: unable to determine executable path")
		return
	}

	log.Printf("Hot reload: watching %s (modified %s)",
		reloader.ExecPath(), reloader.StartupTime().Format("15:04:05"))

	reloader.OnNewBinary(func() {
		log.Println("Hot reload: newer binary detected")
		// The watcher fires on its own goroutine; dialogs belong on the
		// main event queue.
		fyne.Do(func() {
			showRestartDialog(reloader, win)
		})
	})

	reloader.Start()
}

func showRestartDialog(reloader *app.HotReloader, win *mainwindow.MainWindow) {
	dialog.ShowConfirm("New Version Available",
		"The application binary has been updated.\nRestart now?",
		func(restart bool) {
			if !restart {
				return
			}
			log.Println("Hot reload: restarting...")
			if err := reloader.Restart(); err != nil {
				log.Printf("Hot reload: restart failed: %v", err)
			}
		}, win)
}
