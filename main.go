package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/texture-checker/internal/config"
	"github.com/ytget/texture-checker/internal/export"
	"github.com/ytget/texture-checker/internal/ui"
	"github.com/ytget/texture-checker/internal/validate"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const AppName = "Texture Checker"

func main() {
	log.Printf("%s v%s starting...", AppName, version)

	myApp := app.NewWithID(config.AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)

	checker := validate.NewService(nil)
	exporter := export.NewService()

	ui.NewRootUI(myWindow, checker, exporter, settings)

	myWindow.ShowAndRun()
}
