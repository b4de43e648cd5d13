package main

import (
	"github.com/AllenDang/giu"
	"vincit.fi/image-browser/backend"
	"vincit.fi/image-browser/common"
	"vincit.fi/image-browser/common/logger"
	gui "vincit.fi/image-browser/ui/giu"
	"vincit.fi/image-browser/ui/presenter"
)

func main() {
	params := common.ParseParams()
	logger.Initialize(logger.StringToLogLevel(params.LogLevel()))

	stores, err := backend.InitializeStores(params.SettingsDir())
	if err != nil {
		logger.Error.Fatalf("Could not open settings: %s", err)
	}
	defer stores.Close()

	brokers := backend.InitializeEventBrokers(params.EventQueueSize(), giu.Update)
	services := backend.InitializeServices(params, stores.Settings, brokers)
	defer services.Close()

	ui := gui.NewUi(params, services.FolderScanner, brokers.Broker, brokers.Dispatcher)
	presenter.ConnectToBroker(brokers.Broker, ui)

	// Shown once the window is up
	if err := backend.ApplyParams(params, stores.Settings); err != nil {
		brokers.Broker.SendError("Invalid thumbnail width, using the stored one", err)
	}

	ui.Run()
}
