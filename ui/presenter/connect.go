package presenter

import (
	"vincit.fi/image-browser/api"
	"vincit.fi/image-browser/common/event"
)

// ConnectToBroker routes the pipeline events to the GUI on the UI thread.
func ConnectToBroker(broker *event.Broker, gui api.Gui) {
	broker.ConnectToGui(api.ThumbnailReady, gui.AddThumbnail)
	broker.ConnectToGui(api.ScanComplete, gui.CompleteScan)
	broker.ConnectToGui(api.FullImageReady, gui.SetFullImage)
	broker.ConnectToGui(api.FullImageFailed, gui.FailFullImage)
	broker.ConnectToGui(api.ShowError, gui.ShowError)
	broker.ConnectToGui(api.ShowNotice, gui.ShowNotice)
}
