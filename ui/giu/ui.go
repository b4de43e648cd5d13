package giu

import (
	"github.com/AllenDang/giu"
	"time"
	"vincit.fi/image-browser/api"
	"vincit.fi/image-browser/common"
	"vincit.fi/image-browser/common/event"
	"vincit.fi/image-browser/common/logger"
	"vincit.fi/image-browser/ui/giu/widget"
	"vincit.fi/image-browser/ui/presenter"
)

const (
	defaultWindowWidth  = 1024
	defaultWindowHeight = 768
	sidePanelPadding    = 24
	statusLinesHeight   = 48
)

type Ui struct {
	win          *giu.MasterWindow
	dispatcher   *event.GuiDispatcher
	rootPath     string
	started      bool
	textures     *TextureManager
	currentImage *widget.TexturedImage
	chooser      *FolderChooser
	keyManager   *KeyManager

	*presenter.Presenter
}

func NewUi(params *common.Params, scanner api.FolderScanner, sender api.Sender, dispatcher *event.GuiDispatcher) *Ui {
	gui := &Ui{
		win:          giu.NewMasterWindow("Image Browser", defaultWindowWidth, defaultWindowHeight, 0),
		dispatcher:   dispatcher,
		rootPath:     params.RootPath(),
		textures:     NewTextureManager(giu.NewTextureFromRgba, dispatcher.Post),
		currentImage: widget.NewTexturedImage(giu.NewTextureFromRgba, dispatcher.Post),
		Presenter:    presenter.NewPresenter(scanner, sender, &messageView{}),
	}
	gui.chooser = NewFolderChooser(dispatcher.Post, gui.OpenFolder)
	gui.keyManager = NewKeyManager().
		Add("Previous", giu.KeyUp, func() { gui.SelectPrevious() }).
		Add("Previous", giu.KeyLeft, func() { gui.SelectPrevious() }).
		Add("Next", giu.KeyDown, func() { gui.SelectNext() }).
		Add("Next", giu.KeyRight, func() { gui.SelectNext() }).
		Add("First", giu.KeyHome, func() { gui.Select(0) }).
		Add("Last", giu.KeyEnd, func() { gui.Select(len(gui.Entries()) - 1) }).
		AddWithControl("Open folder", giu.KeyO, gui.openFolderChooser)
	return gui
}

func (s *Ui) Run() {
	s.win.Run(s.loop)
}

func (s *Ui) loop() {
	if !s.started {
		s.started = true
		s.OpenFolder(s.rootPath)
	}
	if handled := s.dispatcher.Drain(); handled > 0 && logger.IsLogLevel(logger.TRACE) {
		logger.Trace.Printf("Handled %d UI events", handled)
	}

	renderStart := time.Now()
	s.currentImage.ChangeImage(s.DisplayImage())
	thumbnails := s.textures.Thumbnails(s.Entries())

	giu.SingleWindowWithMenuBar().
		Layout(
			s.menuBar(),
			giu.Custom(func() {
				_, regionHeight := giu.GetAvailableRegion()
				contentHeight := regionHeight - statusLinesHeight
				giu.Row(
					widget.ThumbnailList(thumbnails, s.SelectedIndex(), s.selectThumbnail).
						Size(s.sidePanelWidth(thumbnails), contentHeight),
					giu.Child().
						Layout(widget.ResizableImage(s.currentImage)).
						Border(false).
						Size(-1, contentHeight).
						Flags(giu.WindowFlagsNoScrollbar|giu.WindowFlagsNoScrollWithMouse),
				).Build()
			}),
			giu.Separator(),
			giu.Label(s.folderText()),
			giu.Label(s.DimensionText()),
			giu.PrepareMsgbox(),
		)

	renderTime := time.Since(renderStart)
	if renderTime >= time.Millisecond && logger.IsLogLevel(logger.TRACE) {
		logger.Trace.Printf("Rendered UI in %s", renderTime)
	} else if renderTime >= 10*time.Millisecond {
		logger.Debug.Printf("Rendered UI in %s", renderTime)
	}
	s.handleKeyPress()
}

func (s *Ui) menuBar() giu.Widget {
	return giu.MenuBar().Layout(
		giu.Menu("File").Layout(
			giu.MenuItem("Open folder...").OnClick(s.openFolderChooser),
			giu.Separator(),
			giu.MenuItem("Exit").OnClick(func() {
				s.win.SetShouldClose(true)
			}),
		),
	)
}

func (s *Ui) handleKeyPress() {
	controlDown := giu.IsKeyDown(giu.KeyLeftControl) || giu.IsKeyDown(giu.KeyRightControl)
	s.keyManager.HandleKeys(giu.IsKeyPressed, controlDown)
}

func (s *Ui) openFolderChooser() {
	s.chooser.Open()
}

func (s *Ui) selectThumbnail(index int) {
	logger.Trace.Printf("Thumbnail %d clicked", index)
	s.Select(index)
}

func (s *Ui) folderText() string {
	if s.Folder() == "" {
		return "No folder selected"
	}
	if s.IsLoading() {
		return s.Folder() + " (loading...)"
	}
	return s.Folder()
}

func (s *Ui) sidePanelWidth(thumbnails []widget.Thumbnail) float32 {
	width := 0
	for _, thumbnail := range thumbnails {
		if thumbnail.Width > width {
			width = thumbnail.Width
		}
	}
	if width == 0 {
		width = api.DefaultThumbnailWidth
	}
	return float32(width + sidePanelPadding)
}
