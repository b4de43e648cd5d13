package giu

import (
	"github.com/AllenDang/giu"
	"vincit.fi/image-browser/common/logger"
)

// messageView shows notices in giu message boxes.
type messageView struct{}

func (s *messageView) ShowNotice(title string, message string) {
	logger.Info.Printf("%s: %s", title, message)
	giu.Msgbox(title, message)
}

func (s *messageView) ShowError(message string) {
	logger.Error.Printf("Error: %s", message)
	giu.Msgbox("Error", message)
}

func (s *messageView) Refresh() {
	giu.Update()
}
