package widget

import (
	"github.com/AllenDang/giu"
	"image"
	"image/color"
)

const (
	marginY     = 8
	labelHeight = 18
)

var (
	imageHoverOverlayColor = color.RGBA{R: 255, G: 255, B: 255, A: 64}
	selectedOverlayColor   = color.RGBA{R: 66, G: 150, B: 250, A: 96}
	labelColor             = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

type Thumbnail struct {
	Texture *giu.Texture
	Width   int
	Height  int
	Label   string
}

// ThumbnailListWidget is the vertical, scrollable list of thumbnails with
// their labels. Clicking a thumbnail calls onClick with its index.
type ThumbnailListWidget struct {
	thumbnails []Thumbnail
	selected   int
	width      float32
	height     float32
	onClick    func(int)
}

func ThumbnailList(thumbnails []Thumbnail, selected int, onClick func(int)) *ThumbnailListWidget {
	return &ThumbnailListWidget{
		thumbnails: thumbnails,
		selected:   selected,
		onClick:    onClick,
	}
}

func (s *ThumbnailListWidget) Size(width float32, height float32) *ThumbnailListWidget {
	s.width = width
	s.height = height
	return s
}

func (s *ThumbnailListWidget) Build() {
	giu.Child().
		Layout(giu.Custom(func() {
			pos := giu.GetCursorScreenPos()
			canvas := giu.GetCanvas()
			mousePos := giu.GetMousePos()
			// Rows scrolled out of the child are still laid out
			hovered := giu.IsWindowHovered(giu.HoveredFlagsNone)

			startY := 0
			for i, thumbnail := range s.thumbnails {
				start := image.Point{X: pos.X, Y: pos.Y + startY}
				end := image.Point{X: start.X + thumbnail.Width, Y: start.Y + thumbnail.Height}
				area := image.Rectangle{Min: start, Max: end.Add(image.Point{Y: labelHeight})}
				startY += thumbnail.Height + labelHeight + marginY

				if thumbnail.Texture != nil {
					canvas.AddImage(thumbnail.Texture, start, end)
				}
				canvas.AddText(image.Point{X: start.X, Y: end.Y}, labelColor, thumbnail.Label)

				if i == s.selected {
					canvas.AddRectFilled(area.Min, area.Max, selectedOverlayColor, 0, giu.DrawFlagsNone)
				}
				if hovered && mousePos.In(area) {
					giu.SetMouseCursor(giu.MouseCursorHand)
					if giu.IsMouseClicked(giu.MouseButtonLeft) {
						s.onClick(i)
					}
					canvas.AddRectFilled(area.Min, area.Max, imageHoverOverlayColor, 0, giu.DrawFlagsNone)
				}
			}
			// Reserves the drawn area so that the child scrolls
			giu.Dummy(s.width, float32(startY)).Build()
		})).
		Border(false).
		Size(s.width, s.height).
		Build()
}
