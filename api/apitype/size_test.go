package apitype

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestScaleToFit(t *testing.T) {
	a := assert.New(t)
	type args struct {
		sourceWidth  int
		sourceHeight int
		targetWidth  int
		targetHeight int
	}
	tests := []struct {
		name   string
		args   args
		width  int
		height int
	}{
		{name: "100x100->100x100", args: args{sourceWidth: 100, sourceHeight: 100, targetWidth: 100, targetHeight: 100}, width: 100, height: 100},
		{name: "400x300->100x100", args: args{sourceWidth: 400, sourceHeight: 300, targetWidth: 100, targetHeight: 100}, width: 100, height: 75},
		{name: "300x400->100x50", args: args{sourceWidth: 300, sourceHeight: 400, targetWidth: 100, targetHeight: 50}, width: 37, height: 50},
		{name: "40x30  ->400x100", args: args{sourceWidth: 40, sourceHeight: 30, targetWidth: 400, targetHeight: 100}, width: 133, height: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := ScaleToFit(tt.args.sourceWidth, tt.args.sourceHeight, tt.args.targetWidth, tt.args.targetHeight)
			a.Equal(tt.width, w)
			a.Equal(tt.height, h)
		})
	}
}

func TestSize_ScaleToWidth(t *testing.T) {
	a := assert.New(t)

	t.Run("Landscape keeps aspect ratio", func(t *testing.T) {
		scaled := SizeOf(400, 300).ScaleToWidth(100)
		a.Equal(100, scaled.Width())
		a.Equal(75, scaled.Height())
	})
	t.Run("Portrait keeps aspect ratio", func(t *testing.T) {
		scaled := SizeOf(300, 400).ScaleToWidth(100)
		a.Equal(100, scaled.Width())
		a.Equal(133, scaled.Height())
	})
	t.Run("Upscale", func(t *testing.T) {
		scaled := SizeOf(10, 5).ScaleToWidth(100)
		a.Equal(100, scaled.Width())
		a.Equal(50, scaled.Height())
	})
	t.Run("Very wide image gets at least one pixel height", func(t *testing.T) {
		scaled := SizeOf(10000, 1).ScaleToWidth(100)
		a.Equal(100, scaled.Width())
		a.Equal(1, scaled.Height())
	})
	t.Run("Invalid size", func(t *testing.T) {
		a.False(SizeOf(0, 10).ScaleToWidth(100).IsValid())
		a.False(SizeOf(10, 10).ScaleToWidth(0).IsValid())
	})
}
