package presenter

import (
	"bytes"
	"errors"
	"github.com/stretchr/testify/require"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
	"vincit.fi/image-browser/api"
	"vincit.fi/image-browser/api/apitype"
	"vincit.fi/image-browser/common/event"
)

const waitFor = 5 * time.Second

type StubScanner struct {
	candidates map[string][]*apitype.ImageCandidate
	scans      int

	api.FolderScanner
}

func (s *StubScanner) Scan(directory string) ([]*apitype.ImageCandidate, error) {
	s.scans++
	if candidates, ok := s.candidates[directory]; ok {
		return candidates, nil
	}
	return nil, errors.New("no such directory")
}

type sentCommand struct {
	topic   api.Topic
	command apitype.Command
}

type StubSender struct {
	sent []sentCommand

	api.Sender
}

func (s *StubSender) SendCommandToTopic(topic api.Topic, command apitype.Command) {
	s.sent = append(s.sent, sentCommand{topic: topic, command: command})
}

func (s *StubSender) Commands(topic api.Topic) []apitype.Command {
	var result []apitype.Command
	for _, sent := range s.sent {
		if sent.topic == topic {
			result = append(result, sent.command)
		}
	}
	return result
}

func (s *StubSender) lastThumbnailRequest() *api.LoadThumbnailsCommand {
	commands := s.Commands(api.ThumbnailsRequestLoad)
	if len(commands) == 0 {
		return nil
	}
	return commands[len(commands)-1].(*api.LoadThumbnailsCommand)
}

func (s *StubSender) lastFullImageRequest() *api.LoadFullImageCommand {
	commands := s.Commands(api.FullImageRequestLoad)
	if len(commands) == 0 {
		return nil
	}
	return commands[len(commands)-1].(*api.LoadFullImageCommand)
}

type notice struct {
	title   string
	message string
}

type StubView struct {
	notices   []notice
	errors    []string
	refreshes int
}

func (s *StubView) ShowNotice(title string, message string) {
	s.notices = append(s.notices, notice{title: title, message: message})
}

func (s *StubView) ShowError(message string) {
	s.errors = append(s.errors, message)
}

func (s *StubView) Refresh() {
	s.refreshes++
}

func thumbnailFor(candidate *apitype.ImageCandidate) *apitype.ThumbnailEntry {
	return apitype.NewThumbnailEntry(candidate, image.NewRGBA(image.Rect(0, 0, 100, 75)))
}

func fullImageFor(path string) *apitype.FullImage {
	return apitype.NewFullImage(path, image.NewRGBA(image.Rect(0, 0, 800, 600)))
}

// pumpUntil drains the UI mailbox on the calling goroutine, which plays
// the UI thread, until the condition holds.
func pumpUntil(dispatcher *event.GuiDispatcher, condition func() bool) bool {
	deadline := time.Now().Add(waitFor)
	for time.Now().Before(deadline) {
		dispatcher.Drain()
		if condition() {
			return true
		}
		time.Sleep(time.Millisecond)
	}
	return false
}

func writeImage(t *testing.T, dir string, name string, width int, height int) {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 64, A: 255})
		}
	}

	buffer := &bytes.Buffer{}
	if filepath.Ext(name) == ".png" {
		require.Nil(t, png.Encode(buffer, img))
	} else {
		require.Nil(t, jpeg.Encode(buffer, img, nil))
	}
	require.Nil(t, os.WriteFile(filepath.Join(dir, name), buffer.Bytes(), 0644))
}

func writeTruncatedPng(t *testing.T, dir string, name string) {
	buffer := &bytes.Buffer{}
	require.Nil(t, png.Encode(buffer, image.NewNRGBA(image.Rect(0, 0, 64, 64))))
	require.Nil(t, os.WriteFile(filepath.Join(dir, name), buffer.Bytes()[:buffer.Len()/2], 0644))
}

func writeText(t *testing.T, dir string, name string) {
	require.Nil(t, os.WriteFile(filepath.Join(dir, name), []byte("text"), 0644))
}
