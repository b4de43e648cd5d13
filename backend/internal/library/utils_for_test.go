package library

import (
	"errors"
	"image"
	"sync"
	"sync/atomic"
	"time"
	"vincit.fi/image-browser/api"
	"vincit.fi/image-browser/api/apitype"
)

type StubSender struct {
	mux      sync.Mutex
	commands map[api.Topic][]apitype.Command
	received chan api.Topic

	api.Sender
}

func NewStubSender() *StubSender {
	return &StubSender{
		commands: map[api.Topic][]apitype.Command{},
		received: make(chan api.Topic, 1000),
	}
}

func (s *StubSender) SendCommandToTopic(topic api.Topic, command apitype.Command) {
	s.mux.Lock()
	s.commands[topic] = append(s.commands[topic], command)
	s.mux.Unlock()
	s.received <- topic
}

func (s *StubSender) SendError(message string, err error) {
	s.SendCommandToTopic(api.ShowError, &api.ErrorCommand{Message: message})
}

// WaitFor blocks until a command to the topic has been received.
func (s *StubSender) WaitFor(topic api.Topic, timeout time.Duration) bool {
	deadline := time.After(timeout)
	for {
		select {
		case received := <-s.received:
			if received == topic {
				return true
			}
		case <-deadline:
			return false
		}
	}
}

func (s *StubSender) Commands(topic api.Topic) []apitype.Command {
	s.mux.Lock()
	defer s.mux.Unlock()
	return append([]apitype.Command{}, s.commands[topic]...)
}

type StubSettings struct {
	width int
	reads atomic.Int32

	api.Settings
}

func (s *StubSettings) ThumbnailWidth() int {
	s.reads.Add(1)
	return s.width
}

// StubImageLoader fails every path listed in failing and tracks how many
// decodes run at the same time.
type StubImageLoader struct {
	failing   map[string]bool
	delay     time.Duration
	running   atomic.Int32
	maxActive atomic.Int32

	api.ImageLoader
}

func (s *StubImageLoader) LoadThumbnail(path string, width int) (*image.RGBA, error) {
	active := s.running.Add(1)
	defer s.running.Add(-1)
	for {
		highest := s.maxActive.Load()
		if active <= highest || s.maxActive.CompareAndSwap(highest, active) {
			break
		}
	}
	time.Sleep(s.delay)

	if s.failing[path] {
		return nil, errors.New("decode failed")
	}
	return image.NewRGBA(image.Rect(0, 0, width, width/2)), nil
}

func (s *StubImageLoader) LoadFull(path string) (*apitype.FullImage, error) {
	time.Sleep(s.delay)
	if s.failing[path] {
		return nil, errors.New("decode failed")
	}
	return apitype.NewFullImage(path, image.NewRGBA(image.Rect(0, 0, 640, 480))), nil
}
