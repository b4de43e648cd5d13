package event

import (
	"fmt"
	messagebus "github.com/vardius/message-bus"
	"reflect"
	"vincit.fi/image-browser/api"
	"vincit.fi/image-browser/api/apitype"
	"vincit.fi/image-browser/common/logger"
)

type Broker struct {
	bus        messagebus.MessageBus
	dispatcher *GuiDispatcher

	api.Sender
}

func InitBus(queueSize int, dispatcher *GuiDispatcher) *Broker {
	return &Broker{
		bus:        messagebus.New(queueSize),
		dispatcher: dispatcher,
	}
}

func (s *Broker) Subscribe(topic api.Topic, fn interface{}) {
	err := s.bus.Subscribe(string(topic), fn)
	if err != nil {
		logger.Error.Panic("Could not subscribe ", err)
	}
}

// ConnectToGui subscribes the callback so that it is always run on the
// UI thread through the dispatcher.
func (s *Broker) ConnectToGui(topic api.Topic, callback interface{}) {
	callbackValue := reflect.ValueOf(callback)
	cb := func(params ...interface{}) {
		args := make([]reflect.Value, 0, len(params))
		for _, param := range params {
			args = append(args, reflect.ValueOf(param))
		}
		s.dispatcher.Post(func() {
			if logger.IsLogLevel(logger.TRACE) {
				logger.Trace.Printf("Calling topic '%s' with: %s", topic, params)
			}
			callbackValue.Call(args)
		})
	}
	err := s.bus.Subscribe(string(topic), cb)
	if err != nil {
		logger.Error.Panic("Could not subscribe ", err)
	}
}

func (s *Broker) SendCommandToTopic(topic api.Topic, command apitype.Command) {
	logger.Trace.Printf("Sending command to '%s'", topic)
	s.bus.Publish(string(topic), command)
}

func (s *Broker) SendError(message string, err error) {
	formattedMessage := message
	if err != nil {
		formattedMessage = fmt.Sprintf("%s\n%s", message, err.Error())
	}
	logger.Error.Printf("Error: %s", formattedMessage)
	s.SendCommandToTopic(api.ShowError, &api.ErrorCommand{Message: formattedMessage})
}
