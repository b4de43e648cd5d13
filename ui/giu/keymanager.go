package giu

import (
	"github.com/AllenDang/giu"
)

type KeyDef struct {
	key         giu.Key
	controlDown bool
	name        string
	action      func()
}

// KeyManager runs the action of every shortcut pressed during the frame.
type KeyManager struct {
	keys []*KeyDef
}

func NewKeyManager() *KeyManager {
	return &KeyManager{}
}

func (s *KeyManager) Add(name string, key giu.Key, action func()) *KeyManager {
	s.keys = append(s.keys, &KeyDef{key: key, name: name, action: action})
	return s
}

func (s *KeyManager) AddWithControl(name string, key giu.Key, action func()) *KeyManager {
	s.keys = append(s.keys, &KeyDef{key: key, controlDown: true, name: name, action: action})
	return s
}

func (s *KeyManager) HandleKeys(isPressed func(giu.Key) bool, controlDown bool) {
	for _, def := range s.keys {
		if def.controlDown == controlDown && isPressed(def.key) {
			def.action()
		}
	}
}
