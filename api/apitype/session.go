package apitype

import (
	"github.com/google/uuid"
)

// SessionId identifies one folder scan. Results tagged with an older
// session are stale.
type SessionId string

const NoSession = SessionId("")

func NewSessionId() SessionId {
	return SessionId(uuid.NewString())
}

// Generation increases on every gallery selection.
type Generation uint64
