// README: Conversation history and last-search context for one user.
package convo

import (
	"time"

	"ankago/internal/types"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	ID        types.ID  `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Context is the last known search state for one user. Empty string / false
// mean cleared; the store never distinguishes cleared from absent.
type Context struct {
	LastOrigin         string
	LastDestination    string
	LastVehicleType    string
	LastBodyType       string
	LastCargoType      string
	LastIsRefrigerated bool
	LastTotalCount     int
	LastOffset         int
	LastShownCount     int
	LastJobIDs         []string
	SwearWarned        bool
}

// Conversation is the append-only message history plus the current context.
type Conversation struct {
	UserID   types.ID
	Messages []Message
	Context  Context
}
