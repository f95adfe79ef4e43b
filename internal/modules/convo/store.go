// README: Conversation store backed by Redis hashes and lists.
package convo

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"ankago/internal/types"
)

const (
	ctxKeyPrefix  = "convo:%s:ctx"
	msgsKeyPrefix = "convo:%s:msgs"
	// Conversations idle longer than this expire; the dialogue core never
	// deletes them itself.
	keyTTL = 7 * 24 * time.Hour
	// historyWindow is how many trailing messages Get loads.
	historyWindow = 20
)

// Context hash field names. These are the store's wire format; renaming one
// orphans existing conversations.
const (
	fieldOrigin       = "lastOrigin"
	fieldDestination  = "lastDestination"
	fieldVehicleType  = "lastVehicleType"
	fieldBodyType     = "lastBodyType"
	fieldCargoType    = "lastCargoType"
	fieldRefrigerated = "lastIsRefrigerated"
	fieldTotalCount   = "lastTotalCount"
	fieldOffset       = "lastOffset"
	fieldShownCount   = "lastShownCount"
	fieldJobIDs       = "lastJobIds"
	fieldSwearWarned  = "swearWarned"
)

type Store struct {
	redis *redis.Client
}

func NewStore(redis *redis.Client) *Store {
	return &Store{redis: redis}
}

// Get loads a conversation, or nil when the user has never written. Partial
// or malformed stored values load as zero values rather than failing the
// turn.
func (s *Store) Get(ctx context.Context, userID types.ID) (*Conversation, error) {
	fields, err := s.redis.HGetAll(ctx, ctxKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("load context: %w", err)
	}

	raw, err := s.redis.LRange(ctx, msgsKey(userID), -historyWindow, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("load messages: %w", err)
	}

	if len(fields) == 0 && len(raw) == 0 {
		return nil, nil
	}

	conv := &Conversation{
		UserID:  userID,
		Context: parseContext(fields),
	}
	for _, item := range raw {
		var m Message
		if err := json.Unmarshal([]byte(item), &m); err != nil {
			continue // a corrupt entry never breaks the conversation
		}
		conv.Messages = append(conv.Messages, m)
	}
	return conv, nil
}

// Append records the user message and the assistant reply and merges the
// context patch, all in one pipeline so a cancelled turn persists nothing.
func (s *Store) Append(ctx context.Context, userID types.ID, userText, replyText string, patch ContextPatch) error {
	now := time.Now().UTC()
	userMsg := Message{ID: newMessageID(), Role: RoleUser, Content: userText, Timestamp: now}
	replyMsg := Message{ID: newMessageID(), Role: RoleAssistant, Content: replyText, Timestamp: now}

	userJSON, err := json.Marshal(userMsg)
	if err != nil {
		return fmt.Errorf("marshal user message: %w", err)
	}
	replyJSON, err := json.Marshal(replyMsg)
	if err != nil {
		return fmt.Errorf("marshal reply message: %w", err)
	}

	hset := patchToHash(patch)

	pipe := s.redis.TxPipeline()
	pipe.RPush(ctx, msgsKey(userID), userJSON, replyJSON)
	pipe.Expire(ctx, msgsKey(userID), keyTTL)
	if len(hset) > 0 {
		pipe.HSet(ctx, ctxKey(userID), hset)
	}
	pipe.Expire(ctx, ctxKey(userID), keyTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("append conversation: %w", err)
	}
	return nil
}

// patchToHash translates the tagged patch into the store's string-sentinel
// convention: cleared fields are written as "" / "false" / "0", untouched
// fields are not written at all.
func patchToHash(p ContextPatch) map[string]string {
	h := make(map[string]string)

	putStr := func(field string, f StringField) {
		if v, ok := f.StoreValue(); ok {
			h[field] = v
		}
	}
	putBool := func(field string, f BoolField) {
		if v, ok := f.StoreValue(); ok {
			h[field] = v
		}
	}
	putInt := func(field string, f IntField) {
		if v, ok := f.StoreValue(); ok {
			h[field] = strconv.Itoa(v)
		}
	}

	putStr(fieldOrigin, p.Origin)
	putStr(fieldDestination, p.Destination)
	putStr(fieldVehicleType, p.VehicleType)
	putStr(fieldBodyType, p.BodyType)
	putStr(fieldCargoType, p.CargoType)
	putBool(fieldRefrigerated, p.IsRefrigerated)
	putInt(fieldTotalCount, p.TotalCount)
	putInt(fieldOffset, p.Offset)
	putInt(fieldShownCount, p.ShownCount)
	putBool(fieldSwearWarned, p.SwearWarned)
	if ids, ok := p.JobIDs.StoreValue(); ok {
		h[fieldJobIDs] = strings.Join(ids, ",")
	}
	return h
}

func parseContext(fields map[string]string) Context {
	var c Context
	c.LastOrigin = fields[fieldOrigin]
	c.LastDestination = fields[fieldDestination]
	c.LastVehicleType = fields[fieldVehicleType]
	c.LastBodyType = fields[fieldBodyType]
	c.LastCargoType = fields[fieldCargoType]
	c.LastIsRefrigerated = fields[fieldRefrigerated] == "true"
	c.LastTotalCount = parseIntDefault(fields[fieldTotalCount])
	c.LastOffset = parseIntDefault(fields[fieldOffset])
	c.LastShownCount = parseIntDefault(fields[fieldShownCount])
	c.SwearWarned = fields[fieldSwearWarned] == "true"
	if ids := fields[fieldJobIDs]; ids != "" {
		c.LastJobIDs = strings.Split(ids, ",")
	}
	return c
}

func parseIntDefault(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func newMessageID() types.ID {
	return types.ID(uuid.NewString())
}

func ctxKey(userID types.ID) string {
	return fmt.Sprintf(ctxKeyPrefix, string(userID))
}

func msgsKey(userID types.ID) string {
	return fmt.Sprintf(msgsKeyPrefix, string(userID))
}
