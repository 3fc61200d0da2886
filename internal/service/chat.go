package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"gametop-backend/internal/model"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("chat session not found")
	ErrSessionBusy     = errors.New("a reply is still pending for this session")
	ErrEmptyMessage    = errors.New("message text is required")
)

// FallbackReply is appended whenever the completion service fails or returns
// nothing, so a user message is never left unanswered.
const FallbackReply = "خطأ في الاتصال. يرجى المحاولة لاحقاً."

// Completer is the completion service capability: one turn in, one reply out.
// history is the transcript before the current message.
type Completer interface {
	Complete(ctx context.Context, history []model.ChatMessage, message string) (string, error)
}

type disabledCompleter struct{}

func (disabledCompleter) Complete(context.Context, []model.ChatMessage, string) (string, error) {
	return "", errors.New("completion service not configured")
}

// DisabledCompleter is installed when no API key is configured. Every send
// then resolves to the fallback reply instead of crashing the service.
func DisabledCompleter() Completer { return disabledCompleter{} }

type chatSession struct {
	mu       sync.Mutex
	messages []model.ChatMessage
	sending  bool
	lastUsed time.Time
}

// ChatService owns the in-memory chat transcripts. Sessions are append-only,
// single-flight, and pruned after the idle TTL; nothing is persisted.
type ChatService struct {
	completer Completer
	ttl       time.Duration

	mu       sync.Mutex
	sessions map[string]*chatSession
	stop     chan struct{}
	stopOnce sync.Once
}

func NewChatService(completer Completer, ttl time.Duration) *ChatService {
	return &ChatService{
		completer: completer,
		ttl:       ttl,
		sessions:  make(map[string]*chatSession),
		stop:      make(chan struct{}),
	}
}

// CreateSession opens a new empty session and returns its id.
func (s *ChatService) CreateSession() string {
	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = &chatSession{lastUsed: time.Now()}
	s.mu.Unlock()
	return id
}

// Messages returns a snapshot of the transcript.
func (s *ChatService) Messages(sessionID string) ([]model.ChatMessage, error) {
	sess, ok := s.lookup(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return snapshot(sess.messages), nil
}

// Send appends the user message, asks the completion service for a reply and
// appends it. A send while a prior one is outstanding is rejected without
// touching the transcript. Service failures become the fallback reply; the
// session always returns to idle.
func (s *ChatService) Send(ctx context.Context, sessionID, text string) (model.ChatMessage, []model.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.ChatMessage{}, nil, ErrEmptyMessage
	}

	sess, ok := s.lookup(sessionID)
	if !ok {
		return model.ChatMessage{}, nil, ErrSessionNotFound
	}

	sess.mu.Lock()
	if sess.sending {
		sess.mu.Unlock()
		return model.ChatMessage{}, nil, ErrSessionBusy
	}
	sess.sending = true
	history := snapshot(sess.messages)
	sess.messages = append(sess.messages, model.ChatMessage{
		Role:      model.RoleUser,
		Text:      text,
		Timestamp: time.Now(),
	})
	sess.mu.Unlock()

	reply, err := s.completer.Complete(ctx, history, text)
	if err != nil || strings.TrimSpace(reply) == "" {
		if err != nil {
			log.Printf("[CHAT] completion error: %v", err)
		}
		reply = FallbackReply
	}

	botMsg := model.ChatMessage{
		Role:      model.RoleModel,
		Text:      reply,
		Timestamp: time.Now(),
	}

	sess.mu.Lock()
	sess.messages = append(sess.messages, botMsg)
	sess.sending = false
	sess.lastUsed = time.Now()
	transcript := snapshot(sess.messages)
	sess.mu.Unlock()

	return botMsg, transcript, nil
}

// Close discards a session. Called when the chat panel is closed.
func (s *ChatService) Close(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, sessionID)
	return nil
}

// Run prunes idle sessions until Shutdown is called.
func (s *ChatService) Run() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if n := s.PruneIdle(time.Now()); n > 0 {
				log.Printf("[CHAT] pruned %d idle sessions", n)
			}
		case <-s.stop:
			return
		}
	}
}

// Shutdown stops the pruning loop.
func (s *ChatService) Shutdown() {
	s.stopOnce.Do(func() { close(s.stop) })
}

// PruneIdle drops sessions whose last activity is older than the TTL.
// Sessions with an outstanding send are kept.
func (s *ChatService) PruneIdle(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	pruned := 0
	for id, sess := range s.sessions {
		sess.mu.Lock()
		idle := !sess.sending && now.Sub(sess.lastUsed) > s.ttl
		sess.mu.Unlock()
		if idle {
			delete(s.sessions, id)
			pruned++
		}
	}
	return pruned
}

func (s *ChatService) lookup(sessionID string) (*chatSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	return sess, ok
}

func snapshot(msgs []model.ChatMessage) []model.ChatMessage {
	out := make([]model.ChatMessage, len(msgs))
	copy(out, msgs)
	return out
}
