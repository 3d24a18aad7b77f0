package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"gemini-chatbot/internal/chat"
	"gemini-chatbot/internal/dispatcher"
)

// session holds one user's conversation. mu serialises its requests.
type session struct {
	mu          sync.Mutex
	id          string
	model       string
	turns       []chat.Turn
	lastUpdated time.Time
	pacer       *rate.Limiter
}

func (uc *implUseCase) newSession(model string) *session {
	s := &session{
		id:          uuid.NewString(),
		model:       model,
		lastUpdated: time.Now(),
		pacer:       rate.NewLimiter(rate.Inf, 1),
	}
	if uc.cfg.RateLimitDelay > 0 {
		s.pacer = rate.NewLimiter(rate.Every(uc.cfg.RateLimitDelay), 1)
	}
	uc.sessions.Add(s.id, s)
	return s
}

// getOrCreate returns the session for id, or a new one when id is empty or
// has been idle longer than the session TTL.
func (uc *implUseCase) getOrCreate(id string) *session {
	if id != "" {
		if s, ok := uc.sessions.Get(id); ok {
			uc.touch(s)
			return s
		}
	}
	return uc.newSession(uc.settings.DefaultModel)
}

// touch restarts the session's idle timer. The LRU only sets expiry on Add.
func (uc *implUseCase) touch(s *session) {
	uc.sessions.Add(s.id, s)
}

func (s *session) history() []dispatcher.Turn {
	out := make([]dispatcher.Turn, len(s.turns))
	for i, t := range s.turns {
		out[i] = dispatcher.Turn{Role: dispatcher.Role(t.Role), Text: t.Text}
	}
	return out
}

// appendExchange records a prompt and its reply, dropping the oldest turns
// beyond maxHistory. Turns are dropped in pairs so history starts with a user turn.
func (s *session) appendExchange(prompt, reply string, maxHistory int) {
	now := time.Now()
	s.turns = append(s.turns,
		chat.Turn{Role: string(dispatcher.RoleUser), Text: prompt, CreatedAt: now},
		chat.Turn{Role: string(dispatcher.RoleModel), Text: reply, CreatedAt: now},
	)
	if over := len(s.turns) - maxHistory; over > 0 {
		if over%2 == 1 {
			over++
		}
		if over > len(s.turns) {
			over = len(s.turns)
		}
		s.turns = append([]chat.Turn(nil), s.turns[over:]...)
	}
	s.lastUpdated = now
}
