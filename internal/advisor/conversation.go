// Package advisor implements the conversational wellness advisor.
//
// A Conversation keeps the transcript. Sending a message returns a Reply, a future that
// resolves when the Responder collaborator answers. The UI never waits on a timer.
package advisor

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Role identifies who wrote a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Greeting opens every conversation.
const Greeting = "Hello! I'm your MediCare wellness advisor. How are you feeling today? You can speak or type your concerns."

// Message is one entry of the transcript.
type Message struct {
	Role      Role
	Content   string
	Timestamp time.Time
}

// Request is what a Responder sees when asked for a reply.
type Request struct {
	// Intake is a summary of the user's checkup answers, empty if none.
	Intake  string
	History []Message
}

// Responder produces the assistant's answer to the conversation so far.
type Responder interface {
	Respond(ctx context.Context, req Request) (string, error)
}

// Conversation is a transcript between the user and the advisor.
type Conversation struct {
	responder Responder
	logger    *zap.Logger
	now       func() time.Time

	mu       sync.Mutex
	messages []Message
	intake   string
	pending  sync.WaitGroup
}

// NewConversation starts a conversation with the advisor greeting.
func NewConversation(responder Responder, logger *zap.Logger) *Conversation {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Conversation{
		responder: responder,
		logger:    logger,
		now:       time.Now,
	}
	c.messages = []Message{{Role: RoleAssistant, Content: Greeting, Timestamp: c.now()}}
	return c
}

// WithIntake attaches a checkup summary that is passed to the responder on every turn.
func (c *Conversation) WithIntake(summary string) *Conversation {
	c.mu.Lock()
	c.intake = summary
	c.mu.Unlock()
	return c
}

// Messages returns a copy of the transcript.
func (c *Conversation) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Message(nil), c.messages...)
}

// Send appends the user's message and asks the responder for an answer in the background.
// Blank messages are rejected with ErrEmptyMessage and leave the transcript untouched.
func (c *Conversation) Send(ctx context.Context, text string) (*Reply, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}

	c.mu.Lock()
	c.messages = append(c.messages, Message{Role: RoleUser, Content: text, Timestamp: c.now()})
	req := Request{
		Intake:  c.intake,
		History: append([]Message(nil), c.messages...),
	}
	c.mu.Unlock()

	reply := newReply()
	c.pending.Add(1)
	go func() {
		defer c.pending.Done()
		c.respond(ctx, req, reply)
	}()
	return reply, nil
}

func (c *Conversation) respond(ctx context.Context, req Request, reply *Reply) {
	text, err := c.responder.Respond(ctx, req)
	if err == nil && strings.TrimSpace(text) == "" {
		err = ErrEmptyReply
	}
	if err != nil {
		c.logger.Warn("advisor reply failed", zap.Error(err), zap.Int("turn", len(req.History)))
		reply.resolve(Message{}, err)
		return
	}

	msg := Message{Role: RoleAssistant, Content: text, Timestamp: c.now()}
	c.mu.Lock()
	c.messages = append(c.messages, msg)
	c.mu.Unlock()

	c.logger.Debug("advisor replied", zap.Int("turn", len(req.History)), zap.Int("chars", len(text)))
	reply.resolve(msg, nil)
}

// Wait blocks until every outstanding reply has resolved.
func (c *Conversation) Wait() {
	c.pending.Wait()
}
