package advisor

import "context"

// Reply is the pending answer to a sent message.
type Reply struct {
	done chan struct{}
	msg  Message
	err  error
}

func newReply() *Reply {
	return &Reply{done: make(chan struct{})}
}

// resolve must be called exactly once.
func (r *Reply) resolve(msg Message, err error) {
	r.msg = msg
	r.err = err
	close(r.done)
}

// Done is closed once the reply has resolved.
func (r *Reply) Done() <-chan struct{} { return r.done }

// Wait returns the assistant message, or the responder's error, once resolved.
// It returns ctx.Err() if ctx ends first; the reply still resolves in the background.
func (r *Reply) Wait(ctx context.Context) (Message, error) {
	select {
	case <-r.done:
		return r.msg, r.err
	case <-ctx.Done():
		return Message{}, ctx.Err()
	}
}
