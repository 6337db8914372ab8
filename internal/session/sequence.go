package session

import (
	"context"
	"sync"
)

// Sequencer метит каждую логическую операцию ("quotes", "price", ...) возрастающим номером.
// Новый запуск той же операции отменяет контекст предыдущего, а ответ со старым номером
// не применяется.
type Sequencer struct {
	mu  sync.Mutex
	ops map[string]*opState
}

type opState struct {
	seq    uint64
	cancel context.CancelFunc
}

// Ticket - номер одного запуска операции
type Ticket struct {
	op  string
	seq uint64
	s   *Sequencer
}

func NewSequencer() *Sequencer {
	return &Sequencer{ops: map[string]*opState{}}
}

// Begin начинает новый запуск op. Возвращённый контекст отменяется, когда op запускают снова.
func (s *Sequencer) Begin(ctx context.Context, op string) (context.Context, Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state(op)
	if st.cancel != nil {
		st.cancel()
	}
	st.seq++
	ctx, cancel := context.WithCancel(ctx)
	st.cancel = cancel
	return ctx, Ticket{op: op, seq: st.seq, s: s}
}

// Invalidate делает устаревшими все начатые запуски op
func (s *Sequencer) Invalidate(op string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state(op)
	if st.cancel != nil {
		st.cancel()
		st.cancel = nil
	}
	st.seq++
}

func (s *Sequencer) state(op string) *opState {
	st, ok := s.ops[op]
	if !ok {
		st = &opState{}
		s.ops[op] = st
	}
	return st
}

// Current - запуск всё ещё последний для своей операции
func (t Ticket) Current() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	return t.current()
}

func (t Ticket) current() bool {
	st, ok := t.s.ops[t.op]
	return ok && st.seq == t.seq
}

// Commit выполняет apply, только если запуск актуален. Проверка и apply атомарны
// относительно Begin/Invalidate, поэтому apply не должен обращаться к Sequencer.
func (t Ticket) Commit(apply func()) bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if !t.current() {
		return false
	}
	apply()
	return true
}

// Done освобождает контекст запуска. Вызывать через defer после Begin.
func (t Ticket) Done() {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if !t.current() {
		return
	}
	st := t.s.ops[t.op]
	if st.cancel != nil {
		st.cancel()
		st.cancel = nil
	}
}
