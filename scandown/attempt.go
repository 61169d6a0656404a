package scandown

// attemptFrame is what the attempt stack pushes and pops: enough of the
// tokenizer's state to roll back to, taken before a speculative construct
// runs. Rollback is O(1): truncate the event log and open-span stack back
// to the recorded lengths and restore the point, never copying event data
// (spec.md §4.3.3).
type attemptFrame struct {
	point   Point
	logLen  int
	openLen int
}

func (t *Tokenizer) pushAttempt() attemptFrame {
	frame := attemptFrame{point: t.point, logLen: len(t.log.events), openLen: len(t.log.open)}
	t.stack = append(t.stack, frame)
	return frame
}

func (t *Tokenizer) commitAttempt(frame attemptFrame) {
	t.popAttempt(frame)
}

func (t *Tokenizer) rollbackAttempt(frame attemptFrame) {
	t.point = frame.point
	t.log.truncate(frame.logLen)
	t.popAttempt(frame)
}

func (t *Tokenizer) popAttempt(frame attemptFrame) {
	if n := len(t.stack); n == 0 || t.stack[n-1] != frame {
		panic("scandown: attempt stack popped out of order")
	} else {
		t.stack = t.stack[:n-1]
	}
}

// Depth returns the number of attempts currently nested.
func (t *Tokenizer) Depth() int { return len(t.stack) }

// Attempt runs try speculatively: if it resolves Ok, its events are kept
// and onDone(true) is called for the continuation; if it resolves Nok, the
// point and event log are rolled back to exactly where they were before
// try started, and onDone(false) supplies the continuation instead. Either
// way the continuation is invoked immediately with a fresh peek at
// whatever the tokenizer's position ended up being (spec.md §4.3.1's "tail
// call with the resolving code" idiom) — never the Code that happened to
// trigger resolution, which may already be behind the current position (if
// try consumed it before resolving Ok) or ahead of it (if Nok rolled the
// point back past where that Code was read).
func (t *Tokenizer) Attempt(try stateFn, onDone func(ok bool) stateFn) stateFn {
	frame := t.pushAttempt()
	return t.driveAttempt(frame, try, onDone)
}

func (t *Tokenizer) driveAttempt(frame attemptFrame, cur stateFn, onDone func(bool) stateFn) stateFn {
	return func(t *Tokenizer, c Code) (State, stateFn) {
		state, next := cur(t, c)
		switch state {
		case StateFn:
			return StateFn, t.driveAttempt(frame, next, onDone)
		case StateOk:
			t.commitAttempt(frame)
			return onDone(true)(t, t.peek())
		default:
			t.rollbackAttempt(frame)
			return onDone(false)(t, t.peek())
		}
	}
}

// Check runs try speculatively like Attempt, but always rolls back
// regardless of outcome — it is pure lookahead, used when a construct
// needs to know whether something would match without it actually
// consuming anything (spec.md §4.3.3's "check").
func (t *Tokenizer) Check(try stateFn, onDone func(ok bool) stateFn) stateFn {
	frame := t.pushAttempt()
	return t.driveCheck(frame, try, onDone)
}

func (t *Tokenizer) driveCheck(frame attemptFrame, cur stateFn, onDone func(bool) stateFn) stateFn {
	return func(t *Tokenizer, c Code) (State, stateFn) {
		state, next := cur(t, c)
		switch state {
		case StateFn:
			return StateFn, t.driveCheck(frame, next, onDone)
		default:
			ok := state == StateOk
			t.rollbackAttempt(frame)
			return onDone(ok)(t, t.peek())
		}
	}
}

// Interrupt runs try like Attempt, but additionally records on success
// that the enclosing construct was interrupted: a construct that is itself
// mid-parse when a nested Interrupt succeeds can observe that via
// Interrupted/ClearInterrupted and wrap itself up early rather than
// continuing to accumulate content that the interrupting construct has
// claimed (spec.md §4.3.3's "interrupt").
func (t *Tokenizer) Interrupt(try stateFn, onDone func(ok bool) stateFn) stateFn {
	frame := t.pushAttempt()
	return t.driveInterrupt(frame, try, onDone)
}

func (t *Tokenizer) driveInterrupt(frame attemptFrame, cur stateFn, onDone func(bool) stateFn) stateFn {
	return func(t *Tokenizer, c Code) (State, stateFn) {
		state, next := cur(t, c)
		switch state {
		case StateFn:
			return StateFn, t.driveInterrupt(frame, next, onDone)
		case StateOk:
			t.commitAttempt(frame)
			t.interrupted = true
			return onDone(true)(t, t.peek())
		default:
			t.rollbackAttempt(frame)
			return onDone(false)(t, t.peek())
		}
	}
}

// Interrupted reports whether a nested Interrupt has succeeded since the
// last ClearInterrupted call.
func (t *Tokenizer) Interrupted() bool { return t.interrupted }

// ClearInterrupted resets the interrupted flag, returning its prior value.
func (t *Tokenizer) ClearInterrupted() bool {
	was := t.interrupted
	t.interrupted = false
	return was
}
