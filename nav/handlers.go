package nav

// handlerTable maps route identities to their dismiss completions. One
// entry per identity at a time; registering again overwrites the previous
// completion, which supports re-opening the same logical screen. All
// access happens on the router's owning goroutine.
type handlerTable struct {
	m map[string]func()
}

func newHandlerTable() handlerTable {
	return handlerTable{m: make(map[string]func())}
}

// set records the completion for an identity, replacing any existing one.
// A nil fn still claims the slot so that fire accounting stays uniform.
func (t handlerTable) set(id string, fn func()) {
	t.m[id] = fn
}

// fire atomically removes and invokes the completion for an identity.
// Firing an absent identity is a silent no-op; it reports whether an
// entry was present.
func (t handlerTable) fire(id string) bool {
	fn, ok := t.m[id]
	if !ok {
		return false
	}
	delete(t.m, id)
	if fn != nil {
		fn()
	}
	return true
}

// discard drops an entry without invoking it. Used by bulk operations
// that are defined to be silent (SetStack, DismissAllModals).
func (t handlerTable) discard(id string) {
	delete(t.m, id)
}

func (t handlerTable) has(id string) bool {
	_, ok := t.m[id]
	return ok
}

func (t handlerTable) len() int {
	return len(t.m)
}
