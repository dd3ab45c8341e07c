package nav

import "testing"

// stubToken is what a feature module publishes instead of a concrete
// route type.
type stubToken struct {
	name string
}

type stubMapper struct {
	routes map[string]Route

	hookCalls   int
	modalAtHook []Route // router's modal slot observed inside the hook
	observe     func() Route
}

func (m *stubMapper) OnBeforeMap(external any) {
	m.hookCalls++
	if m.observe != nil {
		m.modalAtHook = append(m.modalAtHook, m.observe())
	}
}

func (m *stubMapper) MapRoute(external any) (Route, bool) {
	tok, ok := external.(stubToken)
	if !ok {
		return nil, false
	}
	route, ok := m.routes[tok.name]
	return route, ok
}

func TestPortal_UnmappedTokenLeavesStateUntouched(t *testing.T) {
	t.Parallel()

	mapper := &stubMapper{routes: map[string]Route{}}
	r := New(WithPortalMapper(mapper))

	fired := 0
	r.Portal(stubToken{name: "nowhere"}, WithOnDismiss(func() { fired++ }))

	if mapper.hookCalls != 1 {
		t.Fatalf("hook calls = %d, want 1 (hook runs even when unmapped)", mapper.hookCalls)
	}
	if r.Depth() != 0 || r.Modal() != nil {
		t.Fatal("unmapped portal mutated navigation state")
	}
	if r.handlers.len() != 0 {
		t.Fatalf("handlers registered = %d, want 0", r.handlers.len())
	}
	if fired != 0 {
		t.Fatalf("completion fired %d times, want 0", fired)
	}
}

func TestPortalAwait_UnmappedTokenReturnsNotOK(t *testing.T) {
	t.Parallel()

	mapper := &stubMapper{routes: map[string]Route{}}
	r := New(WithPortalMapper(mapper))

	ch, ok := r.PortalAwait(stubToken{name: "nowhere"})
	if ok {
		t.Fatal("PortalAwait ok = true for unmapped token")
	}
	if ch != nil {
		t.Fatal("PortalAwait returned a channel for unmapped token")
	}
}

func TestPortal_MappedSheetSetsSlotAfterHook(t *testing.T) {
	t.Parallel()

	mapper := &stubMapper{
		routes: map[string]Route{"upgrade": sheetRoute("billing/upgrade")},
	}
	r := New(WithPortalMapper(mapper))
	mapper.observe = r.Modal

	r.Portal(stubToken{name: "upgrade"})

	if mapper.hookCalls != 1 {
		t.Fatalf("hook calls = %d, want 1", mapper.hookCalls)
	}
	if len(mapper.modalAtHook) != 1 || mapper.modalAtHook[0] != nil {
		t.Fatal("hook observed the modal slot already changed")
	}
	if got := r.Modal(); got == nil || got.ID() != "billing/upgrade" {
		t.Fatalf("modal = %v, want billing/upgrade", got)
	}
}

func TestPortalAwait_MappedRouteResolvesOnDismiss(t *testing.T) {
	t.Parallel()

	mapper := &stubMapper{
		routes: map[string]Route{"upgrade": sheetRoute("billing/upgrade")},
	}
	r := New(WithPortalMapper(mapper))

	ch, ok := r.PortalAwait(stubToken{name: "upgrade"})
	if !ok {
		t.Fatal("PortalAwait ok = false for mapped token")
	}

	r.Dismiss()

	st := recvState(t, ch)
	if st.Phase != PhaseDismissed || st.Route.ID() != "billing/upgrade" {
		t.Fatalf("state = %v %q, want dismissed billing/upgrade", st.Phase, st.Route.ID())
	}
}

func TestPortal_NoMapperConfiguredIsReportedNoOp(t *testing.T) {
	t.Parallel()

	r, logs := observedRouter(t)
	r.Portal(stubToken{name: "upgrade"})

	if r.Depth() != 0 || r.Modal() != nil {
		t.Fatal("portal without mapper mutated navigation state")
	}
	if got := logs.FilterMessage("portal requested with no mapper configured").Len(); got != 1 {
		t.Fatalf("diagnostics = %d, want 1", got)
	}
}

func TestPortal_MapperInheritedByModalChildren(t *testing.T) {
	t.Parallel()

	mapper := &stubMapper{
		routes: map[string]Route{"upgrade": sheetRoute("billing/upgrade")},
	}
	r := New(WithPortalMapper(mapper))
	child := childFor(t, r, "flow")

	child.Portal(stubToken{name: "upgrade"})

	if got := child.Modal(); got == nil || got.ID() != "billing/upgrade" {
		t.Fatalf("child modal = %v, want billing/upgrade", got)
	}
}
