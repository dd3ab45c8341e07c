package nav

import "testing"

func TestHandlerTable_FireRemovesBeforeInvoke(t *testing.T) {
	t.Parallel()

	tab := newHandlerTable()
	var sawEntry bool
	tab.set("a", func() {
		// The entry must already be gone when the completion runs, so a
		// re-entrant fire cannot invoke it again.
		sawEntry = tab.has("a")
	})

	if !tab.has("a") {
		t.Fatal("has = false after set")
	}
	if !tab.fire("a") {
		t.Fatal("fire reported no entry")
	}
	if sawEntry {
		t.Fatal("completion observed its own entry still registered")
	}
	if tab.has("a") || tab.len() != 0 {
		t.Fatal("entry survived fire")
	}

	// Absent identity: silent no-op.
	if tab.fire("a") {
		t.Fatal("fire reported an entry on an empty table")
	}
}

func TestHandlerTable_SetOverwritesAndNilClaimsSlot(t *testing.T) {
	t.Parallel()

	tab := newHandlerTable()
	fired := ""
	tab.set("a", func() { fired = "first" })
	tab.set("a", func() { fired = "second" })

	tab.fire("a")
	if fired != "second" {
		t.Fatalf("fired = %q, want the replacement completion", fired)
	}

	// A nil completion still occupies the slot.
	tab.set("b", nil)
	if !tab.has("b") {
		t.Fatal("nil completion did not claim the slot")
	}
	if !tab.fire("b") {
		t.Fatal("fire reported no entry for a nil completion")
	}

	tab.set("c", func() { fired = "discarded" })
	tab.discard("c")
	if tab.has("c") {
		t.Fatal("entry survived discard")
	}
	if fired == "discarded" {
		t.Fatal("discard invoked the completion")
	}
}
