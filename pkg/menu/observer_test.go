package menu

import (
	"testing"

	"github.com/mesh-intelligence/storefront/pkg/types"
)

func TestSubscribe(t *testing.T) {
	t.Run("notified after every mutation", func(t *testing.T) {
		s := newTestStore(t)
		var snapshots []types.Selection
		s.Subscribe(func(sel types.Selection) {
			snapshots = append(snapshots, sel)
		})

		_ = s.SelectCategory("cat-1")
		_ = s.ToggleSubCategory("A")
		_ = s.ConfirmSelection()
		s.Reset()

		if len(snapshots) != 4 {
			t.Fatalf("expected 4 notifications, got %d", len(snapshots))
		}
		if snapshots[0].Phase != types.PhaseChoosing {
			t.Fatalf("expected choosing first, got %s", snapshots[0].Phase)
		}
		if snapshots[2].Phase != types.PhaseViewing || snapshots[2].CausingCategory != "cat-1" {
			t.Fatalf("expected viewing caused by cat-1, got %+v", snapshots[2])
		}
		if snapshots[3].Phase != types.PhaseBrowsing {
			t.Fatalf("expected browsing last, got %s", snapshots[3].Phase)
		}
	})

	t.Run("rejected mutations do not notify", func(t *testing.T) {
		s := newTestStore(t)
		count := 0
		s.Subscribe(func(types.Selection) { count++ })

		_ = s.SelectCategory("cat-99") // unknown, rejected
		_ = s.ConfirmSelection()       // nothing open, rejected

		if count != 0 {
			t.Fatalf("expected no notifications, got %d", count)
		}
	})

	t.Run("unsubscribe stops delivery", func(t *testing.T) {
		s := newTestStore(t)
		count := 0
		unsubscribe := s.Subscribe(func(types.Selection) { count++ })

		_ = s.SelectCategory("cat-1")
		unsubscribe()
		_ = s.SelectCategory("cat-2")
		unsubscribe() // second call is harmless

		if count != 1 {
			t.Fatalf("expected 1 notification, got %d", count)
		}
	})

	t.Run("nil observer dropped", func(t *testing.T) {
		s := newTestStore(t)
		unsubscribe := s.Subscribe(nil)
		_ = s.SelectCategory("cat-1")
		unsubscribe()
	})

	t.Run("self-unsubscription mid-notification", func(t *testing.T) {
		s := newTestStore(t)
		counts := map[string]int{}
		var unsubA func()
		unsubA = s.Subscribe(func(types.Selection) {
			counts["a"]++
			unsubA()
		})
		s.Subscribe(func(types.Selection) { counts["b"]++ })
		s.Subscribe(func(types.Selection) { counts["c"]++ })

		_ = s.SelectCategory("cat-1")

		for _, name := range []string{"a", "b", "c"} {
			if counts[name] != 1 {
				t.Fatalf("expected each observer notified once, got %v", counts)
			}
		}

		_ = s.SelectCategory("cat-2")

		if counts["a"] != 1 || counts["b"] != 2 || counts["c"] != 2 {
			t.Fatalf("expected a unsubscribed after first mutation, got %v", counts)
		}
	})

	t.Run("observers run in subscription order", func(t *testing.T) {
		s := newTestStore(t)
		var order []int
		s.Subscribe(func(types.Selection) { order = append(order, 1) })
		s.Subscribe(func(types.Selection) { order = append(order, 2) })

		_ = s.SelectCategory("cat-1")

		if len(order) != 2 || order[0] != 1 || order[1] != 2 {
			t.Fatalf("expected [1 2], got %v", order)
		}
	})
}
