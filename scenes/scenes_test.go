package scenes

import (
	"testing"
	"time"

	cfg "github.com/automoto/umbra/config"
)

type fakeChanger struct {
	changed int
}

func (f *fakeChanger) ChangeScene(scene interface{}) {
	f.changed++
}

func TestRouterRunsLeaveHookBeforeSwap(t *testing.T) {
	changer := &fakeChanger{}
	r := NewRouter(changer)

	var order []string
	r.OnLeave(func() {
		if changer.changed != 0 {
			t.Fatal("scene swapped before the leave hook ran")
		}
		order = append(order, "leave")
	})

	r.TransitionToScene(cfg.SceneMenu)
	r.Flush()

	if len(order) != 1 {
		t.Fatalf("leave hook ran %d times, want 1", len(order))
	}
	if changer.changed != 1 {
		t.Fatalf("ChangeScene called %d times, want 1", changer.changed)
	}
}

func TestRouterSkipsLeaveHookOnUnknownPath(t *testing.T) {
	changer := &fakeChanger{}
	r := NewRouter(changer)

	left := false
	r.OnLeave(func() { left = true })

	r.TransitionToScene("no/such/scene")
	r.Flush()

	if left {
		t.Fatal("leave hook ran for an unknown scene path")
	}
	if changer.changed != 0 {
		t.Fatal("ChangeScene called for an unknown scene path")
	}
}

func TestWorldSceneDisposeClosesWatcher(t *testing.T) {
	w, err := cfg.NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}

	ws := &WorldScene{watcher: w}
	ws.dispose()

	if ws.watcher != nil {
		t.Fatal("dispose left the watcher attached")
	}
	select {
	case _, ok := <-w.Events:
		if ok {
			t.Fatal("unexpected event from closed watcher")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watcher Events not closed by dispose")
	}
}
