package server

import (
	"testing"
	"time"

	"shopwidget.GO/config"
	"shopwidget.GO/session"
)

func TestSweep_ReleasesBridgeQueue(t *testing.T) {
	config.LoadAppConfig()
	deps := NewDeps(Options{})

	ctl := deps.ControllerFor("leaky")
	ctl.EnterSearch() // queues a SCROLL_TO_TOP for the session

	time.Sleep(time.Millisecond)
	session.GetManager().Sweep(0)

	if msgs := deps.Bridge.Drain("leaky"); len(msgs) != 0 {
		t.Errorf("swept session still has %d queued bridge messages", len(msgs))
	}
	if _, ok := session.GetManager().Get("leaky"); ok {
		t.Error("session should be gone after sweep")
	}
}
