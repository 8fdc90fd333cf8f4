package jobs

import (
	"log"
	"os"
	"strconv"
	"time"

	"shopwidget.GO/session"
)

// SessionSweepJob drops widget sessions idle past the TTL. The TTL is read
// from the environment here rather than config.AppConfig to keep the jobs
// package out of the config import graph.
func SessionSweepJob(args ...string) {
	ttl := 30 * time.Minute
	if raw := os.Getenv("SESSION_TTL_MINUTES"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			ttl = time.Duration(n) * time.Minute
		}
	}
	if removed := session.GetManager().Sweep(ttl); removed > 0 {
		log.Printf("session sweep: removed %d idle sessions (%d live)", removed, session.GetManager().Len())
	}
}
