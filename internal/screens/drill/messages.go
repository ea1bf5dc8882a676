package drill

import (
	"time"

	"github.com/ayato/kanadrill/internal/session"
)

// advanceMsg fires when the auto-advance delay elapses. The token ties it
// to the question that was showing when it was scheduled.
type advanceMsg struct {
	Token session.AdvanceToken
}

// countdownTickMsg is sent every second while a time limit is running.
type countdownTickMsg time.Time
