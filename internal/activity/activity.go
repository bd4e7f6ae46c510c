// Package activity implements the append-only activity log: a timestamped,
// human-readable record of every operation outcome, readable back for the
// activity_log resource. Two backends share one contract: an in-memory ring
// for ephemeral deployments and an append-only flat file for persistent ones.
package activity

import "time"

// Log records operation outcomes and reads them back in append order.
//
// Record must never propagate a failure to its caller: a broken log store
// cannot be allowed to fail the operation whose outcome it is recording.
type Log interface {
	Record(message string)
	Recent(limit int) []string
}

func stamp(now time.Time, message string) string {
	return now.Format(time.RFC3339) + ": " + message
}
