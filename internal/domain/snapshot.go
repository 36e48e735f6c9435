package domain

import "time"

// Snapshot is the complete, read-only portfolio graph handed to the
// presentation layer at startup. Nothing in this module mutates a snapshot
// after it has been built.
type Snapshot struct {
	Managers     []ProductManager
	ValueStreams []ValueStream
	Source       string
	LoadedAt     time.Time
}

