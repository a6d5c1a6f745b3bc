package ports

// ProgressSink receives byte-count updates pushed by the engine after
// every chunk. Implementations decide the cadence they expose to a
// presentation layer (polling a snapshot, forwarding to a channel, or
// dropping everything).
//
// Publishes happen in the order bytes are read, and the final run result
// is only observable after the last publish for that run.
type ProgressSink interface {
	// Publish reports that bytesDone of bytesTotal have been read and
	// fed to every live accumulator.
	Publish(bytesDone, bytesTotal uint64)
}
