package domain

const (
	// DefaultChunkSize is the read buffer size used when the caller does
	// not override it. 64 KiB balances syscall overhead against
	// cancellation latency, which is one chunk.
	DefaultChunkSize = 64 * 1024 // 64KB

	// MinChunkSize and MaxChunkSize bound the practical override range.
	// They are enforced by the configuration layer before a run starts,
	// not by the engine itself.
	MinChunkSize = 256              // 256B
	MaxChunkSize = 64 * 1024 * 1024 // 64MB
)

// EngineOptions defines the configuration parameters for a checksum engine.
type EngineOptions struct {
	// ChunkSize controls the size of the streaming read buffer. Larger
	// chunks reduce read overhead but make cancellation coarser, since
	// the cancel signal is only checked between chunks.
	//
	// Zero selects DefaultChunkSize. Range validation (MinChunkSize to
	// MaxChunkSize) is the caller's responsibility.
	//
	// Default: 64KB
	ChunkSize uint32
}
