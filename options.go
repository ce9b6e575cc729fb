package lizard

// DefaultMaxDecodedSize bounds the declared size accepted by DefaultOptions.
// Browser profile files are far below this.
const DefaultMaxDecodedSize = 256 << 20

// Options configures container-level decompression (Decompress, NewReader).
// DecodeBlock itself never limits the declared size.
type Options struct {
	// MaxDecodedSize rejects containers declaring more output than this with ErrSizeLimit,
	// before any output is allocated. Zero disables the check.
	MaxDecodedSize uint32
}

// DefaultOptions returns options capping the declared size at DefaultMaxDecodedSize.
func DefaultOptions() *Options {
	return &Options{
		MaxDecodedSize: DefaultMaxDecodedSize,
	}
}

// UnlimitedOptions returns options that accept any declared size.
func UnlimitedOptions() *Options {
	return &Options{}
}
