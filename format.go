package lizard

// mozLz4 container and LZ4 block format constants.
const (
	Magic      = "mozLz40\x00"        // Container magic.
	SizeLen    = 4                    // Little-endian u32 declared size after the magic.
	HeaderSize = len(Magic) + SizeLen // Bytes before the compressed block.
	MinMatch   = 4                    // Smallest encodable match; added to every match length.
	lengthMask = 0x0F                 // Nibble value announcing extension bytes.
	lengthStep = 0xFF                 // Extension byte value meaning "add and read another".
)
