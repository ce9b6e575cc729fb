/*
Package lizard decodes mozLz4 files, the LZ4-compressed containers a browser
uses for small profile files (session stores, search engine lists).

Container: the 8-byte magic "mozLz40\0", a 4-byte little-endian declared size,
then one raw LZ4 block (no frame, no checksum, no dictionary).

Block: a run of sequences. Each sequence is a token byte (high nibble literal
length, low nibble match length minus 4), optional length extension bytes,
the literals, then a 2-byte little-endian backward offset and match extension
bytes. The last sequence has literals only and ends the input.

Use Decompress(data, opts) with nil for default (declared size capped at 256 MiB).
Use DecodeBlock(size, block) to decode a raw LZ4 block with a known output size.
Use ParseContainer(data) to inspect the declared size without decoding.
Use NewReader(r, opts) or DecompressFromReader(r, opts) to decode from a stream.

The format has no integrity check: corrupt input either fails a bounds check
(ErrTruncated, ErrInvalidOffset, ErrSizeMismatch) or decodes to wrong bytes.

# Examples

Decompress a file read into memory:

	data, err := os.ReadFile("search.json.mozlz4")
	if err != nil {
		return err
	}
	out, err := lizard.Decompress(data, nil)
	if err != nil {
		return err
	}

Decode a raw block and inspect the failure:

	out, err := lizard.DecodeBlock(size, block)
	var de *lizard.DecodeError
	if errors.As(err, &de) {
		log.Printf("corrupt at %d: %v", de.Pos, de.Kind)
	}

Decode from a stream without a size limit:

	r := lizard.NewReader(f, lizard.UnlimitedOptions())
	_, err := io.Copy(w, r)
*/
package lizard
