// Package apng merges single-frame PNG files into an APNG animation at the
// chunk level.  The image data of each input is copied as-is: nothing is
// decompressed or re-encoded, so every input must share the key frame's
// IHDR (size, bit depth, color type) for the result to display correctly.
//
// Assemble does the merge.  ParseChunks and BuildChunk are the underlying
// chunk codec, and the Chunk_* types build and decode the individual
// animation chunks.  Inspect describes the structure of an existing file.
//
// For encoding details, see:
//
// https://wiki.mozilla.org/APNG_Specification
// https://www.w3.org/TR/PNG/
package apng
