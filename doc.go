// Package rep implements REP, a long-range LZ77 preprocessor meant to
// run in front of a heavier general-purpose compressor.
//
// REP finds matches of very long minimum length at very long distances
// while using only a small fraction of the match window as working
// memory: a sliding-window match finder backed by a packed hash table
// (tag bits folded into each table entry) probes and inserts only a
// sub-sample of scan positions, trading some recall for a large
// reduction in memory and CPU. It performs a single greedy pass — no
// lazy or optimal parsing, no entropy coding, no random access into the
// compressed stream.
//
// Compress and Decompress are the low-level entry points, driven by a
// plain io.Reader and io.Writer. NewWriter and NewReader wrap them as
// an ordinary io.WriteCloser and io.Reader, for callers who would
// rather use REP the way they use any other compressor in this
// toolkit.
//
// The rep/downstream subpackage adapts REP's output to feed a second,
// stronger compression stage — REP's intended deployment shape.
package rep
