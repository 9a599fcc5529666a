// Package align holds the in-memory model shared by every reader,
// transform and writer: an ordered set of samples, an ordered set of
// genes, and a (sample, gene) matrix of aligned sequences.
//
// The matrix is total: every sample has a sequence for every gene, and
// for a fixed gene all sequences have the same length. Samples absent
// from a gene's source data are filled with '?' so that column offsets
// stay valid. Charsets are never stored; they are derived from gene
// lengths on demand.
package align
