// Package history provides bounded undo/redo for a single-line entry.
//
// The history holds full-text snapshots rather than incremental deltas:
// entry content is short, so a snapshot per edit keeps undo trivially
// correct at negligible cost. Both directions are bounded; pushing past
// capacity discards the oldest undo entry, and any new checkpoint
// invalidates the redo timeline.
package history
