// Package mouse defines pointer events for the entry engine and the
// click classifier that turns repeated presses into single, double, and
// triple clicks.
//
// Classification uses a time window and an x-axis tolerance: a press
// within both of the previous press deepens the sequence, otherwise the
// sequence restarts at a single click. After a triple click the counter
// resets so the next press starts a fresh sequence.
package mouse
