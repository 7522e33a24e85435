// Package menu defines the command surface the entry engine exposes to
// a host context menu. The popup widget itself belongs to the host; the
// engine only computes enablement flags and dispatches the command id
// the host sends back.
package menu
