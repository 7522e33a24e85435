package engine

import (
	"time"
	"unicode/utf8"

	"github.com/pixelprism/entryline/internal/clipboard"
	"github.com/pixelprism/entryline/internal/engine/buffer"
	"github.com/pixelprism/entryline/internal/engine/history"
	"github.com/pixelprism/entryline/internal/engine/selection"
	"github.com/pixelprism/entryline/internal/engine/validate"
	"github.com/pixelprism/entryline/internal/focus"
	"github.com/pixelprism/entryline/internal/input/key"
	"github.com/pixelprism/entryline/internal/input/mouse"
	"github.com/pixelprism/entryline/internal/measure"
	"github.com/pixelprism/entryline/internal/menu"
	"github.com/pixelprism/entryline/internal/viewport"
)

// Aliases so hosts can configure an engine without importing every
// subsystem package.
type (
	Kind      = validate.Kind
	Selection = selection.Selection
)

const (
	KindText    = validate.Text
	KindInteger = validate.Integer
	KindFloat   = validate.Float
	KindHex     = validate.Hex
)

const (
	// DefaultBlinkInterval is the caret blink period.
	DefaultBlinkInterval = 700 * time.Millisecond
	// InvalidFlashDuration is how long a rejection cue stays visible.
	InvalidFlashDuration = 150 * time.Millisecond
	// ValidFlashDuration is how long an acceptance cue stays visible.
	ValidFlashDuration = 500 * time.Millisecond
	// DefaultVisibleWidth is the viewport width used when the host
	// never reports one.
	DefaultVisibleWidth = 200
)

// Engine is the editing core for one single-line text field.
type Engine struct {
	buf    *Buffer
	hist   *history.Stack
	sel    selection.Selection
	cursor int

	kind     validate.Kind
	upperHex bool
	maxLen   int

	scroll *viewport.Scroller
	clicks *mouse.Classifier
	drag   mouse.Drag
	meas   measure.Measurer

	clip   clipboard.Service
	broker *clipboard.Broker

	arbiter  *focus.Arbiter
	onChange ChangeFunc

	state         State
	windowFocused bool
	caretVisible  bool
	lastBlink     time.Time
	blinkInterval time.Duration

	vstate     ValidationState
	flashStart time.Time

	autoMirror bool
	closed     bool

	// option staging, consumed by New
	maxLenSet      bool
	histDepth      int
	visibleWidth   int
	leftMargin     int
	rightMargin    int
	marginsSet     bool
	dragStep       int
	clickWindow    time.Duration
	clickTolerance int
	initialText    string
}

// Buffer is re-exported for hosts that construct buffers directly.
type Buffer = buffer.Buffer

// New creates an engine and registers it with its focus arbiter.
func New(opts ...Option) *Engine {
	e := &Engine{
		kind:          validate.Text,
		upperHex:      true,
		autoMirror:    true,
		blinkInterval: DefaultBlinkInterval,
		visibleWidth:  DefaultVisibleWidth,
	}
	for _, opt := range opts {
		opt(e)
	}
	if !e.maxLenSet {
		e.maxLen = validate.MaxLength(e.kind)
	}
	if e.meas == nil {
		e.meas = measure.NewMono(1)
	}
	if e.clip == nil {
		e.clip = clipboard.NewMemory()
	}
	if e.arbiter == nil {
		e.arbiter = focus.New()
	}
	e.buf = buffer.New(buffer.WithMaxLength(e.maxLen))
	e.hist = history.New(e.histDepth)
	e.scroll = viewport.New(e.visibleWidth)
	if e.marginsSet {
		e.scroll.SetMargins(e.leftMargin, e.rightMargin)
	}
	if e.dragStep > 0 {
		e.scroll.SetDragStep(e.dragStep)
	}
	e.clicks = mouse.NewClassifier(e.clickWindow, e.clickTolerance)
	e.broker = clipboard.NewBroker(e.clip)
	e.windowFocused = e.arbiter.WindowFocused()
	e.arbiter.Register(e)
	if e.initialText != "" {
		e.buf.ReplaceAll(e.initialText)
		e.cursor = e.buf.Len()
		e.sel = selection.Caret(e.cursor)
	}
	return e
}

// Close invalidates outstanding clipboard requests and detaches the
// engine from its arbiter. A closed engine ignores further paste
// completions.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.closed = true
	e.broker.Close()
	e.arbiter.Unregister(e)
}

// Text returns the buffer contents.
func (e *Engine) Text() string { return e.buf.String() }

// Len returns the buffer length in bytes.
func (e *Engine) Len() int { return e.buf.Len() }

// Kind returns the validation kind.
func (e *Engine) Kind() Kind { return e.kind }

// MaxLength returns the byte capacity, zero meaning unlimited.
func (e *Engine) MaxLength() int { return e.maxLen }

// Cursor returns the caret byte offset.
func (e *Engine) Cursor() int { return e.cursor }

// Selection returns the current selection.
func (e *Engine) Selection() Selection { return e.sel }

// SelectedText returns the selected substring, empty when the
// selection is collapsed.
func (e *Engine) SelectedText() string { return e.sel.Text(e.buf.String()) }

// State returns the interaction state.
func (e *Engine) State() State { return e.state }

// Focused reports whether the engine holds keyboard focus.
func (e *Engine) Focused() bool { return e.state != StateUnfocused }

// CaretVisible reports whether the caret is in the visible phase of
// its blink cycle. Always false while unfocused or while the host
// window is unfocused.
func (e *Engine) CaretVisible() bool { return e.caretVisible }

// ValidationState returns the current commit feedback state.
func (e *Engine) ValidationState() ValidationState { return e.vstate }

// ScrollOffset returns the horizontal scroll offset in measurer units.
func (e *Engine) ScrollOffset() int { return e.scroll.Offset() }

// ContentWidth returns the measured width of the whole text.
func (e *Engine) ContentWidth() int { return e.meas.Measure(e.buf.String()) }

// CursorX returns the caret position in content space. Subtract
// ScrollOffset for the on-screen position.
func (e *Engine) CursorX() int { return e.meas.MeasurePrefix(e.buf.String(), e.cursor) }

// History exposes the undo stack, mainly for menu enablement and tests.
func (e *Engine) History() *history.Stack { return e.hist }

// Clipboard returns the engine's clipboard service.
func (e *Engine) Clipboard() clipboard.Service { return e.clip }

// SetVisibleWidth updates the viewport width, typically on host resize.
func (e *Engine) SetVisibleWidth(w int) {
	e.scroll.SetVisibleWidth(w)
	e.ensureVisible()
}

// SetText replaces the contents programmatically. The previous text is
// not recorded in history, the change callback does not fire, and the
// caret moves to the end.
func (e *Engine) SetText(s string) {
	e.buf.ReplaceAll(s)
	e.cursor = e.buf.Len()
	e.sel = selection.Caret(e.cursor)
	e.ensureVisible()
}

// InsertRune validates r for the engine's kind and inserts it at the
// caret, replacing any selection. Over-capacity input is rejected
// whole: no history entry, no selection change.
func (e *Engine) InsertRune(r rune) {
	v, ok := validate.Accept(e.kind, r, e.upperHex)
	if !ok {
		return
	}
	base := e.buf.Len() - e.sel.Clamp(e.buf.Len()).Len()
	if e.maxLen > 0 && base+utf8.RuneLen(v) > e.maxLen {
		return
	}
	e.hist.Checkpoint(e.buf.String())
	e.deleteSelection()
	if err := e.buf.Insert(e.cursor, string(v)); err != nil {
		return
	}
	e.cursor += utf8.RuneLen(v)
	e.sel = selection.Caret(e.cursor)
	e.ensureVisible()
}

// Backspace deletes the selection, or the rune before the caret.
func (e *Engine) Backspace() {
	if !e.sel.IsEmpty() {
		e.hist.Checkpoint(e.buf.String())
		e.deleteSelection()
		e.ensureVisible()
		return
	}
	if e.cursor == 0 {
		return
	}
	_, n := utf8.DecodeLastRuneInString(e.buf.String()[:e.cursor])
	e.hist.Checkpoint(e.buf.String())
	e.buf.DeleteRange(e.cursor-n, e.cursor)
	e.cursor -= n
	e.sel = selection.Caret(e.cursor)
	e.ensureVisible()
}

// DeleteForward deletes the selection, or the rune after the caret.
func (e *Engine) DeleteForward() {
	if !e.sel.IsEmpty() {
		e.hist.Checkpoint(e.buf.String())
		e.deleteSelection()
		e.ensureVisible()
		return
	}
	if e.cursor >= e.buf.Len() {
		return
	}
	_, n := utf8.DecodeRuneInString(e.buf.String()[e.cursor:])
	e.hist.Checkpoint(e.buf.String())
	e.buf.DeleteRange(e.cursor, e.cursor+n)
	e.sel = selection.Caret(e.cursor)
	e.ensureVisible()
}

// Clear empties the field. The cleared text is undoable and focus is
// retained.
func (e *Engine) Clear() {
	if e.buf.Len() == 0 {
		return
	}
	e.hist.Checkpoint(e.buf.String())
	e.buf.ReplaceAll("")
	e.cursor = 0
	e.sel = selection.Caret(0)
	e.scroll.Reset()
}

// Copy posts the selected text to both clipboard channels. A collapsed
// selection is a no-op.
func (e *Engine) Copy() {
	text := e.SelectedText()
	if text == "" {
		return
	}
	e.clip.SetText(clipboard.ChannelClipboard, text)
	e.clip.SetText(clipboard.ChannelPrimary, text)
}

// Cut copies the selection and deletes it.
func (e *Engine) Cut() {
	if e.sel.IsEmpty() {
		return
	}
	e.Copy()
	e.hist.Checkpoint(e.buf.String())
	e.deleteSelection()
	e.ensureVisible()
}

// Paste requests text from the channel. Insertion happens when the
// request completes, possibly on a later event-loop turn; completions
// for a closed engine are dropped by the broker.
func (e *Engine) Paste(ch clipboard.Channel) {
	e.broker.Request(ch, func(text string, ok bool) {
		e.completePaste(text, ok)
	})
}

// completePaste runs when a clipboard request resolves. The incoming
// text is filtered through the kind's validator and truncated to
// capacity before insertion. Pasting does not fire the change callback.
func (e *Engine) completePaste(text string, ok bool) {
	if e.closed || !ok || text == "" {
		return
	}
	e.sel = e.sel.Clamp(e.buf.Len())
	base := e.buf.Len() - e.sel.Len()
	filtered := validate.FilterPaste(e.kind, text, e.upperHex, base, e.maxLen)
	if filtered == "" {
		return
	}
	e.hist.Checkpoint(e.buf.String())
	e.deleteSelection()
	if err := e.buf.Insert(e.cursor, filtered); err != nil {
		return
	}
	e.cursor += len(filtered)
	e.sel = selection.Caret(e.cursor)
	e.ensureVisible()
}

// Undo restores the previous snapshot and fires the change callback.
func (e *Engine) Undo() {
	text, err := e.hist.Undo(e.buf.String())
	if err != nil {
		return
	}
	e.restore(text)
}

// Redo re-applies an undone snapshot and fires the change callback.
func (e *Engine) Redo() {
	text, err := e.hist.Redo(e.buf.String())
	if err != nil {
		return
	}
	e.restore(text)
}

func (e *Engine) restore(text string) {
	e.buf.ReplaceAll(text)
	if e.cursor > e.buf.Len() {
		e.cursor = e.buf.Len()
	}
	e.sel = selection.Caret(e.cursor)
	e.ensureVisible()
	e.notifyChange()
}

// SelectAll selects the whole buffer and moves the caret to the end.
func (e *Engine) SelectAll() {
	e.sel = selection.New(0, e.buf.Len())
	e.cursor = e.buf.Len()
	e.ensureVisible()
	e.mirrorSelection()
}

// SelectWord selects the run of word characters around the byte
// offset. Outside a word the selection collapses to the offset.
func (e *Engine) SelectWord(off int) {
	text := e.buf.String()
	if off > len(text) {
		off = len(text)
	}
	if off < 0 {
		off = 0
	}
	lo, hi := off, off
	for lo > 0 && isWordByte(text[lo-1]) {
		lo--
	}
	for hi < len(text) && isWordByte(text[hi]) {
		hi++
	}
	e.sel = selection.New(lo, hi)
	e.cursor = hi
	e.ensureVisible()
	e.mirrorSelection()
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

// Commit fires the change callback, as on Enter.
func (e *Engine) Commit() { e.notifyChange() }

// SetValidationState sets the commit feedback cue at the given time.
// Non-neutral states expire on a later Tick, measured against the same
// clock the host passes to Tick. A zero now falls back to time.Now().
func (e *Engine) SetValidationState(v ValidationState, now time.Time) {
	e.vstate = v
	if v == ValidationNeutral {
		e.flashStart = time.Time{}
		return
	}
	if now.IsZero() {
		now = time.Now()
	}
	e.flashStart = now
}

// Focus acquires keyboard focus, stealing it from any other holder on
// the same arbiter.
func (e *Engine) Focus() {
	e.arbiter.Acquire(e)
	if e.state == StateUnfocused {
		e.state = StateFocusedIdle
	}
	e.resetCaret(time.Now())
}

// Unfocus voluntarily drops focus, committing the current text first.
func (e *Engine) Unfocus() {
	if e.state == StateUnfocused {
		return
	}
	e.notifyChange()
	e.dropFocus()
	e.arbiter.Release(e)
}

// ReleaseFocus implements focus.Holder. The arbiter calls it when
// another holder acquires focus; the text is committed as on Unfocus.
func (e *Engine) ReleaseFocus() {
	if e.state == StateUnfocused {
		return
	}
	e.notifyChange()
	e.dropFocus()
}

// WindowFocusChanged implements focus.Holder. The caret is hidden
// while the host window is in the background.
func (e *Engine) WindowFocusChanged(focused bool) {
	e.windowFocused = focused
	if !focused {
		e.caretVisible = false
		return
	}
	if e.state != StateUnfocused {
		e.resetCaret(time.Now())
	}
}

func (e *Engine) dropFocus() {
	e.state = StateUnfocused
	e.caretVisible = false
	e.drag.End()
}

// HandleKey processes a translated key event. It returns false when
// the engine is unfocused or the event is not one it understands.
func (e *Engine) HandleKey(ev key.Event) bool {
	if e.state == StateUnfocused {
		return false
	}
	now := ev.Timestamp
	if now.IsZero() {
		now = time.Now()
	}
	e.resetCaret(now)

	if ev.Modifiers.Has(key.ModCtrl) && ev.Key == key.KeyRune {
		return e.handleShortcut(ev.Rune)
	}

	switch ev.Key {
	case key.KeyEnter:
		e.notifyChange()
	case key.KeyBackspace:
		e.Backspace()
	case key.KeyDelete:
		e.DeleteForward()
	case key.KeyLeft:
		e.moveCursor(e.prevOffset(), ev.Modifiers.Has(key.ModShift))
	case key.KeyRight:
		e.moveCursor(e.nextOffset(), ev.Modifiers.Has(key.ModShift))
	case key.KeyHome:
		e.moveCursor(0, ev.Modifiers.Has(key.ModShift))
	case key.KeyEnd:
		e.moveCursor(e.buf.Len(), ev.Modifiers.Has(key.ModShift))
	case key.KeyRune:
		e.InsertRune(ev.Rune)
	default:
		return false
	}
	return true
}

func (e *Engine) handleShortcut(r rune) bool {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	switch r {
	case 'c':
		e.Copy()
	case 'x':
		e.Cut()
	case 'v':
		e.Paste(clipboard.ChannelClipboard)
	case 'a':
		e.SelectAll()
	case 'z':
		e.Undo()
	case 'y':
		e.Redo()
	default:
		return false
	}
	return true
}

func (e *Engine) prevOffset() int {
	if e.cursor == 0 {
		return 0
	}
	_, n := utf8.DecodeLastRuneInString(e.buf.String()[:e.cursor])
	return e.cursor - n
}

func (e *Engine) nextOffset() int {
	if e.cursor >= e.buf.Len() {
		return e.buf.Len()
	}
	_, n := utf8.DecodeRuneInString(e.buf.String()[e.cursor:])
	return e.cursor + n
}

// moveCursor moves the caret, extending the selection when extend is
// set and collapsing it otherwise. Extending mirrors the selection to
// the primary channel.
func (e *Engine) moveCursor(to int, extend bool) {
	e.cursor = to
	if extend {
		e.sel = e.sel.Extend(to)
		e.mirrorSelection()
	} else {
		e.sel = selection.Caret(to)
	}
	e.ensureVisible()
}

// HandleMouse processes a translated mouse event with x in widget
// space. It returns true when the event changed engine state.
func (e *Engine) HandleMouse(ev mouse.Event) bool {
	switch ev.Action {
	case mouse.ActionPress:
		return e.handlePress(ev)
	case mouse.ActionRelease:
		if ev.Button != mouse.ButtonLeft {
			return false
		}
		if !e.drag.Active() {
			return false
		}
		e.drag.End()
		if e.state == StateFocusedSelecting {
			e.state = StateFocusedIdle
		}
		e.mirrorSelection()
		return true
	case mouse.ActionMove:
		return e.handleDrag(ev)
	}
	return false
}

func (e *Engine) handlePress(ev mouse.Event) bool {
	switch ev.Button {
	case mouse.ButtonLeft:
		e.Focus()
		off := e.OffsetAt(ev.X + e.scroll.Offset())
		switch e.clicks.Click(ev.X, ev.Timestamp) {
		case 1:
			e.cursor = off
			e.sel = selection.Caret(off)
			e.drag.Begin(off)
			e.state = StateFocusedSelecting
		case 2:
			e.SelectWord(off)
			e.drag.End()
			e.state = StateFocusedIdle
		case 3:
			e.SelectAll()
			e.drag.End()
			e.state = StateFocusedIdle
		}
		e.ensureVisible()
		return true
	case mouse.ButtonMiddle:
		e.Focus()
		off := e.OffsetAt(ev.X + e.scroll.Offset())
		e.cursor = off
		e.sel = selection.Caret(off)
		e.ensureVisible()
		e.Paste(clipboard.ChannelPrimary)
		return true
	case mouse.ButtonRight:
		// Menu presentation is the host's job; see MenuFlags.
		e.Focus()
		return true
	}
	return false
}

func (e *Engine) handleDrag(ev mouse.Event) bool {
	if !e.drag.Active() || e.state != StateFocusedSelecting {
		return false
	}
	off := e.OffsetAt(ev.X + e.scroll.Offset())
	e.cursor = off
	// The press-time anchor can be past the end if the buffer shrank
	// while the button was held.
	e.sel = selection.New(e.drag.Origin(), off).Clamp(e.buf.Len())
	e.ensureVisible()
	e.scroll.AutoScroll(ev.X, e.ContentWidth())
	e.mirrorSelection()
	return true
}

// OffsetAt maps a content-space x coordinate to the nearest rune
// boundary. Clicks in the left half of a glyph land before it, clicks
// in the right half after it.
func (e *Engine) OffsetAt(x int) int {
	if x <= 0 {
		return 0
	}
	text := e.buf.String()
	left := 0
	for i := 0; i < len(text); {
		_, n := utf8.DecodeRuneInString(text[i:])
		right := e.meas.MeasurePrefix(text, i+n)
		if x < left+(right-left+1)/2 {
			return i
		}
		left = right
		i += n
	}
	return len(text)
}

// Tick advances time-based state: the caret blink phase and the
// expiry of validation flashes. Hosts call it from their timer loop.
func (e *Engine) Tick(now time.Time) {
	if e.state != StateUnfocused && e.windowFocused && e.blinkInterval > 0 &&
		now.Sub(e.lastBlink) >= e.blinkInterval {
		e.caretVisible = !e.caretVisible
		e.lastBlink = now
	}
	if e.vstate != ValidationNeutral && !e.flashStart.IsZero() {
		d := InvalidFlashDuration
		if e.vstate == ValidationValid {
			d = ValidFlashDuration
		}
		if now.Sub(e.flashStart) >= d {
			e.vstate = ValidationNeutral
			e.flashStart = time.Time{}
		}
	}
}

// MenuFlags reports which context-menu commands apply right now.
func (e *Engine) MenuFlags() menu.Flags {
	hasSel := !e.sel.Clamp(e.buf.Len()).IsEmpty()
	hasText := e.buf.Len() > 0
	return menu.Flags{
		Cut:       hasSel,
		Copy:      hasSel,
		Paste:     e.clip.Owned(clipboard.ChannelClipboard),
		SelectAll: hasText,
		Clear:     hasText,
		Undo:      e.hist.CanUndo(),
		Redo:      e.hist.CanRedo(),
	}
}

// Dispatch executes a context-menu command. Disabled commands are
// ignored and reported as unhandled.
func (e *Engine) Dispatch(c menu.Command) bool {
	if !c.Valid() || !e.MenuFlags().Enabled(c) {
		return false
	}
	switch c {
	case menu.CommandCut:
		e.Cut()
	case menu.CommandCopy:
		e.Copy()
	case menu.CommandPaste:
		e.Paste(clipboard.ChannelClipboard)
	case menu.CommandSelectAll:
		e.SelectAll()
	case menu.CommandClear:
		e.Clear()
	case menu.CommandUndo:
		e.Undo()
	case menu.CommandRedo:
		e.Redo()
	}
	return true
}

// deleteSelection removes the selected range and collapses the caret
// to its start. It records no history entry; callers checkpoint first.
func (e *Engine) deleteSelection() bool {
	e.sel = e.sel.Clamp(e.buf.Len())
	if e.sel.IsEmpty() {
		return false
	}
	lo, hi := e.sel.Range()
	e.buf.DeleteRange(lo, hi)
	e.cursor = lo
	e.sel = selection.Caret(lo)
	return true
}

// mirrorSelection pushes the live selection to the primary channel, or
// clears it when the selection collapsed.
func (e *Engine) mirrorSelection() {
	if !e.autoMirror {
		return
	}
	text := e.SelectedText()
	if text == "" {
		e.clip.Clear(clipboard.ChannelPrimary)
		return
	}
	e.clip.SetText(clipboard.ChannelPrimary, text)
}

func (e *Engine) ensureVisible() {
	e.scroll.EnsureVisible(e.CursorX(), e.ContentWidth())
}

// resetCaret makes the caret immediately visible and restarts the
// blink phase, as after any keystroke or click.
func (e *Engine) resetCaret(now time.Time) {
	if e.state == StateUnfocused {
		return
	}
	e.caretVisible = e.windowFocused
	e.lastBlink = now
}

func (e *Engine) notifyChange() {
	if e.onChange != nil {
		e.onChange(e)
	}
}
