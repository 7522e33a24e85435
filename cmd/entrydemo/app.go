package main

import (
	"strconv"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pixelprism/entryline/internal/clipboard"
	"github.com/pixelprism/entryline/internal/config"
	"github.com/pixelprism/entryline/internal/engine"
	"github.com/pixelprism/entryline/internal/focus"
	"github.com/pixelprism/entryline/internal/hexcolor"
	"github.com/pixelprism/entryline/internal/input/key"
	"github.com/pixelprism/entryline/internal/input/mouse"
	"github.com/pixelprism/entryline/internal/measure"
)

const (
	fieldX     = 12
	fieldWidth = 24
	tickEvery  = 50 * time.Millisecond
)

type field struct {
	label string
	eng   *engine.Engine
	y     int
}

type app struct {
	screen  tcell.Screen
	cfg     config.Config
	arbiter *focus.Arbiter
	fields  []*field
	prev    tcell.ButtonMask
	quit    chan struct{}
}

func newApp(configPath string) (*app, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return nil, err
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	a := &app{
		screen:  screen,
		cfg:     cfg,
		arbiter: focus.New(),
		quit:    make(chan struct{}),
	}

	var clip clipboard.Service = clipboard.NewMemory()
	if sys := clipboard.NewSystem(); sys.Available() {
		clip = sys
	}

	shared := []engine.Option{
		engine.WithMeasurer(measure.NewMono(1)),
		engine.WithClipboard(clip),
		engine.WithArbiter(a.arbiter),
		engine.WithVisibleWidth(fieldWidth),
	}

	a.fields = []*field{
		{label: "Name", y: 1, eng: engine.New(append(cfg.Options(engine.KindText), shared...)...)},
		{label: "Count", y: 3, eng: engine.New(append(cfg.Options(engine.KindInteger),
			append(shared, engine.WithChangeFunc(commitInteger))...)...)},
		{label: "Color", y: 5, eng: engine.New(append(cfg.Options(engine.KindHex),
			append(shared, engine.WithChangeFunc(a.commitHex), engine.WithText("#FF00AA"))...)...)},
	}
	return a, nil
}

func (a *app) close() {
	for _, f := range a.fields {
		f.eng.Close()
	}
	a.screen.Fini()
}

// commitInteger flashes whether the committed text parses as a number
// once grouping separators are stripped.
func commitInteger(e *engine.Engine) {
	cleaned := strings.Map(func(r rune) rune {
		if r == ',' || r == ' ' {
			return -1
		}
		return r
	}, e.Text())
	if cleaned == "" {
		e.SetValidationState(engine.ValidationNeutral, time.Now())
		return
	}
	if _, err := strconv.ParseInt(cleaned, 10, 64); err != nil {
		e.SetValidationState(engine.ValidationInvalid, time.Now())
		return
	}
	e.SetValidationState(engine.ValidationValid, time.Now())
}

// commitHex normalizes the color to canonical six-digit form.
func (a *app) commitHex(e *engine.Engine) {
	normalized, err := hexcolor.Normalize(e.Text(), a.cfg.Input.UppercaseHex, true)
	if err != nil {
		e.SetValidationState(engine.ValidationInvalid, time.Now())
		return
	}
	e.SetText(normalized)
	e.SetValidationState(engine.ValidationValid, time.Now())
}

func (a *app) loop() error {
	go func() {
		ticker := time.NewTicker(tickEvery)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				_ = a.screen.PostEvent(tcell.NewEventInterrupt(nil))
			case <-a.quit:
				return
			}
		}
	}()

	a.draw()
	for {
		switch ev := a.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlQ {
				close(a.quit)
				return nil
			}
			if ev.Key() == tcell.KeyTab {
				a.cycleFocus()
			} else if kev, ok := translateKey(ev); ok {
				for _, f := range a.fields {
					if f.eng.HandleKey(kev) {
						break
					}
				}
			}
		case *tcell.EventMouse:
			a.handleMouse(ev)
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventInterrupt:
			now := time.Now()
			for _, f := range a.fields {
				f.eng.Tick(now)
			}
		case nil:
			return nil
		}
		a.draw()
	}
}

func (a *app) cycleFocus() {
	cur := -1
	for i, f := range a.fields {
		if f.eng.Focused() {
			cur = i
			break
		}
	}
	a.fields[(cur+1)%len(a.fields)].eng.Focus()
}

func (a *app) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons()
	pressed := buttons &^ a.prev
	released := a.prev &^ buttons
	a.prev = buttons

	target := a.fieldAt(y)
	if target == nil {
		if pressed&tcell.Button1 != 0 {
			if cur, ok := a.arbiter.Current().(*engine.Engine); ok {
				cur.Unfocus()
			}
		}
		return
	}
	wx := x - fieldX

	send := func(b mouse.Button, act mouse.Action) {
		target.eng.HandleMouse(mouse.Event{
			X: wx, Y: 0, Button: b, Action: act, Timestamp: ev.When(),
		})
	}

	switch {
	case pressed&tcell.Button1 != 0:
		send(mouse.ButtonLeft, mouse.ActionPress)
	case pressed&tcell.Button3 != 0:
		send(mouse.ButtonMiddle, mouse.ActionPress)
	case pressed&tcell.Button2 != 0:
		send(mouse.ButtonRight, mouse.ActionPress)
	case released&tcell.Button1 != 0:
		send(mouse.ButtonLeft, mouse.ActionRelease)
	case buttons&tcell.Button1 != 0:
		send(mouse.ButtonNone, mouse.ActionMove)
	}
}

func (a *app) fieldAt(y int) *field {
	for _, f := range a.fields {
		if f.y == y {
			return f
		}
	}
	return nil
}

func translateKey(ev *tcell.EventKey) (key.Event, bool) {
	mods := key.ModNone
	if ev.Modifiers()&tcell.ModShift != 0 {
		mods |= key.ModShift
	}
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mods |= key.ModCtrl
	}
	ts := ev.When()

	switch ev.Key() {
	case tcell.KeyRune:
		return key.Event{Key: key.KeyRune, Rune: ev.Rune(), Modifiers: mods, Timestamp: ts}, true
	case tcell.KeyLeft:
		return key.Event{Key: key.KeyLeft, Modifiers: mods, Timestamp: ts}, true
	case tcell.KeyRight:
		return key.Event{Key: key.KeyRight, Modifiers: mods, Timestamp: ts}, true
	case tcell.KeyHome:
		return key.Event{Key: key.KeyHome, Modifiers: mods, Timestamp: ts}, true
	case tcell.KeyEnd:
		return key.Event{Key: key.KeyEnd, Modifiers: mods, Timestamp: ts}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.Event{Key: key.KeyBackspace, Modifiers: mods, Timestamp: ts}, true
	case tcell.KeyDelete:
		return key.Event{Key: key.KeyDelete, Modifiers: mods, Timestamp: ts}, true
	case tcell.KeyEnter:
		return key.Event{Key: key.KeyEnter, Modifiers: mods, Timestamp: ts}, true
	case tcell.KeyCtrlA:
		return key.NewRuneEvent('a', key.ModCtrl), true
	case tcell.KeyCtrlC:
		return key.NewRuneEvent('c', key.ModCtrl), true
	case tcell.KeyCtrlX:
		return key.NewRuneEvent('x', key.ModCtrl), true
	case tcell.KeyCtrlV:
		return key.NewRuneEvent('v', key.ModCtrl), true
	case tcell.KeyCtrlZ:
		return key.NewRuneEvent('z', key.ModCtrl), true
	case tcell.KeyCtrlY:
		return key.NewRuneEvent('y', key.ModCtrl), true
	}
	return key.Event{}, false
}

func (a *app) draw() {
	a.screen.Clear()
	drawString(a.screen, 2, 7, tcell.StyleDefault.Dim(true),
		"tab: next field  esc: quit  ctrl-z/y: undo/redo")

	for _, f := range a.fields {
		a.drawField(f)
	}
	a.screen.Show()
}

func (a *app) drawField(f *field) {
	drawString(a.screen, 2, f.y, tcell.StyleDefault, f.label)

	base := tcell.StyleDefault
	switch f.eng.ValidationState() {
	case engine.ValidationInvalid:
		base = base.Background(tcell.ColorDarkRed)
	case engine.ValidationValid:
		base = base.Background(tcell.ColorDarkGreen)
	}
	if f.eng.Focused() {
		base = base.Underline(true)
	}

	text := f.eng.Text()
	offset := f.eng.ScrollOffset()
	sel := f.eng.Selection()
	caret := f.eng.Cursor()

	col := 0
	for i, r := range text {
		cx := col - offset
		col++
		if cx < 0 || cx >= fieldWidth {
			continue
		}
		st := base
		if sel.Contains(i) {
			st = st.Reverse(true)
		}
		if i == caret && f.eng.CaretVisible() {
			st = st.Reverse(true).Blink(true)
		}
		a.screen.SetContent(fieldX+cx, f.y, r, nil, st)
	}
	// caret past the last rune
	if caret >= len(text) && f.eng.CaretVisible() {
		cx := f.eng.CursorX() - offset
		if cx >= 0 && cx < fieldWidth {
			a.screen.SetContent(fieldX+cx, f.y, ' ', nil, base.Reverse(true))
		}
	}
}

func drawString(s tcell.Screen, x, y int, st tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, st)
		x++
	}
}
