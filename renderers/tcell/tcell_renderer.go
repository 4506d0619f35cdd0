package tcell

import (
	"battgauge/model"
	"battgauge/stream"
	"battgauge/widgets"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type tcellRenderer struct {
	events  *stream.Stream[model.Event]
	screen  tcell.Screen
	profile termenv.Profile
	output  *termenv.Output
	fg, bg  termenv.Color
	style   widgets.Style

	mu               sync.Mutex
	mouseTargetAreas []mouseTargetArea
}

type mouseTargetArea struct {
	model.Event
	widgets.Position
	widgets.Size
}

var defaultStyle = widgets.Style{FG: 231, BG: 17}

// NewRenderer takes over the terminal and starts translating its events
// into model events.
func NewRenderer(events *stream.Stream[model.Event]) (*tcellRenderer, error) {
	output := termenv.NewOutput(os.Stdout)
	fg := output.ForegroundColor()
	bg := output.BackgroundColor()

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "failed to initialize screen")
	}

	renderer := newRenderer(screen, events, output.ColorProfile())
	renderer.output, renderer.fg, renderer.bg = output, fg, bg

	go func() {
		for renderer.handleEvent() {
		}
	}()

	return renderer, nil
}

func newRenderer(screen tcell.Screen, events *stream.Stream[model.Event], profile termenv.Profile) *tcellRenderer {
	screen.EnableMouse()
	screen.SetStyle(tcell.StyleDefault)
	return &tcellRenderer{
		events:  events,
		screen:  screen,
		profile: profile,
		style:   defaultStyle,
	}
}

func (r *tcellRenderer) Size() model.ScreenSize {
	w, h := r.screen.Size()
	return model.ScreenSize{Width: w, Height: h}
}

// handleEvent reports false once the screen is finalized.
func (r *tcellRenderer) handleEvent() bool {
	event := r.screen.PollEvent()
	for {
		if ev, mouseEvent := event.(*tcell.EventMouse); !mouseEvent || ev.Buttons() != 0 {
			break
		}
		event = r.screen.PollEvent()
	}

	if event == nil {
		return false
	}
	switch tcellEvent := event.(type) {
	case *tcell.EventResize:
		r.screen.Sync()
		w, h := tcellEvent.Size()
		r.events.Push(model.ScreenSize{Width: w, Height: h})

	case *tcell.EventKey:
		r.handleKeyEvent(tcellEvent)

	case *tcell.EventMouse:
		r.handleMouseEvent(tcellEvent)

	default:
		log.Debug().Msgf("unhandled tcell event: %T", tcellEvent)
	}
	return true
}

func (r *tcellRenderer) handleKeyEvent(key *tcell.EventKey) {
	log.Debug().Str("key", key.Name()).Msg("key event")
	if key.Key() == tcell.KeyRune {
		switch key.Rune() {
		case 'o', 'O':
			r.events.Push(model.ToggleOrientation{})
		case '+', '=':
			r.events.Push(model.ChangeSegments{Delta: 1})
		case '-', '_':
			r.events.Push(model.ChangeSegments{Delta: -1})
		case 'q', 'Q':
			r.events.Push(model.Quit{})
		}
		return
	}

	switch key.Name() {
	case "Ctrl+C", "Esc":
		r.events.Push(model.Quit{})

	case "Left", "Down":
		r.events.Push(model.MoveSlider{Steps: -1})

	case "Right", "Up":
		r.events.Push(model.MoveSlider{Steps: 1})

	case "PgDn":
		r.events.Push(model.MoveSlider{Steps: -10})

	case "PgUp":
		r.events.Push(model.MoveSlider{Steps: 10})

	case "Home":
		r.events.Push(model.SliderFirst{})

	case "End":
		r.events.Push(model.SliderLast{})
	}
}

func (r *tcellRenderer) handleMouseEvent(event *tcell.EventMouse) {
	if event.Buttons()&tcell.Button1 == 0 {
		return
	}
	x, y := event.Position()

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, target := range r.mouseTargetAreas {
		if target.Position.X <= x && target.Position.X+target.Size.Width > x &&
			target.Position.Y <= y && target.Position.Y+target.Size.Height > y {

			r.events.Push(target.Event)
			return
		}
	}
}

func (r *tcellRenderer) AddMouseTarget(event model.Event, pos widgets.Position, size widgets.Size) {
	r.mu.Lock()
	r.mouseTargetAreas = append(r.mouseTargetAreas, mouseTargetArea{Event: event, Position: pos, Size: size})
	r.mu.Unlock()
}

func (r *tcellRenderer) SetStyle(style widgets.Style) {
	r.style = style
}

func (r *tcellRenderer) CurrentStyle() widgets.Style {
	return r.style
}

func (r *tcellRenderer) Text(runes []rune, pos widgets.Position) {
	style := r.tcellStyle(r.style)
	for i, ch := range runes {
		r.screen.SetContent(pos.X+i, pos.Y, ch, nil, style)
	}
}

func (r *tcellRenderer) tcellStyle(style widgets.Style) tcell.Style {
	result := tcell.StyleDefault.
		Bold(style.Flags&widgets.Bold == widgets.Bold).
		Italic(style.Flags&widgets.Italic == widgets.Italic).
		Reverse(style.Flags&widgets.Reverse == widgets.Reverse)
	if r.profile == termenv.Ascii {
		return result
	}
	return result.
		Foreground(tcell.PaletteColor(int(style.FG))).
		Background(tcell.PaletteColor(int(style.BG)))
}

func (r *tcellRenderer) Show() {
	r.screen.Show()
}

func (r *tcellRenderer) Reset() {
	r.mu.Lock()
	r.mouseTargetAreas = r.mouseTargetAreas[:0]
	r.mu.Unlock()
}

// Stop releases the terminal and restores the colours it had before.
func (r *tcellRenderer) Stop() {
	r.screen.Fini()
	if r.output != nil {
		if r.fg != nil {
			r.output.SetForegroundColor(r.fg)
		}
		if r.bg != nil {
			r.output.SetBackgroundColor(r.bg)
		}
	}
}
