package sixel

import "fmt"

// DeserializerOption configures a Deserializer at construction time,
// following the same functional-options shape the teacher package uses
// for its one stateful type.
type DeserializerOption func(*Deserializer)

// WithMaxHeight bounds how many pixel rows the deserializer will parse.
// Once the cursor would need six more rows to safely continue past
// maxHeight, parsing silently stops: GotoNextLine events stop advancing
// the cursor and every event after that point is accepted as a no-op.
func WithMaxHeight(maxHeight int) DeserializerOption {
	return func(d *Deserializer) {
		d.maxHeight = &maxHeight
	}
}

// Deserializer is a streaming state machine that consumes Events (as
// produced by a Tokenizer) and assembles a pixel grid and color register
// table. It is a one-shot type: CreateImage consumes the accumulated
// state, and a Deserializer must not be reused afterward.
type Deserializer struct {
	colorRegisters map[uint16]SixelColor
	currentColor   uint16
	cursorY        int
	cursorX        int
	pixels         [][]Pixel
	maxHeight      *int
	stop           bool
	gotDCS         bool
	transparentBG  bool
	consumed       bool
}

// NewDeserializer returns a Deserializer ready to consume a fresh event
// stream. The pixel grid starts with one empty row, and current_color
// starts at register 0 even though register 0 may never be defined —
// this mirrors the reference implementation's documented free-for-all.
func NewDeserializer(opts ...DeserializerOption) *Deserializer {
	d := &Deserializer{
		colorRegisters: make(map[uint16]SixelColor),
		pixels:         [][]Pixel{{}},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// HandleEvent applies one Event to the deserializer's state. Every event
// except the first DCS event is rejected with ErrCorruptedSequence until
// a DCS event has been seen.
func (d *Deserializer) HandleEvent(event Event) error {
	if !d.gotDCS && event.Kind != EventDCS {
		return fmt.Errorf("%w: event before DCS introducer", ErrCorruptedSequence)
	}
	if d.stop {
		return nil
	}

	switch event.Kind {
	case EventDCS:
		d.gotDCS = true
		if event.HasTransparentBackground && event.TransparentBackground {
			d.transparentBG = true
		}

	case EventColorIntroducer:
		if event.HasColor {
			d.colorRegisters[event.ColorNumber] = event.Color
		} else {
			d.currentColor = event.ColorNumber
		}

	case EventRasterAttribute:
		if !d.transparentBG {
			if event.HasPv {
				d.padVertical(int(event.Pv))
			}
			if event.HasPh {
				d.padHorizontal(int(event.Ph))
			}
		}

	case EventData:
		d.ensureRowsThroughCursor()
		d.writeColumn(event.Byte, 1)
		d.cursorX++

	case EventRepeat:
		if event.RepeatCount == 0 {
			return nil
		}
		d.ensureRowsThroughCursor()
		d.writeColumn(event.Byte, event.RepeatCount)
		d.cursorX += event.RepeatCount

	case EventGotoBeginningOfLine:
		d.cursorX = 0

	case EventGotoNextLine:
		if d.maxHeight != nil && d.cursorY+12 > *d.maxHeight {
			d.stop = true
			return nil
		}
		d.cursorY += 6
		d.cursorX = 0

	case EventUnknownSequence:
		return fmt.Errorf("%w: unrecognized sequence", ErrCorruptedSequence)

	case EventEnd:
		// no-op

	default:
		return fmt.Errorf("%w: unhandled event kind %d", ErrCorruptedSequence, event.Kind)
	}
	return nil
}

// ensureRowsThroughCursor grows the pixel grid so rows [cursorY, cursorY+5]
// all exist, ready to receive the current six-pixel column.
func (d *Deserializer) ensureRowsThroughCursor() {
	needed := d.cursorY + 6
	for len(d.pixels) < needed {
		d.pixels = append(d.pixels, []Pixel{})
	}
}

// writeColumn draws one sixel data byte repeatCount times starting at
// cursorX, within the six rows starting at cursorY. Rows grow by
// appending, never by random-access insertion: a position past the end
// of a row is always appended to that row's tail, matching the
// reference parser exactly (including its asymmetric never-turn-off
// overwrite rule).
func (d *Deserializer) writeColumn(b byte, repeatCount int) {
	bits := sixBits(b)
	for i := 0; i < 6; i++ {
		row := d.pixels[d.cursorY+i]
		bit := bits[i]
		for k := 0; k < repeatCount; k++ {
			pos := d.cursorX + k
			if pos < len(row) {
				if bit {
					row[pos] = Pixel{On: true, Color: d.currentColor}
				}
			} else {
				row = append(row, Pixel{On: bit, Color: d.currentColor})
			}
		}
		d.pixels[d.cursorY+i] = row
	}
}

// padVertical appends rows until the grid has at least padUntil rows.
// Each new row is filled with padUntil pixels (not the horizontal
// extent) — a quirk of the source this implementation intentionally
// reproduces; see DESIGN.md.
func (d *Deserializer) padVertical(padUntil int) {
	if len(d.pixels) >= padUntil {
		return
	}
	for len(d.pixels) < padUntil {
		row := make([]Pixel, padUntil)
		for i := range row {
			row[i] = Pixel{On: true, Color: d.currentColor}
		}
		d.pixels = append(d.pixels, row)
	}
}

// padHorizontal extends every existing row shorter than padUntil.
func (d *Deserializer) padHorizontal(padUntil int) {
	for i, row := range d.pixels {
		if len(row) >= padUntil {
			continue
		}
		for len(row) < padUntil {
			row = append(row, Pixel{On: true, Color: d.currentColor})
		}
		d.pixels[i] = row
	}
}

// CreateImage finalizes the deserialized state into an Image and
// consumes the deserializer: further calls return ErrCorruptedSequence.
func (d *Deserializer) CreateImage() (*Image, error) {
	if !d.gotDCS || d.consumed {
		return nil, fmt.Errorf("%w: no DCS introducer seen", ErrCorruptedSequence)
	}
	img := &Image{
		colorRegisters: d.colorRegisters,
		pixels:         d.pixels,
	}
	d.colorRegisters = nil
	d.pixels = nil
	d.consumed = true
	return img, nil
}
