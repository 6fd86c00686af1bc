package sixel

// EventKind identifies which Sixel event an Event carries. Events form a
// closed set; Deserializer.HandleEvent switches over every kind
// exhaustively.
type EventKind uint8

const (
	// EventDCS introduces a Sixel payload: ESC P <params> q.
	EventDCS EventKind = iota
	// EventColorIntroducer selects or defines a color register: #n or
	// #n;system;a;b;c.
	EventColorIntroducer
	// EventRasterAttribute declares the intended canvas extent: "pan;pad;ph;pv.
	EventRasterAttribute
	// EventData is one Sixel data byte in [0x3F, 0x7E].
	EventData
	// EventRepeat is a run-length-compressed data byte: !<count><byte>.
	EventRepeat
	// EventGotoBeginningOfLine returns the cursor to column 0 of the
	// current band: $.
	EventGotoBeginningOfLine
	// EventGotoNextLine advances to the next six-line band: -.
	EventGotoNextLine
	// EventUnknownSequence is an unrecognized escape or control sequence.
	EventUnknownSequence
	// EventEnd is the Sixel stream terminator: ESC \.
	EventEnd
)

// Event is a single tokenized Sixel protocol event, as produced by a
// Tokenizer and consumed by a Deserializer. Only the fields relevant to
// Kind are meaningful; see the EventKind constants for which.
type Event struct {
	Kind EventKind

	// EventDCS
	MacroParameter          int64
	TransparentBackground   bool
	HasTransparentBackground bool
	HorizontalPixelDistance int64
	HasHorizontalPixelDistance bool

	// EventColorIntroducer
	ColorNumber uint16
	HasColor    bool // whether Color below is populated (a definition, not just a selection)
	Color       SixelColor

	// EventRasterAttribute
	Pan, Pad int64
	Ph, Pv   int64
	HasPh, HasPv bool

	// EventData / EventRepeat
	Byte        byte
	RepeatCount int

	// EventUnknownSequence
	Unknown []byte
}

// DCSEvent builds an EventDCS.
func DCSEvent(macroParameter int64, transparentBackground bool, hasTransparentBackground bool, horizontalPixelDistance int64, hasHorizontalPixelDistance bool) Event {
	return Event{
		Kind:                       EventDCS,
		MacroParameter:             macroParameter,
		TransparentBackground:      transparentBackground,
		HasTransparentBackground:   hasTransparentBackground,
		HorizontalPixelDistance:    horizontalPixelDistance,
		HasHorizontalPixelDistance: hasHorizontalPixelDistance,
	}
}

// SelectColorEvent builds an EventColorIntroducer that selects an
// already-defined register for subsequent writes.
func SelectColorEvent(colorNumber uint16) Event {
	return Event{Kind: EventColorIntroducer, ColorNumber: colorNumber}
}

// DefineColorEvent builds an EventColorIntroducer that defines or
// overwrites a color register.
func DefineColorEvent(colorNumber uint16, color SixelColor) Event {
	return Event{Kind: EventColorIntroducer, ColorNumber: colorNumber, HasColor: true, Color: color}
}

// RasterAttributeEvent builds an EventRasterAttribute. ph/pv are only
// honored when hasPh/hasPv are true (the fields are optional on the wire).
func RasterAttributeEvent(pan, pad int64, ph int64, hasPh bool, pv int64, hasPv bool) Event {
	return Event{Kind: EventRasterAttribute, Pan: pan, Pad: pad, Ph: ph, HasPh: hasPh, Pv: pv, HasPv: hasPv}
}

// DataEvent builds an EventData for a single raw sixel byte.
func DataEvent(b byte) Event {
	return Event{Kind: EventData, Byte: b}
}

// RepeatEvent builds an EventRepeat for a run-length-compressed sixel byte.
func RepeatEvent(count int, b byte) Event {
	return Event{Kind: EventRepeat, RepeatCount: count, Byte: b}
}

// GotoBeginningOfLineEvent builds an EventGotoBeginningOfLine ($).
func GotoBeginningOfLineEvent() Event { return Event{Kind: EventGotoBeginningOfLine} }

// GotoNextLineEvent builds an EventGotoNextLine (-).
func GotoNextLineEvent() Event { return Event{Kind: EventGotoNextLine} }

// UnknownSequenceEvent builds an EventUnknownSequence carrying the
// offending bytes for diagnostics.
func UnknownSequenceEvent(raw []byte) Event {
	return Event{Kind: EventUnknownSequence, Unknown: raw}
}

// EndEvent builds an EventEnd (ESC \).
func EndEvent() Event { return Event{Kind: EventEnd} }
