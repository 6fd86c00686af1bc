package sixel

// tokenizerState is the Tokenizer's internal lexical state. States map
// directly onto the wire grammar in spec.md §6: a DCS header, then a
// sixel body made of single-char commands, color introducers, raster
// attributes, and repeat-compressed data.
type tokenizerState uint8

const (
	stateGround tokenizerState = iota
	stateEscape
	stateDCSParams
	stateBody
	stateBodyEscape
	stateRepeatCount
	stateColorNumber
	stateColorSystem
	stateColorV1
	stateColorV2
	stateColorV3
	stateRasterPan
	stateRasterPad
	stateRasterPh
	stateRasterPv
)

// Tokenizer turns a raw Sixel byte stream into a sequence of Events, one
// byte at a time. It performs no semantic interpretation of its own — it
// is the external collaborator spec.md §6 describes, implemented here
// because this module has no upstream dependency to supply it.
//
// Tokenizer is stateful and not safe for concurrent use; feed it bytes
// from a single goroutine in order.
type Tokenizer struct {
	state tokenizerState

	curValue int64

	dcsFields []int64

	colorNumber int64
	colorSystem int64
	colorV1     int64
	colorV2     int64

	panVal, padVal, phVal int64
	hasPh                 bool
}

// NewTokenizer returns a Tokenizer ready to consume a fresh Sixel stream,
// starting in ground state (waiting for the DCS introducer).
func NewTokenizer() *Tokenizer {
	return &Tokenizer{state: stateGround}
}

func isSixelDataByte(b byte) bool { return b >= 0x3F && b <= 0x7E }

func (t *Tokenizer) resetNumber() {
	t.curValue = 0
}

func (t *Tokenizer) accumDigit(b byte) {
	t.curValue = t.curValue*10 + int64(b-'0')
}

// Advance feeds one byte into the tokenizer and returns the (possibly
// empty) sequence of Events it produced. A single byte can produce more
// than one event (for example the byte that terminates a raster
// attribute is immediately reinterpreted as the start of the next
// token), and most bytes produce none (they are accumulating into a
// number or escape sequence still in progress).
func (t *Tokenizer) Advance(b byte) []Event {
	var events []Event
	reprocess := true
	for reprocess {
		reprocess = false
		switch t.state {
		case stateGround:
			if b == 0x1b {
				t.state = stateEscape
			}
			// Bytes before the DCS introducer are silently discarded by
			// the tokenizer itself; the deserializer is the one that
			// treats "anything before DCS" as corrupted.

		case stateEscape:
			if b == 'P' {
				t.dcsFields = nil
				t.resetNumber()
				t.state = stateDCSParams
			} else {
				events = append(events, UnknownSequenceEvent([]byte{0x1b, b}))
				t.state = stateGround
			}

		case stateDCSParams:
			switch {
			case b >= '0' && b <= '9':
				t.accumDigit(b)
			case b == ';':
				t.dcsFields = append(t.dcsFields, t.curValue)
				t.resetNumber()
			case b == 'q':
				t.dcsFields = append(t.dcsFields, t.curValue)
				events = append(events, t.buildDCSEvent())
				t.state = stateBody
			default:
				events = append(events, UnknownSequenceEvent([]byte{b}))
				t.state = stateGround
			}

		case stateBody:
			switch {
			case b == 0x1b:
				t.state = stateBodyEscape
			case b == '$':
				events = append(events, GotoBeginningOfLineEvent())
			case b == '-':
				events = append(events, GotoNextLineEvent())
			case b == '!':
				t.resetNumber()
				t.state = stateRepeatCount
			case b == '#':
				t.resetNumber()
				t.state = stateColorNumber
			case b == '"':
				t.resetNumber()
				t.state = stateRasterPan
			case isSixelDataByte(b):
				events = append(events, DataEvent(b))
			default:
				events = append(events, UnknownSequenceEvent([]byte{b}))
			}

		case stateBodyEscape:
			if b == '\\' {
				events = append(events, EndEvent())
				t.state = stateGround
			} else {
				events = append(events, UnknownSequenceEvent([]byte{0x1b, b}))
				t.state = stateBody
			}

		case stateRepeatCount:
			switch {
			case b >= '0' && b <= '9':
				t.accumDigit(b)
			case isSixelDataByte(b):
				events = append(events, RepeatEvent(int(t.curValue), b))
				t.state = stateBody
			default:
				events = append(events, UnknownSequenceEvent([]byte{b}))
				t.state = stateBody
			}

		case stateColorNumber:
			switch {
			case b >= '0' && b <= '9':
				t.accumDigit(b)
			case b == ';':
				t.colorNumber = t.curValue
				t.resetNumber()
				t.state = stateColorSystem
			default:
				events = append(events, SelectColorEvent(uint16(t.curValue)))
				t.state = stateBody
				reprocess = true
			}

		case stateColorSystem:
			switch {
			case b >= '0' && b <= '9':
				t.accumDigit(b)
			case b == ';':
				t.colorSystem = t.curValue
				t.resetNumber()
				t.state = stateColorV1
			default:
				// Partial definition (e.g. "#1;2" with no components):
				// still selects the register, matching the lenient
				// reference parser.
				events = append(events, SelectColorEvent(uint16(t.colorNumber)))
				t.state = stateBody
				reprocess = true
			}

		case stateColorV1:
			switch {
			case b >= '0' && b <= '9':
				t.accumDigit(b)
			case b == ';':
				t.colorV1 = t.curValue
				t.resetNumber()
				t.state = stateColorV2
			default:
				events = append(events, SelectColorEvent(uint16(t.colorNumber)))
				t.state = stateBody
				reprocess = true
			}

		case stateColorV2:
			switch {
			case b >= '0' && b <= '9':
				t.accumDigit(b)
			case b == ';':
				t.colorV2 = t.curValue
				t.resetNumber()
				t.state = stateColorV3
			default:
				events = append(events, SelectColorEvent(uint16(t.colorNumber)))
				t.state = stateBody
				reprocess = true
			}

		case stateColorV3:
			switch {
			case b >= '0' && b <= '9':
				t.accumDigit(b)
			default:
				v3 := t.curValue
				var color SixelColor
				if t.colorSystem == 1 {
					color = HSL(uint16(t.colorV1), uint16(t.colorV2), uint16(v3))
				} else {
					color = RGB(uint16(t.colorV1), uint16(t.colorV2), uint16(v3))
				}
				events = append(events, DefineColorEvent(uint16(t.colorNumber), color))
				t.state = stateBody
				reprocess = true
			}

		case stateRasterPan:
			switch {
			case b >= '0' && b <= '9':
				t.accumDigit(b)
			case b == ';':
				t.panVal = t.curValue
				t.resetNumber()
				t.state = stateRasterPad
			default:
				events = append(events, RasterAttributeEvent(t.curValue, 0, 0, false, 0, false))
				t.state = stateBody
				reprocess = true
			}

		case stateRasterPad:
			switch {
			case b >= '0' && b <= '9':
				t.accumDigit(b)
			case b == ';':
				t.padVal = t.curValue
				t.resetNumber()
				t.state = stateRasterPh
			default:
				events = append(events, RasterAttributeEvent(t.panVal, t.curValue, 0, false, 0, false))
				t.state = stateBody
				reprocess = true
			}

		case stateRasterPh:
			switch {
			case b >= '0' && b <= '9':
				t.accumDigit(b)
			case b == ';':
				t.phVal = t.curValue
				t.hasPh = true
				t.resetNumber()
				t.state = stateRasterPv
			default:
				events = append(events, RasterAttributeEvent(t.panVal, t.padVal, t.curValue, true, 0, false))
				t.state = stateBody
				reprocess = true
			}

		case stateRasterPv:
			switch {
			case b >= '0' && b <= '9':
				t.accumDigit(b)
			default:
				events = append(events, RasterAttributeEvent(t.panVal, t.padVal, t.phVal, t.hasPh, t.curValue, true))
				t.state = stateBody
				reprocess = true
			}
		}
	}
	return events
}

// buildDCSEvent interprets the collected DCS parameters as
// (macro_parameter, transparent_background_flag, horizontal_pixel_distance),
// matching DECSIXEL's P1;P2;P3 positions.
func (t *Tokenizer) buildDCSEvent() Event {
	var macroParam int64
	var bgFlag int64
	var hasBgFlag bool
	var hpd int64
	var hasHPD bool

	if len(t.dcsFields) >= 1 {
		macroParam = t.dcsFields[0]
	}
	if len(t.dcsFields) >= 2 {
		bgFlag = t.dcsFields[1]
		hasBgFlag = true
	}
	if len(t.dcsFields) >= 3 {
		hpd = t.dcsFields[2]
		hasHPD = true
	}
	return DCSEvent(macroParam, bgFlag == 1, hasBgFlag, hpd, hasHPD)
}
