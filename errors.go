package sixel

import "errors"

// ErrCorruptedSequence is returned when a Sixel stream is malformed: a
// non-DCS event arrives before the DCS introducer, the tokenizer
// produces an UnknownSequence event, or CreateImage is called on a
// deserializer that never saw a DCS introducer.
var ErrCorruptedSequence = errors.New("corrupted sixel sequence")
