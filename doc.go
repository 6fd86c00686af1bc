// Package sixel decodes, manipulates, and re-encodes images expressed in
// the DEC Sixel terminal graphics format.
//
// Sixel packs six vertical pixels into one printable byte. This package
// turns a Sixel byte stream into an in-memory pixel grid with a color
// register table, and turns that grid back into canonical Sixel bytes.
//
// # Quick Start
//
//	img, err := sixel.Decode([]byte("\x1bPq#0;2;0;0;0#0~\x1b\\"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	height, width := img.Size()
//	out := img.Serialize()
//
// # Architecture
//
// The package is organized around these core types:
//
//   - [Tokenizer]: turns raw bytes into [Event] values, one byte at a time
//   - [Deserializer]: consumes [Event] values and builds an [Image]
//   - [Image]: owns the pixel grid and color register table
//
// # Decoding
//
// [Decode] is the common entry point; it drives a [Tokenizer] and a
// [Deserializer] to completion and returns the resulting [Image]:
//
//	img, err := sixel.Decode(data)
//
// [DecodeWithMaxHeight] stops parsing once the requested pixel height has
// been reached, discarding the remainder of the stream:
//
//	img, err := sixel.DecodeWithMaxHeight(data, 600)
//
// For direct control over the event stream (for example, to parse bytes
// as they arrive rather than from a single buffer), drive a
// [Deserializer] manually:
//
//	d := sixel.NewDeserializer()
//	tok := sixel.NewTokenizer()
//	for _, b := range data {
//	    for _, ev := range tok.Advance(b) {
//	        if err := d.HandleEvent(ev); err != nil {
//	            log.Fatal(err)
//	        }
//	    }
//	}
//	img, err := d.CreateImage()
//
// # Serialization
//
// [Image.Serialize] always produces a canonical stream: raster attributes
// are never reproduced on output, color registers are hoisted above pixel
// data and emitted in ascending register order, and adjacent identical
// sixel bytes are run-length compressed. Decoding a canonical stream and
// re-serializing it reproduces the original bytes.
//
//	out := img.Serialize()
//
// [Image.SerializeRange] serializes only a rectangular window of the
// image, leaving the image itself unchanged:
//
//	out := img.SerializeRange(x, y, width, height)
//
// # Erasing
//
// [Image.EraseRect] turns off every pixel in a rectangle in place. Erased
// pixels keep their color register (it is simply never drawn again):
//
//	img.EraseRect(x, y, width, height)
//
// # Non-goals
//
// This package does not render Sixel images to a display, does not
// convert between RGB and HSL color spaces, does not honor the pan/pad
// aspect-ratio fields of raster attributes, and does not dither,
// quantize, or otherwise reduce a true-color source image to a palette —
// callers are expected to hand this package pixels that already carry
// color register ids.
package sixel
