package sixel

// Image is a decoded Sixel picture: a jagged pixel grid plus the color
// register table its pixels reference. Rows are not required to share a
// length; the image's width is defined as the length of row 0 (zero if
// the image has no rows drawn into it). Image is immutable except for
// EraseRect.
type Image struct {
	colorRegisters map[uint16]SixelColor
	pixels         [][]Pixel
}

// Decode parses a complete Sixel byte stream into an Image.
func Decode(data []byte) (*Image, error) {
	return decode(data, nil)
}

// DecodeWithMaxHeight parses a Sixel byte stream, discarding any pixel
// rows beyond maxHeight. Parsing stops as soon as it is safe to do so
// (see Deserializer's GotoNextLine handling); bytes after that point are
// still tokenized, but the events they produce are ignored.
func DecodeWithMaxHeight(data []byte, maxHeight int) (*Image, error) {
	return decode(data, []DeserializerOption{WithMaxHeight(maxHeight)})
}

func decode(data []byte, opts []DeserializerOption) (*Image, error) {
	tok := NewTokenizer()
	d := NewDeserializer(opts...)
	for _, b := range data {
		for _, ev := range tok.Advance(b) {
			if err := d.HandleEvent(ev); err != nil {
				return nil, err
			}
		}
	}
	return d.CreateImage()
}

// Size returns (height, width) in pixels. Width is the length of row 0,
// or 0 if the image has no rows.
func (img *Image) Size() (height, width int) {
	height = len(img.pixels)
	if height > 0 {
		width = len(img.pixels[0])
	}
	return height, width
}

// Serialize re-encodes the whole image as a canonical Sixel byte stream.
func (img *Image) Serialize() string {
	return serialize(img.colorRegisters, img.pixels, 0, 0, nil, nil)
}

// SerializeRange re-encodes only the rectangle starting at (x, y) with
// the given width and height. The image itself is unchanged.
func (img *Image) SerializeRange(x, y, width, height int) string {
	return serialize(img.colorRegisters, img.pixels, x, y, &width, &height)
}

// EraseRect turns off every pixel in the rectangle [x, x+width) x
// [y, y+height), clamped to the image's actual extent. Color fields are
// left untouched; they are simply irrelevant while the pixel is off.
func (img *Image) EraseRect(x, y, width, height int) {
	endY := y + height
	if endY > len(img.pixels) {
		endY = len(img.pixels)
	}
	for yi := y; yi < endY; yi++ {
		if yi < 0 {
			continue
		}
		row := img.pixels[yi]
		endX := x + width
		if endX > len(row) {
			endX = len(row)
		}
		for xi := x; xi < endX; xi++ {
			if xi < 0 {
				continue
			}
			row[xi].On = false
		}
	}
}
