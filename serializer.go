package sixel

import (
	"sort"
	"strings"
)

// serialize walks an image in six-line bands and renders the canonical
// Sixel byte stream. When bounds are nil the whole image is serialized;
// otherwise only the rectangle starting at (startX, startY) with the
// given width/height is. Raster attributes are never reproduced — the
// canvas size is instead expressed through explicit padding pixels
// emitted as ordinary sixel data, per spec.md §4.4.
func serialize(colorRegisters map[uint16]SixelColor, pixels [][]Pixel, startX, startY int, width, height *int) string {
	var out strings.Builder
	out.WriteString("\x1bPq")
	writeColorRegisters(&out, colorRegisters)
	writePixels(&out, pixels, startX, startY, width, height)
	out.WriteString("\x1b\\")
	return out.String()
}

func writeColorRegisters(out *strings.Builder, colorRegisters map[uint16]SixelColor) {
	registers := make([]uint16, 0, len(colorRegisters))
	for id := range colorRegisters {
		registers = append(registers, id)
	}
	sort.Slice(registers, func(i, j int) bool { return registers[i] < registers[j] })

	for _, id := range registers {
		c := colorRegisters[id]
		out.WriteByte('#')
		writeUint(out, uint64(id))
		switch c.System {
		case ColorSystemHSL:
			out.WriteString(";1;")
		default:
			out.WriteString(";2;")
		}
		writeUint(out, uint64(c.X))
		out.WriteByte(';')
		writeUint(out, uint64(c.Y))
		out.WriteByte(';')
		writeUint(out, uint64(c.Z))
	}
}

// saturatingSubOne returns v-1, clamped to 0, matching Rust's
// usize::saturating_sub(1) used to turn a width/height bound into an
// inclusive max index.
func saturatingSubOne(v int) int {
	if v <= 0 {
		return 0
	}
	return v - 1
}

func writePixels(out *strings.Builder, pixels [][]Pixel, startX, startY int, width, height *int) {
	var maxXIndex, maxYIndex *int
	if width != nil {
		m := saturatingSubOne(startX + *width)
		maxXIndex = &m
	}
	if height != nil {
		m := saturatingSubOne(startY + *height)
		maxYIndex = &m
	}

	maxLines := len(pixels)
	if height != nil && *height < maxLines {
		maxLines = *height
	}

	currentLine := startY
	currentColumn := startX
	b := newBand()

	for {
		relColumn := currentColumn - startX
		relLine := currentLine - startY

		masks, ok := packColumn(pixels, currentLine, currentColumn, maxXIndex, maxYIndex)
		if ok {
			b.addColumn(masks, relColumn)
			currentColumn++
			continue
		}

		if relLine >= maxLines {
			break
		}

		b.render(out, relLine, relColumn)
		currentLine += 6
		currentColumn = startX
	}
}
