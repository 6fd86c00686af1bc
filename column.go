package sixel

// packColumn inspects up to six vertical pixels at (lineY, colX) and
// buckets the ones that are on by color register into a 6-bit mask per
// register. ok is false when this column is past the end of the current
// band (bounded out by maxX/maxY, or six consecutive absent rows) —
// signaling the band emitter to finalize.
func packColumn(pixels [][]Pixel, lineY, colX int, maxX, maxY *int) (masks map[uint16]byte, ok bool) {
	if maxX != nil && *maxX < colX {
		return nil, false
	}
	if maxY != nil && *maxY < lineY {
		return nil, false
	}

	pixelsInColumn := 6
	if maxY != nil {
		remaining := *maxY - lineY + 1
		if remaining < 6 {
			pixelsInColumn = remaining
		}
	}

	masks = make(map[uint16]byte)
	emptyRows := 0
	for i := 0; i < pixelsInColumn; i++ {
		row := lineY + i
		var pixel *Pixel
		if row >= 0 && row < len(pixels) {
			line := pixels[row]
			if colX >= 0 && colX < len(line) {
				pixel = &line[colX]
			}
		}
		if pixel == nil {
			emptyRows++
		} else if pixel.On {
			masks[pixel.Color] |= 1 << uint(i)
		}
	}

	if emptyRows == 6 {
		return nil, false
	}
	return masks, true
}
