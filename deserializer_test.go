package sixel

import (
	"errors"
	"testing"
)

func TestDeserializer_RejectsEventBeforeDCS(t *testing.T) {
	d := NewDeserializer()
	err := d.HandleEvent(GotoNextLineEvent())
	if !errors.Is(err, ErrCorruptedSequence) {
		t.Fatalf("expected ErrCorruptedSequence, got %v", err)
	}
}

func TestDeserializer_RejectsUnknownSequence(t *testing.T) {
	d := NewDeserializer()
	mustHandle(t, d, DCSEvent(0, false, false, 0, false))
	err := d.HandleEvent(UnknownSequenceEvent([]byte{'x'}))
	if !errors.Is(err, ErrCorruptedSequence) {
		t.Fatalf("expected ErrCorruptedSequence, got %v", err)
	}
}

func TestDeserializer_CreateImageBeforeDCSFails(t *testing.T) {
	d := NewDeserializer()
	if _, err := d.CreateImage(); !errors.Is(err, ErrCorruptedSequence) {
		t.Fatalf("expected ErrCorruptedSequence, got %v", err)
	}
}

func TestDeserializer_CreateImageConsumesState(t *testing.T) {
	d := NewDeserializer()
	mustHandle(t, d, DCSEvent(0, false, false, 0, false))
	if _, err := d.CreateImage(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := d.CreateImage(); !errors.Is(err, ErrCorruptedSequence) {
		t.Fatalf("expected second CreateImage to fail, got %v", err)
	}
}

func TestDeserializer_DataWritesColumn(t *testing.T) {
	d := NewDeserializer()
	mustHandle(t, d, DCSEvent(0, false, false, 0, false))
	mustHandle(t, d, DataEvent('~')) // all six pixels on
	img, err := d.CreateImage()
	if err != nil {
		t.Fatal(err)
	}
	h, w := img.Size()
	if h != 6 || w != 1 {
		t.Fatalf("expected 6x1, got %dx%d", h, w)
	}
	for y := 0; y < 6; y++ {
		if !img.pixels[y][0].On {
			t.Errorf("row %d: expected pixel on", y)
		}
	}
}

func TestDeserializer_RepeatAdvancesCursorByCount(t *testing.T) {
	d := NewDeserializer()
	mustHandle(t, d, DCSEvent(0, false, false, 0, false))
	mustHandle(t, d, RepeatEvent(5, '~'))
	img, err := d.CreateImage()
	if err != nil {
		t.Fatal(err)
	}
	_, w := img.Size()
	if w != 5 {
		t.Fatalf("expected width 5, got %d", w)
	}
}

func TestDeserializer_RepeatZeroIsNoOp(t *testing.T) {
	d := NewDeserializer()
	mustHandle(t, d, DCSEvent(0, false, false, 0, false))
	mustHandle(t, d, RepeatEvent(0, '~'))
	img, err := d.CreateImage()
	if err != nil {
		t.Fatal(err)
	}
	h, w := img.Size()
	if h != 1 || w != 0 {
		t.Fatalf("expected empty image, got %dx%d", h, w)
	}
}

func TestDeserializer_GotoBeginningOfLineOverlaysColor(t *testing.T) {
	d := NewDeserializer()
	mustHandle(t, d, DCSEvent(0, false, false, 0, false))
	mustHandle(t, d, DataEvent('@')) // bit 0 only, color 0
	mustHandle(t, d, GotoBeginningOfLineEvent())
	mustHandle(t, d, SelectColorEvent(1))
	mustHandle(t, d, DataEvent('?')) // all off: must not clear the existing on pixel
	img, err := d.CreateImage()
	if err != nil {
		t.Fatal(err)
	}
	if !img.pixels[0][0].On {
		t.Fatal("expected the previously-lit pixel to remain on")
	}
	if img.pixels[0][0].Color != 0 {
		t.Fatalf("expected color to remain 0 (untouched by an off bit), got %d", img.pixels[0][0].Color)
	}
}

func TestDeserializer_GotoNextLineAdvancesCursorBySix(t *testing.T) {
	d := NewDeserializer()
	mustHandle(t, d, DCSEvent(0, false, false, 0, false))
	mustHandle(t, d, DataEvent('~'))
	mustHandle(t, d, GotoNextLineEvent())
	mustHandle(t, d, DataEvent('~'))
	img, err := d.CreateImage()
	if err != nil {
		t.Fatal(err)
	}
	h, _ := img.Size()
	if h != 12 {
		t.Fatalf("expected height 12, got %d", h)
	}
}

func TestDeserializer_MaxHeightStopsParsing(t *testing.T) {
	d := NewDeserializer(WithMaxHeight(6))
	mustHandle(t, d, DCSEvent(0, false, false, 0, false))
	mustHandle(t, d, DataEvent('~'))
	mustHandle(t, d, GotoNextLineEvent()) // cursorY=0, 0+12 > 6 -> stop
	mustHandle(t, d, DataEvent('~'))      // silently ignored, parsing stopped
	img, err := d.CreateImage()
	if err != nil {
		t.Fatal(err)
	}
	h, _ := img.Size()
	if h != 6 {
		t.Fatalf("expected height capped at 6, got %d", h)
	}
}

func TestDeserializer_TransparentBackgroundSkipsRasterPadding(t *testing.T) {
	d := NewDeserializer()
	mustHandle(t, d, DCSEvent(0, true, true, 0, false))
	mustHandle(t, d, RasterAttributeEvent(1, 1, 10, true, 10, true))
	img, err := d.CreateImage()
	if err != nil {
		t.Fatal(err)
	}
	h, w := img.Size()
	if h != 1 || w != 0 {
		t.Fatalf("expected untouched 1x0 image under transparent background, got %dx%d", h, w)
	}
}

func TestDeserializer_RasterAttributePadsVerticallyThenHorizontally(t *testing.T) {
	d := NewDeserializer()
	mustHandle(t, d, DCSEvent(0, false, false, 0, false))
	mustHandle(t, d, RasterAttributeEvent(1, 1, 10, true, 10, true))
	img, err := d.CreateImage()
	if err != nil {
		t.Fatal(err)
	}
	h, w := img.Size()
	if h != 10 || w != 10 {
		t.Fatalf("expected 10x10, got %dx%d", h, w)
	}
}

func mustHandle(t *testing.T, d *Deserializer, ev Event) {
	t.Helper()
	if err := d.HandleEvent(ev); err != nil {
		t.Fatalf("unexpected error handling event %+v: %v", ev, err)
	}
}
