package ppm

import (
	"bytes"
	"testing"
)

func mustRead(t *testing.T, raw string) *Image {
	t.Helper()
	img, err := Read(bytes.NewReader([]byte(raw)))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	return img
}

func TestReadWriteRoundTrip(t *testing.T) {
	raw := "P6\n2 2\n255\n" + string([]byte{255, 0, 0, 0, 255, 0, 0, 0, 255, 10, 20, 30})
	img := mustRead(t, raw)

	if img.Width != 2 || img.Height != 2 || img.Denom != 255 {
		t.Fatalf("got dims %dx%d denom %d, want 2x2 255", img.Width, img.Height, img.Denom)
	}
	want := []Pixel{{255, 0, 0}, {0, 255, 0}, {0, 0, 255}, {10, 20, 30}}
	for i, p := range want {
		if img.Pixels[i] != p {
			t.Errorf("pixel %d = %+v, want %+v", i, img.Pixels[i], p)
		}
	}

	var buf bytes.Buffer
	if err := Write(&buf, img); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	roundTripped := mustRead(t, buf.String())
	for i, p := range want {
		if roundTripped.Pixels[i] != p {
			t.Errorf("round-tripped pixel %d = %+v, want %+v", i, roundTripped.Pixels[i], p)
		}
	}
}

func TestReadRejectsWrongMagic(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte("P5\n1 1\n255\n\x00\x00\x00")))
	if err == nil {
		t.Fatal("expected error for non-P6 magic number")
	}
}

func TestReadTruncated(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte("P6\n2 2\n255\n\x00\x00")))
	if err == nil {
		t.Fatal("expected error for truncated raster")
	}
}

func TestTrimOddWidth(t *testing.T) {
	img := &Image{Width: 3, Height: 2, Denom: 255, Pixels: make([]Pixel, 6)}
	for i := range img.Pixels {
		img.Pixels[i] = Pixel{uint16(i), uint16(i), uint16(i)}
	}
	trimmed := Trim(img)
	if trimmed.Width != 2 || trimmed.Height != 2 {
		t.Fatalf("trimmed dims = %dx%d, want 2x2", trimmed.Width, trimmed.Height)
	}
	// Loses the rightmost column: row 0 keeps cols 0,1 (values 0,1); row
	// 1 keeps cols 0,1 (values 3,4).
	want := []Pixel{{0, 0, 0}, {1, 1, 1}, {3, 3, 3}, {4, 4, 4}}
	for i, p := range want {
		if trimmed.Pixels[i] != p {
			t.Errorf("pixel %d = %+v, want %+v", i, trimmed.Pixels[i], p)
		}
	}
}

func TestTrimOddHeight(t *testing.T) {
	img := &Image{Width: 2, Height: 3, Denom: 255, Pixels: make([]Pixel, 6)}
	trimmed := Trim(img)
	if trimmed.Width != 2 || trimmed.Height != 2 {
		t.Fatalf("trimmed dims = %dx%d, want 2x2", trimmed.Width, trimmed.Height)
	}
}

func TestTrimThreeByThree(t *testing.T) {
	img := &Image{Width: 3, Height: 3, Denom: 255, Pixels: make([]Pixel, 9)}
	trimmed := Trim(img)
	if trimmed.Width != 2 || trimmed.Height != 2 {
		t.Fatalf("trimmed dims = %dx%d, want 2x2", trimmed.Width, trimmed.Height)
	}
}

func TestTrimAlreadyEvenIsNoop(t *testing.T) {
	img := &Image{Width: 4, Height: 4, Denom: 255, Pixels: make([]Pixel, 16)}
	trimmed := Trim(img)
	if trimmed != img {
		t.Error("Trim on an already-even image should return the same image")
	}
}
