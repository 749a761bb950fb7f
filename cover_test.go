package txt2epub

import "testing"

func TestBaseMediaType(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"image/png":                 "image/png",
		"text/plain; charset=utf-8": "text/plain",
		"image/svg+xml ; x=y":       "image/svg+xml",
	}
	for in, want := range tests {
		if got := baseMediaType(in); got != want {
			t.Errorf("baseMediaType(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLoadCover_JPEGExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	jpeg := []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}
	writeFiles(t, dir, map[string][]byte{"表紙.JPEG": jpeg})

	conv := newTestConverter(t)
	got := conv.loadCover(dir + "/表紙.JPEG")
	if got == nil {
		t.Fatal("loadCover() = nil")
	}
	if got.MediaType != "image/jpeg" {
		t.Errorf("MediaType = %q, want image/jpeg", got.MediaType)
	}
	if got.Path != "cover/cover_image.jpg" {
		t.Errorf("Path = %q, want cover/cover_image.jpg", got.Path)
	}
}
