package theme

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseKeepsDefaultsForMissingKeys(t *testing.T) {
	input := `
# comment lines are skipped
Name: Mine
Background: #112233
CanvasBorder: #01020380
Unknown: #FFFFFF
`
	th, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if th.Name != "Mine" {
		t.Errorf("expected name Mine, got %q", th.Name)
	}
	if th.Background != (color.RGBA{0x11, 0x22, 0x33, 0xFF}) {
		t.Errorf("unexpected background %+v", th.Background)
	}
	if th.CanvasBorder != (color.RGBA{1, 2, 3, 0x80}) {
		t.Errorf("unexpected border %+v", th.CanvasBorder)
	}
	if th.ButtonBackground != Default().ButtonBackground {
		t.Errorf("missing key should keep default, got %+v", th.ButtonBackground)
	}
}

func TestParseRejectsBadColor(t *testing.T) {
	_, err := Parse(strings.NewReader("Background: blue\n"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "Background") {
		t.Fatalf("expected key in error, got %v", err)
	}
}

func TestSetIsCaseInsensitive(t *testing.T) {
	th := Default()
	if err := th.Set("buttonborder", "#FF0000"); err != nil {
		t.Fatal(err)
	}
	if th.ButtonBorder != (color.RGBA{255, 0, 0, 255}) {
		t.Fatalf("unexpected %+v", th.ButtonBorder)
	}
}

func TestEmbeddedThemesLoad(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatal("expected embedded themes")
	}
	l := &Loader{}
	for _, name := range names {
		th, err := l.Load(name)
		if err != nil {
			t.Fatalf("load %s: %v", name, err)
		}
		if th.Name == "" {
			t.Errorf("%s: empty name", name)
		}
	}
	dark, err := l.Load("dark")
	if err != nil {
		t.Fatal(err)
	}
	if dark.Background != (color.RGBA{0x1E, 0x1E, 0x1E, 0xFF}) {
		t.Errorf("unexpected dark background %+v", dark.Background)
	}
}

func TestLoaderSearchOrder(t *testing.T) {
	dir := t.TempDir()
	cfgDir := filepath.Join(dir, "cfg")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "mine.theme"), []byte("Title: #010101\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	l := &Loader{ConfigDir: cfgDir, SystemDir: filepath.Join(dir, "missing")}

	th, err := l.Load("mine")
	if err != nil {
		t.Fatalf("load from config dir: %v", err)
	}
	if th.Title != (color.RGBA{1, 1, 1, 255}) {
		t.Errorf("unexpected title %+v", th.Title)
	}

	direct, err := l.Load(filepath.Join(cfgDir, "mine.theme"))
	if err != nil {
		t.Fatalf("load by path: %v", err)
	}
	if direct.Title != th.Title {
		t.Errorf("path and name lookups differ")
	}

	if _, err := l.Load("nope"); err == nil {
		t.Fatal("expected not found")
	}
	if d, err := l.Load("default"); err != nil || d.Name != "Default" {
		t.Fatalf("default: %v %v", d, err)
	}
}

func TestFieldsRoundTrip(t *testing.T) {
	src := Default()
	src.Shadow = color.RGBA{1, 2, 3, 4}
	dst := Default()
	dst.Shadow = color.RGBA{}
	for _, f := range src.Fields() {
		if err := dst.Set(f.Name, FormatColor(f.Color)); err != nil {
			t.Fatalf("%s: %v", f.Name, err)
		}
	}
	if *dst != *src {
		t.Fatalf("round trip mismatch:\n%+v\n%+v", dst, src)
	}
}
