package driver

import "testing"

func TestResolveDensity(t *testing.T) {
	cases := []struct {
		cfg      Config
		detected float64
		want     float64
	}{
		{Config{HighDPI: false, Density: 2}, 3, 1},
		{Config{HighDPI: true}, 2, 2},
		{Config{HighDPI: true, Density: 1.5}, 2, 1.5},
		{Config{HighDPI: true}, 0, 1},
	}
	for i, c := range cases {
		if got := c.cfg.ResolveDensity(c.detected); got != c.want {
			t.Fatalf("case %d: got %v want %v", i, got, c.want)
		}
	}
}

func TestLogical(t *testing.T) {
	if got := Logical(1600, 2); got != 800 {
		t.Fatalf("got %d", got)
	}
	if got := Logical(1001, 2); got != 501 {
		t.Fatalf("got %d", got)
	}
	if got := Logical(640, 0); got != 640 {
		t.Fatalf("got %d", got)
	}
}
