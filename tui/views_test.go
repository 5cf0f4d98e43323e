package tui

import "testing"

func TestControlSegmentsHitTest(t *testing.T) {
	segs := controlSegments(false, 80)
	if len(segs) != 5 {
		t.Fatalf("segments = %d", len(segs))
	}

	for _, s := range segs {
		if got := buttonAt(segs, s.x0); got != s.btn {
			t.Errorf("buttonAt(%d) = %v, want %v", s.x0, got, s.btn)
		}
		if got := buttonAt(segs, s.x1-1); got != s.btn {
			t.Errorf("buttonAt(%d) = %v, want %v", s.x1-1, got, s.btn)
		}
	}

	if got := buttonAt(segs, 0); got != ctlNone {
		t.Errorf("left margin hit = %v", got)
	}
	if got := buttonAt(segs, 79); got != ctlNone {
		t.Errorf("right margin hit = %v", got)
	}
}

func TestControlSegmentsPauseLabel(t *testing.T) {
	playing := controlSegments(true, 80)
	if playing[2].label != "[PAUSE ]" {
		t.Fatalf("label = %q", playing[2].label)
	}
}

func TestAdjustScroll(t *testing.T) {
	cases := []struct {
		name                              string
		selected, count, visible, offset  int
		want                              int
	}{
		{"fits entirely", 4, 5, 10, 0, 0},
		{"selection below window", 9, 20, 5, 0, 5},
		{"selection above window", 1, 20, 5, 8, 1},
		{"inside window unchanged", 6, 20, 5, 5, 5},
		{"zero visible", 3, 20, 0, 7, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := adjustScroll(tc.selected, tc.count, tc.visible, tc.offset); got != tc.want {
				t.Fatalf("adjustScroll = %d, want %d", got, tc.want)
			}
		})
	}
}
