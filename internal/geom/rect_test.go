package geom

import "testing"

func TestBoundingBox(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		want   Rect
		wantOK bool
	}{
		{"empty", nil, Rect{}, false},
		{"single point", []Point{{X: 3, Y: 4}}, Rect{X: 3, Y: 4}, true},
		{"diagonal", []Point{{X: 0, Y: 0}, {X: 5, Y: 5}}, Rect{Width: 5, Height: 5}, true},
		{"negative", []Point{{X: -2, Y: 1}, {X: 4, Y: -3}, {X: 0, Y: 0}}, Rect{X: -2, Y: -3, Width: 6, Height: 4}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BoundingBox(tt.points)
			if ok != tt.wantOK {
				t.Fatalf("BoundingBox() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("BoundingBox() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRectUnion(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 5, Y: 5, Width: 10, Height: 10}

	want := Rect{X: 0, Y: 0, Width: 15, Height: 15}
	if got := a.Union(b); got != want {
		t.Errorf("Union() = %+v, want %+v", got, want)
	}
}

func TestRectCenterAndInset(t *testing.T) {
	r := RectFromSize(Pt(300, 200))
	if got, want := r.Center(), Pt(150, 100); got != want {
		t.Errorf("Center() = %v, want %v", got, want)
	}
	if got, want := r.Inset(10), (Rect{X: -10, Y: -10, Width: 320, Height: 220}); got != want {
		t.Errorf("Inset(10) = %+v, want %+v", got, want)
	}
}
