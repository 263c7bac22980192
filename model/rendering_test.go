package model

import (
	"bytes"
	"testing"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		renderer TerminalRenderer
		citizens Citizens
		vp       Viewport
		want     string
	}{
		{
			name:     "default markers",
			citizens: cells(1, 0, 0, 1, 5, 5),
			vp:       Viewport{Min: Position{0, 0}, Max: Position{3, 2}},
			want:     "-*-\n*--\n",
		},
		{
			name:     "negative window",
			citizens: cells(-1, -1),
			vp:       Viewport{Min: Position{-2, -2}, Max: Position{0, 0}},
			want:     "--\n-*\n",
		},
		{
			name:     "custom markers",
			renderer: TerminalRenderer{Live: '#', Dead: '.'},
			citizens: cells(0, 0),
			vp:       Viewport{Min: Position{0, 0}, Max: Position{2, 1}},
			want:     "#.\n",
		},
		{
			name:     "inverted window is empty",
			citizens: cells(0, 0),
			vp:       Viewport{Min: Position{3, 3}, Max: Position{0, 0}},
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tt.renderer.Render(&buf, tt.citizens, tt.vp); err != nil {
				t.Fatalf("Render: %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Fatalf("Render =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestViewport(t *testing.T) {
	vp := Viewport{Min: Position{-1, 2}, Max: Position{3, 4}}
	if vp.Width() != 4 || vp.Height() != 2 {
		t.Fatalf("size = %dx%d, want 4x2", vp.Width(), vp.Height())
	}
	if !vp.Contains(Position{-1, 2}) || vp.Contains(Position{3, 3}) || vp.Contains(Position{0, 4}) {
		t.Fatal("Contains should include Min and exclude Max")
	}
	if inverted := (Viewport{Min: Position{5, 5}}); inverted.Width() != 0 || inverted.Height() != 0 {
		t.Fatal("inverted viewport should be empty")
	}
}
