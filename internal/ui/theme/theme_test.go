package theme

import (
	"image/color"
	"testing"

	"github.com/abhisek/keizoku/internal/quiz"
)

type rgba struct{ r, g, b, a uint32 }

func key(c color.Color) rgba {
	r, g, b, a := c.RGBA()
	return rgba{r, g, b, a}
}

func TestTypeColorsDistinct(t *testing.T) {
	seen := map[rgba]quiz.TypeID{}
	for _, id := range quiz.TypeOrder {
		c, ok := typeColors[id]
		if !ok {
			t.Errorf("%s has no colour", id)
			continue
		}
		if other, dup := seen[key(c)]; dup {
			t.Errorf("%s and %s share a colour", id, other)
		}
		seen[key(c)] = id
	}
	if key(TypeColor("nobody")) != key(Primary) {
		t.Error("unknown types should fall back to Primary")
	}
}
