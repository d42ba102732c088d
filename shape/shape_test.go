package shape

import (
	"testing"

	"github.com/matryer/is"
)

func TestCatalogIncludesOrigin(t *testing.T) {
	is := is.New(t)
	for _, s := range Catalog() {
		found := false
		for _, o := range s.Offsets {
			if o == (Offset{0, 0}) {
				found = true
			}
		}
		is.True(found) // every shape anchors on the placed cell
	}
}

func TestCatalogValues(t *testing.T) {
	is := is.New(t)
	type tc struct {
		name   string
		size   int
		points int
	}
	for _, c := range []tc{
		{L, 4, 4},
		{Box, 4, 8},
		{T, 5, 15},
	} {
		s, ok := ByName(c.name)
		is.True(ok)
		is.Equal(s.Size(), c.size)
		is.Equal(s.Points(), c.points)
	}
	_, ok := ByName("Z")
	is.True(!ok)
}

func TestCatalogIsReadOnly(t *testing.T) {
	is := is.New(t)
	shapes := Catalog()
	shapes[0].Offsets[0] = Offset{5, 5}
	shapes[1].BasePoints = 100
	fresh := Catalog()
	is.Equal(fresh[0].Offsets[0], Offset{0, 0})
	is.Equal(fresh[1].BasePoints, 4)
}

func TestDisplayText(t *testing.T) {
	is := is.New(t)
	s, _ := ByName(T)
	is.Equal(s.ToDisplayText(), "T (5 x 3 = 15 points)\n  . # .\n  # # #\n  . # .\n")
}
