package catalog

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/orrery"
	"github.com/phil-mansfield/orrery/geom"
)

func TestReadRecord(t *testing.T) {
	c, err := Read(strings.NewReader(
		"earth 5.97e24 1.5e11 0 0 0 2.9e4 0 6 #0000ff\n",
	))
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())

	b := c.Bodies[0]
	assert.Equal(t, 5.97e24, b.Mass())
	assert.Equal(t, geom.Vec{1.5e11, 0, 0}, b.Position())
	assert.Equal(t, geom.Vec{0, 2.9e4, 0}, b.Velocity())
	assert.Equal(t, geom.Vec{}, b.Force())

	d, ok := c.Display(b)
	require.True(t, ok)
	assert.Equal(t, Display{Name: "earth", Radius: 6, Color: "#0000ff"}, *d)
}

func TestReadSkipsBlankAndComments(t *testing.T) {
	text := `
# header comment
   # indented comment

sun 2e30 0 0 0 0 0 0 10 yellow

moon 7e22 1 2 3 4 5 6 1 gray
`
	c, err := Read(strings.NewReader(text))
	require.NoError(t, err)
	assert.Equal(t, []string{"sun", "moon"}, c.Names())
	assert.Equal(t, geom.Vec{4, 5, 6}, c.Bodies[1].Velocity())
}

func TestReadFieldCount(t *testing.T) {
	tests := []string{
		"earth 5.97e24 1.5e11 0 0 0 2.9e4 0 6",
		"earth 5.97e24 1.5e11 0 0 0 2.9e4 0 6 #0000ff extra",
		"earth",
	}

	for i, text := range tests {
		_, err := Read(strings.NewReader("# ok\n" + text + "\n"))
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("%d) expected a ParseError, got %v", i+1, err)
			continue
		}
		assert.Equal(t, 2, pe.Line, "%d) line number", i+1)
		assert.True(t, errors.Is(err, ErrFieldCount), "%d) %v", i+1, err)
	}
}

func TestReadBadNumbers(t *testing.T) {
	tests := []string{
		"earth heavy 1.5e11 0 0 0 2.9e4 0 6 #0000ff",
		"earth 5.97e24 1.5e11 0 zero 0 2.9e4 0 6 #0000ff",
		"earth 5.97e24 1.5e11 0 0 0 2.9e4 0 6.5 #0000ff",
		"earth 5.97e24 1.5e11 0 0 0 2.9e4 0x 6 #0000ff",
	}

	for i, text := range tests {
		_, err := Read(strings.NewReader(text))
		var numErr *strconv.NumError
		if !errors.As(err, &numErr) {
			t.Errorf("%d) expected a NumError, got %v", i+1, err)
		}
	}
}

func TestReadInvalidBody(t *testing.T) {
	_, err := Read(strings.NewReader("ghost -1 0 0 0 0 0 0 1 white"))
	assert.True(t, errors.Is(err, orrery.ErrInvalidBody))
}

func TestReadAbortsOnFirstError(t *testing.T) {
	text := "a 1 0 0 0 0 0 0 1 red\nb 1 0 0\nc 1 1 0 0 0 0 0 1 red\n"
	c, err := Read(strings.NewReader(text))
	assert.Nil(t, c)
	require.Error(t, err)
	assert.Equal(t, "line 2: catalog: wrong number of fields: found 4, expected 10",
		err.Error())
}

func TestReadFile(t *testing.T) {
	c, err := ReadFile("testdata/solarsystem.txt")
	require.NoError(t, err)
	require.Equal(t, 6, c.Len())

	sun := c.Bodies[0]
	d, ok := c.Display(sun)
	require.True(t, ok)
	assert.Equal(t, "sun", d.Name)
	assert.Equal(t, 10, d.Radius)
	assert.Equal(t, "#ffff00", d.Color)

	earth, ok := c.Lookup("earth")
	require.True(t, ok)
	assert.Equal(t, 1.496e11, earth.Position().X())

	_, ok = c.Lookup("pluto")
	assert.False(t, ok)

	_, err = ReadFile("testdata/does_not_exist.txt")
	assert.Error(t, err)
}

func TestReadFilePathInError(t *testing.T) {
	_, err := ReadFile("testdata/bad.txt")
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "testdata/bad.txt", pe.Path)
	assert.Equal(t, 3, pe.Line)
}

func TestHead(t *testing.T) {
	c, err := ReadFile("testdata/solarsystem.txt")
	require.NoError(t, err)

	head := c.Head(2)
	assert.Equal(t, []string{"sun", "mercury"}, head.Names())
	assert.Same(t, c.Bodies[1], head.Bodies[1])

	assert.Equal(t, 0, c.Head(-3).Len())
	assert.Equal(t, 6, c.Head(100).Len())
}

func TestRGB(t *testing.T) {
	tests := []struct {
		color, rgb string
		ok         bool
	}{
		{"#0000ff", "#0000ff", true},
		{"#FFFF00", "#ffff00", true},
		{"#f00", "#ff0000", true},
		{"red", "red", false},
	}

	for i, test := range tests {
		d := &Display{Color: test.color}
		rgb, ok := d.RGB()
		if rgb != test.rgb || ok != test.ok {
			t.Errorf("%d) RGB() of %q = %q, %v. Expected %q, %v.",
				i+1, test.color, rgb, ok, test.rgb, test.ok)
		}
	}
}

func TestWriteRoundTrip(t *testing.T) {
	c, err := ReadFile("testdata/solarsystem.txt")
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, Write(buf, c))

	c2, err := Read(buf)
	require.NoError(t, err)
	require.Equal(t, c.Len(), c2.Len())

	for i := range c.Bodies {
		assert.True(t, c.Bodies[i].Equal(c2.Bodies[i]), "body %d", i)
		d1, _ := c.Display(c.Bodies[i])
		d2, _ := c2.Display(c2.Bodies[i])
		assert.Equal(t, *d1, *d2)
	}
}

func TestWriteRejectsBadFields(t *testing.T) {
	b, err := orrery.NewBody(1, geom.Vec{}, geom.Vec{})
	require.NoError(t, err)

	for i, d := range []Display{
		{Name: "two words", Radius: 1, Color: "red"},
		{Name: "#hidden", Radius: 1, Color: "red"},
		{Name: "ok", Radius: 1, Color: ""},
	} {
		c := New()
		c.Add(b, d)
		if err := Write(&bytes.Buffer{}, c); err == nil {
			t.Errorf("%d) expected Write to reject %+v", i+1, d)
		}
	}
}
