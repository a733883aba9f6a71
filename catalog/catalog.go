/*package catalog reads and writes text descriptions of the initial state of
a planetary system.

Each non-blank line which doesn't start with '#' describes one body with ten
whitespace-separated fields:

    name mass px py pz vx vy vz radius color

Positions are in m, velocities in m/s, and masses in kg. The name, radius
(in pixels), and color are only used for drawing and are stored separately
from the physical state of the bodies.
*/
package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/phil-mansfield/orrery"
	"github.com/phil-mansfield/orrery/geom"
)

const (
	// FieldCount is the number of fields in every catalog record.
	FieldCount = 10
	// Comment starts lines which are ignored by Read.
	Comment = '#'
)

var (
	// ErrFieldCount is returned for records without exactly FieldCount
	// fields.
	ErrFieldCount = errors.New("catalog: wrong number of fields")
)

// Display holds the parts of a record which don't affect the physics.
type Display struct {
	Name   string
	Radius int
	Color  string
}

// RGB returns the color tag as a normalized "#rrggbb" string. If the tag
// isn't a hex color (e.g. a color name like "red"), it is returned
// unmodified along with false.
func (d *Display) RGB() (string, bool) {
	c, err := colorful.Hex(d.Color)
	if err != nil { return d.Color, false }
	return c.Hex(), true
}

// Catalog is an ordered collection of bodies along with their display
// information, which is associated with each body by identity.
type Catalog struct {
	Bodies  []*orrery.Body
	display map[*orrery.Body]*Display
}

// New returns an empty Catalog.
func New() *Catalog {
	return &Catalog{display: make(map[*orrery.Body]*Display)}
}

// Add appends b to the catalog.
func (c *Catalog) Add(b *orrery.Body, d Display) {
	c.Bodies = append(c.Bodies, b)
	c.display[b] = &d
}

// Display returns the display information of b.
func (c *Catalog) Display(b *orrery.Body) (*Display, bool) {
	d, ok := c.display[b]
	return d, ok
}

func (c *Catalog) Len() int { return len(c.Bodies) }

// Particles returns the bodies in the form expected by orrery.StepSystem.
func (c *Catalog) Particles() []orrery.Particle {
	return orrery.Particles(c.Bodies)
}

// Names returns the name of every body, in order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Bodies))
	for i, b := range c.Bodies {
		if d, ok := c.display[b]; ok { names[i] = d.Name }
	}
	return names
}

// Lookup returns the first body with the given name.
func (c *Catalog) Lookup(name string) (*orrery.Body, bool) {
	for _, b := range c.Bodies {
		if d, ok := c.display[b]; ok && d.Name == name { return b, true }
	}
	return nil, false
}

// Head returns a catalog containing the first n bodies of c. n is clamped to
// [0, c.Len()]. The bodies are shared with c, not copied.
func (c *Catalog) Head(n int) *Catalog {
	if n < 0 {
		n = 0
	} else if n > len(c.Bodies) {
		n = len(c.Bodies)
	}

	head := New()
	for _, b := range c.Bodies[:n] {
		head.Bodies = append(head.Bodies, b)
		if d, ok := c.display[b]; ok { head.display[b] = d }
	}
	return head
}

// ParseError describes a malformed record.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Err)
	}
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ReadFile reads the catalog at the given path.
func ReadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil { return nil, err }
	defer f.Close()

	c, err := Read(f)
	var pe *ParseError
	if errors.As(err, &pe) { pe.Path = path }
	return c, err
}

// Read parses a catalog. Reading stops at the first malformed record, which
// is reported as a *ParseError.
func Read(r io.Reader) (*Catalog, error) {
	c := New()
	s := bufio.NewScanner(r)

	for line := 1; s.Scan(); line++ {
		text := strings.TrimSpace(s.Text())
		if len(text) == 0 || text[0] == Comment { continue }

		b, d, err := parseRecord(text)
		if err != nil { return nil, &ParseError{Line: line, Err: err} }
		c.Add(b, d)
	}

	if err := s.Err(); err != nil { return nil, err }
	return c, nil
}

func parseRecord(text string) (*orrery.Body, Display, error) {
	tok := strings.Fields(text)
	if len(tok) != FieldCount {
		return nil, Display{}, fmt.Errorf(
			"%w: found %d, expected %d", ErrFieldCount, len(tok), FieldCount,
		)
	}

	vals := make([]float64, 7)
	for i := range vals {
		x, err := strconv.ParseFloat(tok[i+1], 64)
		if err != nil { return nil, Display{}, err }
		vals[i] = x
	}
	radius, err := strconv.Atoi(tok[8])
	if err != nil { return nil, Display{}, err }

	pos := geom.Vec{vals[1], vals[2], vals[3]}
	vel := geom.Vec{vals[4], vals[5], vals[6]}
	b, err := orrery.NewBody(vals[0], pos, vel)
	if err != nil { return nil, Display{}, err }

	return b, Display{Name: tok[0], Radius: radius, Color: tok[9]}, nil
}

// Write writes c in the format understood by Read. Floats are written with
// as many digits as are needed to read them back exactly.
func Write(w io.Writer, c *Catalog) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# name mass px py pz vx vy vz radius color")

	for i, b := range c.Bodies {
		d, ok := c.display[b]
		if !ok {
			return fmt.Errorf("body %d has no display information", i)
		} else if !isToken(d.Name) || d.Name[0] == Comment {
			return fmt.Errorf("body %d has invalid name %q", i, d.Name)
		} else if !isToken(d.Color) {
			return fmt.Errorf("body %d has invalid color %q", i, d.Color)
		}

		pos, vel := b.Position(), b.Velocity()
		fields := []string{d.Name, formatFloat(b.Mass())}
		for j := 0; j < 3; j++ { fields = append(fields, formatFloat(pos[j])) }
		for j := 0; j < 3; j++ { fields = append(fields, formatFloat(vel[j])) }
		fields = append(fields, strconv.Itoa(d.Radius), d.Color)

		fmt.Fprintln(bw, strings.Join(fields, " "))
	}

	return bw.Flush()
}

// WriteFile writes c to the given path.
func WriteFile(path string, c *Catalog) error {
	f, err := os.Create(path)
	if err != nil { return err }
	if err := Write(f, c); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// isToken reports whether s can be written as a single field.
func isToken(s string) bool {
	return len(strings.Fields(s)) == 1 && strings.TrimSpace(s) == s
}
