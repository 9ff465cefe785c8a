// Package deck is the deck authority: it parses slide text, owns the slide
// list, the deck options and the current slide index, and turns navigation
// commands from the bus into hideSlide/showSlide pairs.
package deck

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

const (
	slideSeparator = "---"
	notesSeparator = "???"
)

// propertyLine matches the "key: value" header lines at the top of a slide.
var propertyLine = regexp.MustCompile(`^([a-zA-Z-]+):\s*(.*)$`)

// slideProperties are the keys a header line may set. Any other
// "Word: text" line is slide content.
var slideProperties = map[string]bool{
	"name":                true,
	"class":               true,
	"layout":              true,
	"template":            true,
	"count":               true,
	"exclude":             true,
	"background-image":    true,
	"background-position": true,
	"background-size":     true,
	"background-repeat":   true,
}

// Slide is one parsed slide.
type Slide struct {
	index      int
	content    string
	notes      string
	properties map[string]string
}

// Index returns the zero-based position of the slide.
func (s Slide) Index() int { return s.index }

// Content returns the slide body.
func (s Slide) Content() string { return s.content }

// Notes returns the presenter notes.
func (s Slide) Notes() string { return s.notes }

// Name returns the "name" property, used as a location hash.
func (s Slide) Name() string { return s.properties["name"] }

// Class returns the "class" property.
func (s Slide) Class() string { return s.properties["class"] }

// Property returns a header property.
func (s Slide) Property(key string) (string, bool) {
	v, ok := s.properties[key]
	return v, ok
}

// Parse splits source into slides. Slides are separated by lines holding
// only "---"; a line holding only "???" starts the notes of a slide. Leading
// "key: value" lines naming a known property are slide properties.
func Parse(r io.Reader) ([]Slide, error) {
	var (
		slides  []Slide
		current []string
		scanner = bufio.NewScanner(r)
	)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	flush := func() {
		slides = append(slides, buildSlide(len(slides), current))
		current = nil
	}
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == slideSeparator {
			flush()
			continue
		}
		current = append(current, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()
	return slides, nil
}

// ParseString is Parse over a string.
func ParseString(source string) []Slide {
	slides, _ := Parse(strings.NewReader(source))
	return slides
}

func buildSlide(index int, lines []string) Slide {
	s := Slide{index: index, properties: map[string]string{}}

	i := 0
	for ; i < len(lines); i++ {
		m := propertyLine.FindStringSubmatch(lines[i])
		if m == nil || !slideProperties[m[1]] {
			break
		}
		s.properties[m[1]] = strings.TrimSpace(m[2])
	}
	lines = lines[i:]

	body := lines
	for j, line := range lines {
		if strings.TrimSpace(line) == notesSeparator {
			body = lines[:j]
			s.notes = strings.TrimSpace(strings.Join(lines[j+1:], "\n"))
			break
		}
	}
	s.content = strings.TrimSpace(strings.Join(body, "\n"))
	return s
}
