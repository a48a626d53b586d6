package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	json "github.com/goccy/go-json"

	"github.com/Fredasante/sanity-backend-bend-the-trendd/i18n"
	"github.com/Fredasante/sanity-backend-bend-the-trendd/issue"
)

var (
	// ErrEmpty is returned for input without any JSON value.
	ErrEmpty = errors.New("source: empty input")
	// ErrTrailingData is returned when a second value follows the document.
	ErrTrailingData = errors.New("source: trailing data after document")
	// ErrNotObject is returned when the document is not a JSON object.
	ErrNotObject = errors.New("source: document is not a JSON object")
	// ErrInvalidUTF8 is returned for input that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("source: input is not valid UTF-8")
)

type frame struct {
	object       bool
	expectingKey bool
	keys         map[string]struct{}
	key          string
	next         int
}

type scanner struct {
	dec    *json.Decoder
	stack  []frame
	values int
	dups   issue.Violations
}

// DuplicateKeys scans one JSON document and reports every object key that
// appears twice in the same object. Decoders keep only the last occurrence,
// so duplicates are otherwise invisible after decoding.
func DuplicateKeys(data []byte) (issue.Violations, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w (first bad byte at offset %d)", ErrInvalidUTF8, invalidOffset(data))
	}
	return scan(bytes.NewReader(data))
}

func scan(r io.Reader) (issue.Violations, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	s := &scanner{dec: dec}
	if err := s.run(); err != nil {
		return s.dups, err
	}
	switch {
	case s.values == 0:
		return s.dups, ErrEmpty
	case s.values > 1:
		return s.dups, ErrTrailingData
	}
	return s.dups, nil
}

func (s *scanner) run() error {
	for {
		tok, err := s.dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("source: parse: %w", err)
		}
		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{':
				s.begin()
				s.stack = append(s.stack, frame{object: true, expectingKey: true, keys: map[string]struct{}{}})
			case '[':
				s.begin()
				s.stack = append(s.stack, frame{})
			case '}', ']':
				if n := len(s.stack); n > 0 {
					s.stack = s.stack[:n-1]
				}
				s.valueDone()
			}
		case string:
			if n := len(s.stack); n > 0 && s.stack[n-1].object && s.stack[n-1].expectingKey {
				s.key(v)
				continue
			}
			s.begin()
			s.valueDone()
		default:
			s.begin()
			s.valueDone()
		}
	}
}

func (s *scanner) key(k string) {
	top := &s.stack[len(s.stack)-1]
	if _, dup := top.keys[k]; dup {
		p := s.path(s.stack[:len(s.stack)-1]).Field(k)
		v := p.Violation(issue.CodeDuplicateKey, "unique key", k)
		v.Message = i18n.T(issue.CodeDuplicateKey)
		s.dups = append(s.dups, v)
	}
	top.keys[k] = struct{}{}
	top.key = k
	top.expectingKey = false
}

// begin counts top-level values.
func (s *scanner) begin() {
	if len(s.stack) == 0 {
		s.values++
	}
}

func (s *scanner) valueDone() {
	n := len(s.stack)
	if n == 0 {
		return
	}
	top := &s.stack[n-1]
	if top.object {
		top.expectingKey = true
		return
	}
	top.next++
}

func (s *scanner) path(frames []frame) issue.Path {
	p := issue.Root
	for _, f := range frames {
		if f.object {
			p = p.Field(f.key)
			continue
		}
		p = p.Index(f.next)
	}
	return p
}

func invalidOffset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return len(data)
}
