package svgpath

import (
	"fmt"
	"strconv"
)

// This file implements the lexical layer of path data parsing:
// a cursor over the input string extracting command letters and
// number literals, skipping separators.

func isSeparator(b byte) bool {
	switch b {
	case ',', ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

func isCommandLetter(b byte) bool {
	return ('A' <= b && b <= 'Z') || ('a' <= b && b <= 'z')
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

func isExpMark(b byte) bool { return b == 'e' || b == 'E' }

type scanner struct {
	data string
	pos  int
}

func (s *scanner) atEnd() bool { return s.pos >= len(s.data) }

// skipSeparators advances the cursor past any run of
// comma, space, tab, CR, LF.
func (s *scanner) skipSeparators() {
	for !s.atEnd() && isSeparator(s.data[s.pos]) {
		s.pos++
	}
}

// readNumber scans one floating point literal: an optional sign,
// digits, at most one decimal point and at most one (optionally
// signed) exponent. The grammar allows numbers to abut without a
// separator when a sign or a second decimal point disambiguates them
// ("1.5.5" is two numbers), so scanning stops there instead of
// requiring a delimiter.
func (s *scanner) readNumber() (float64, error) {
	s.skipSeparators()
	start := s.pos
	var seenDot, seenExp bool
loop:
	for !s.atEnd() {
		switch b := s.data[s.pos]; {
		case isDigit(b):
		case b == '+' || b == '-':
			// a sign only belongs to the number at its start
			// or right after the exponent marker
			if s.pos != start && !isExpMark(s.data[s.pos-1]) {
				break loop
			}
		case b == '.':
			if seenDot || seenExp {
				break loop
			}
			seenDot = true
		case isExpMark(b):
			if seenExp {
				break loop
			}
			seenExp = true
		default:
			break loop
		}
		s.pos++
	}
	if s.pos == start {
		return 0, fmt.Errorf("expected number at position %d: %w", start, ErrBadNumber)
	}
	f, err := strconv.ParseFloat(s.data[start:s.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("%q at position %d: %w", s.data[start:s.pos], start, ErrBadNumber)
	}
	return f, nil
}

// readCommand returns the command letter driving the next argument
// group. On a bare number the previous letter `prev` is repeated and
// implicit is true, implementing the grammar's "omit the letter to
// repeat the command" rule. ok is false once the input is exhausted.
func (s *scanner) readCommand(prev byte) (cmd byte, implicit, ok bool) {
	s.skipSeparators()
	if s.atEnd() {
		return 0, false, false
	}
	if b := s.data[s.pos]; isCommandLetter(b) {
		s.pos++
		return b, false, true
	}
	return prev, true, true
}

// Numbers reads all the numbers in the string, as found in attribute
// lists like viewBox or polygon points.
func Numbers(s string) ([]float64, error) {
	sc := scanner{data: s}
	var pts []float64
	for {
		sc.skipSeparators()
		if sc.atEnd() {
			return pts, nil
		}
		f, err := sc.readNumber()
		if err != nil {
			return nil, err
		}
		pts = append(pts, f)
	}
}
