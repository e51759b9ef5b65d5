package eol

// Style is the convention of a whole buffer.
type Style int

const (
	Unix Style = iota
	PC
	Mac
)

func (s Style) String() string {
	switch s {
	case PC:
		return "PC"
	case Mac:
		return "Mac"
	}
	return "Unix"
}

// Ending returns the terminator a buffer of this style is written with.
func (s Style) Ending() Ending {
	switch s {
	case PC:
		return CRLF
	case Mac:
		return CR
	}
	return LF
}

// Detect classifies b. The last CR-based terminator wins; a lone LF never
// changes the result.
func Detect(b []byte) Style {
	style := Unix
	for i := 0; i < len(b); i++ {
		if b[i] != '\r' {
			continue
		}
		if i+1 < len(b) && b[i+1] == '\n' {
			style = PC
			i++
		} else {
			style = Mac
		}
	}
	return style
}

// Census counts each kind of terminator in a buffer.
type Census struct {
	CR   int
	LF   int
	CRLF int
}

// Count scans b once and tallies its terminators.
func Count(b []byte) Census {
	var c Census
	for i := 0; i < len(b); i++ {
		switch b[i] {
		case '\r':
			if i+1 < len(b) && b[i+1] == '\n' {
				c.CRLF++
				i++
			} else {
				c.CR++
			}
		case '\n':
			c.LF++
		}
	}
	return c
}

// Total is the number of terminators counted.
func (c Census) Total() int {
	return c.CR + c.LF + c.CRLF
}

// Mixed reports whether more than one kind of terminator was seen.
func (c Census) Mixed() bool {
	kinds := 0
	for _, e := range Endings {
		if c.Of(e) > 0 {
			kinds++
		}
	}
	return kinds > 1
}

// Of returns the count for a single ending.
func (c Census) Of(e Ending) int {
	switch e {
	case CR:
		return c.CR
	case LF:
		return c.LF
	case CRLF:
		return c.CRLF
	}
	return 0
}
