package split

import "io"

// Lines walks a string line by line, where lines are separated by a single LF. Carriage
// returns are left untouched. Just like a plain split, a string ending with LF yields an
// extra empty line, and an empty string yields nothing at all.
type Lines struct {
	data string
	done bool
}

func NewLines(data string) *Lines {
	return &Lines{
		data: data,
		done: len(data) == 0,
	}
}

// Next returns the next line without its trailing LF, or io.EOF if there are no lines left.
func (l *Lines) Next() (string, error) {
	if l.done {
		return "", io.EOF
	}

	for i := 0; i < len(l.data); i++ {
		if l.data[i] == '\n' {
			line := l.data[:i]
			l.data = l.data[i+1:]

			return line, nil
		}
	}

	line := l.data
	l.data = ""
	l.done = true

	return line, nil
}

// Rest returns all the lines not yet walked, joined back by LF. As the lines are
// separated by exactly one LF, this is precisely the unconsumed tail of the string.
func (l *Lines) Rest() string {
	return l.data
}
