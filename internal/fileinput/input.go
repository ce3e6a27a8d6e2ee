package fileinput

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Location names a line in an Input file.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Input implements sequential line reading through a Queue of one or more
// input streams. The location of the last line read is tracked to facilitate
// user feedback.
type Input struct {
	br    *bufio.Reader
	cur   io.Reader
	Queue []io.Reader
	Last  Location
}

// ReadLine returns the next line from the current input stream, without its
// line terminator, moving on to the next queued stream at end of file. A
// final line lacking a terminator is still returned. Returns io.EOF once the
// Queue is exhausted.
func (in *Input) ReadLine() (string, error) {
	for {
		if in.br == nil && !in.nextIn() {
			return "", io.EOF
		}

		line, err := in.br.ReadString('\n')
		if len(line) > 0 {
			in.Last.Line++
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if err == io.EOF {
				in.closeIn()
			} else if err != nil {
				return line, err
			}
			return line, nil
		}
		if err != io.EOF {
			return "", err
		}
		in.closeIn()
	}
}

// Close closes any remaining streams, including those still queued.
func (in *Input) Close() (err error) {
	in.closeIn()
	for _, r := range in.Queue {
		if cl, ok := r.(io.Closer); ok {
			if cerr := cl.Close(); err == nil {
				err = cerr
			}
		}
	}
	in.Queue = nil
	return err
}

func (in *Input) closeIn() {
	if cl, ok := in.cur.(io.Closer); ok {
		cl.Close()
	}
	in.cur = nil
	in.br = nil
}

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	r := in.Queue[0]
	in.Queue = in.Queue[1:]
	in.cur = r
	if br, ok := r.(*bufio.Reader); ok {
		in.br = br
	} else {
		in.br = bufio.NewReader(r)
	}
	in.Last = Location{Name: nameOf(r)}
	return true
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}

// NamedReader attaches a Name to r, as reported by Location.
func NamedReader(name string, r io.Reader) io.Reader {
	return namedReader{r, name}
}

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }
