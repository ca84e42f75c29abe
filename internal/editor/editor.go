// Package editor provides the text sinks formatted blocks are inserted into.
package editor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Sink accepts text at its current cursor position.
type Sink interface {
	InsertAtCursor(text string) error
}

// Cursor is a 1-based line and rune column.
type Cursor struct {
	Line int
	Col  int
}

func (c Cursor) String() string {
	return strconv.Itoa(c.Line) + ":" + strconv.Itoa(c.Col)
}

// ParseCursor reads "LINE" or "LINE:COL". The column defaults to 1.
func ParseCursor(s string) (Cursor, error) {
	s = strings.TrimSpace(s)
	linePart, colPart, hasCol := strings.Cut(s, ":")
	line, err := strconv.Atoi(linePart)
	if err != nil || line < 1 {
		return Cursor{}, fmt.Errorf("invalid cursor %q: line must be a positive number", s)
	}
	col := 1
	if hasCol {
		col, err = strconv.Atoi(colPart)
		if err != nil || col < 1 {
			return Cursor{}, fmt.Errorf("invalid cursor %q: column must be a positive number", s)
		}
	}
	return Cursor{Line: line, Col: col}, nil
}

// Document is a note file held in memory with a cursor.
type Document struct {
	path   string
	text   string
	cursor Cursor
}

// Open reads the note at path. A missing file yields an empty document that
// is created on Save. The cursor starts at the end of the text.
func Open(path string) (*Document, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("note path is empty")
	}
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read note: %w", err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("read note: %s is not valid UTF-8", path)
	}
	d := &Document{path: path, text: string(data)}
	d.MoveToEnd()
	return d, nil
}

// Path returns the file the document saves to.
func (d *Document) Path() string { return d.path }

// Text returns the current contents.
func (d *Document) Text() string { return d.text }

// SetText replaces the contents and moves the cursor to the end.
func (d *Document) SetText(text string) {
	d.text = text
	d.MoveToEnd()
}

// Cursor returns the current cursor.
func (d *Document) Cursor() Cursor { return d.cursor }

// MoveToEnd places the cursor after the last character.
func (d *Document) MoveToEnd() {
	lines := strings.Split(d.text, "\n")
	last := lines[len(lines)-1]
	d.cursor = Cursor{Line: len(lines), Col: utf8.RuneCountInString(last) + 1}
}

// SetCursor moves the cursor. The column may point one past the end of the
// line.
func (d *Document) SetCursor(c Cursor) error {
	if _, err := d.offset(c); err != nil {
		return err
	}
	d.cursor = c
	return nil
}

// InsertAtCursor implements Sink. The cursor ends up after the inserted text.
func (d *Document) InsertAtCursor(text string) error {
	off, err := d.offset(d.cursor)
	if err != nil {
		return err
	}
	d.text = d.text[:off] + text + d.text[off:]

	if n := strings.Count(text, "\n"); n > 0 {
		tail := text[strings.LastIndex(text, "\n")+1:]
		d.cursor = Cursor{Line: d.cursor.Line + n, Col: utf8.RuneCountInString(tail) + 1}
	} else {
		d.cursor.Col += utf8.RuneCountInString(text)
	}
	return nil
}

// Save writes the document back to its path through a temporary file.
func (d *Document) Save() error {
	dir := filepath.Dir(d.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create note dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".xenquotes-*")
	if err != nil {
		return fmt.Errorf("create temp note: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := io.WriteString(tmp, d.text); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write note: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close note: %w", err)
	}
	if err := os.Rename(tmp.Name(), d.path); err != nil {
		return fmt.Errorf("replace note: %w", err)
	}
	return nil
}

// offset converts c into a byte offset into d.text.
func (d *Document) offset(c Cursor) (int, error) {
	if c.Line < 1 || c.Col < 1 {
		return 0, fmt.Errorf("cursor %s out of range", c)
	}
	off := 0
	line := 1
	for line < c.Line {
		idx := strings.IndexByte(d.text[off:], '\n')
		if idx < 0 {
			return 0, fmt.Errorf("cursor %s past last line %d", c, line)
		}
		off += idx + 1
		line++
	}
	end := strings.IndexByte(d.text[off:], '\n')
	if end < 0 {
		end = len(d.text) - off
	}
	lineText := d.text[off : off+end]
	col := 1
	for i := range lineText {
		if col == c.Col {
			return off + i, nil
		}
		col++
	}
	if col == c.Col {
		return off + len(lineText), nil
	}
	return 0, fmt.Errorf("cursor %s past end of line %d", c, c.Line)
}

// Writer is a Sink that appends to an io.Writer.
type Writer struct {
	W io.Writer
}

// InsertAtCursor implements Sink.
func (w Writer) InsertAtCursor(text string) error {
	_, err := io.WriteString(w.W, text)
	return err
}
