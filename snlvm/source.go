package snlvm

import "strings"

type Source struct {
	Name    string
	Content string
}

func NewSource(name string, content string) *Source {
	return &Source{
		Name:    name,
		Content: content,
	}
}

// Line returns the 1-based line containing the byte offset, the line's
// content, and the column of the offset within it.
func (s *Source) Line(offset int) (line int, content string, column int) {
	if offset > len(s.Content) {
		offset = len(s.Content)
	}
	start := strings.LastIndexByte(s.Content[:offset], '\n') + 1
	line = 1 + strings.Count(s.Content[:start], "\n")
	end := strings.IndexByte(s.Content[start:], '\n')
	if end < 0 {
		content = s.Content[start:]
	} else {
		content = s.Content[start : start+end]
	}
	column = offset - start
	return
}
