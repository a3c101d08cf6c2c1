package compose

import (
	"strings"
	"unicode"
)

// authorPrefix separates the quote from its author.
const authorPrefix = " - "

// tabSize is the tab stop used when expanding tabs before wrapping.
const tabSize = 8

// Wrap fills lines of at most width runes with the chunks of text.
//
// Tabs are expanded and every other ASCII whitespace character becomes a
// space; runs of spaces are kept. Words break after hyphens inside
// compounds ("state-of-the-art") and around em-dashes ("wait--what").
// Whitespace is dropped at line ends and at the start of every line but
// the first. A chunk longer than width fills the space left on the current
// line, breaking after its last hyphen in that space when there is one.
// A width below 1 is treated as 1.
func Wrap(text string, width int) []string {
	width = max(width, 1)

	chunks := splitChunks(normalizeSpace(text))
	var lines []string
	for len(chunks) > 0 {
		if len(lines) > 0 && isBlank(chunks[0]) {
			chunks = chunks[1:]
		}

		var line [][]rune
		n := 0
		for len(chunks) > 0 && n+len(chunks[0]) <= width {
			line = append(line, chunks[0])
			n += len(chunks[0])
			chunks = chunks[1:]
		}

		if len(chunks) > 0 && len(chunks[0]) > width {
			chunk := chunks[0]
			end := width - n
			if h := lastHyphen(chunk[:end]); h > 0 && strings.Trim(string(chunk[:h]), "-") != "" {
				end = h + 1
			}
			line = append(line, chunk[:end])
			chunks[0] = chunk[end:]
		}

		if k := len(line); k > 0 && isBlank(line[k-1]) {
			line = line[:k-1]
		}
		if len(line) > 0 {
			var b strings.Builder
			for _, c := range line {
				b.WriteString(string(c))
			}
			lines = append(lines, b.String())
		}
	}
	return lines
}

// ComposeText builds the multi-line block drawn onto the photo: the wrapped
// quote, a newline, then " - " and the wrapped author in upper case.
func ComposeText(quote, author string, width int) string {
	wrappedQuote := strings.Join(Wrap(quote, width), "\n")
	wrappedAuthor := strings.Join(Wrap(author, width), "\n")
	return wrappedQuote + "\n" + authorPrefix + strings.ToUpper(wrappedAuthor)
}

// normalizeSpace expands tabs to the next multiple of tabSize columns and
// turns the remaining ASCII whitespace into spaces. Columns restart after
// '\n' and '\r'.
func normalizeSpace(text string) []rune {
	out := make([]rune, 0, len(text))
	col := 0
	for _, r := range text {
		switch {
		case r == '\t':
			pad := tabSize - col%tabSize
			for range pad {
				out = append(out, ' ')
			}
			col += pad
		case r == '\n' || r == '\r':
			out = append(out, ' ')
			col = 0
		case isSpace(r):
			out = append(out, ' ')
			col++
		default:
			out = append(out, r)
			col++
		}
	}
	return out
}

// splitChunks cuts text into whitespace runs, em-dashes and words. A word
// ends at whitespace, before an em-dash, or after a hyphen joining two
// letters of a compound.
func splitChunks(text []rune) [][]rune {
	var chunks [][]rune
	for s := 0; s < len(text); {
		var e int
		switch {
		case isSpace(text[s]):
			e = s + 1
			for e < len(text) && isSpace(text[e]) {
				e++
			}
		case s > 0 && isWordPunct(text[s-1]) && dashRun(text, s) > 0:
			e = s + dashRun(text, s)
		default:
			e = wordEnd(text, s)
		}
		chunks = append(chunks, text[s:e])
		s = e
	}
	return chunks
}

// wordEnd returns the end of the word chunk starting at s.
func wordEnd(text []rune, s int) int {
	for j := s + 1; ; j++ {
		if j == len(text) || isSpace(text[j]) {
			return j
		}
		if text[j] == '-' && compoundHyphen(text, j) {
			return j + 1
		}
		if isWordPunct(text[j-1]) && dashRun(text, j) > 0 {
			return j
		}
	}
}

// compoundHyphen reports whether the hyphen at i follows two letters (or a
// letter, hyphen, letter) and precedes two letters, optionally split by a
// hyphen.
func compoundHyphen(text []rune, i int) bool {
	at := func(k int) rune {
		if k < 0 || k >= len(text) {
			return 0
		}
		return text[k]
	}
	before := isLetter(at(i-2)) && isLetter(at(i-1)) ||
		isLetter(at(i-3)) && at(i-2) == '-' && isLetter(at(i-1))
	after := isLetter(at(i+1)) &&
		(isLetter(at(i+2)) || at(i+2) == '-' && isLetter(at(i+3)))
	return before && after
}

// dashRun returns the length of the em-dash starting at i: two or more
// hyphens followed by a word character. It returns 0 when there is none.
func dashRun(text []rune, i int) int {
	e := i
	for e < len(text) && text[e] == '-' {
		e++
	}
	if e-i < 2 || e == len(text) || !isWord(text[e]) {
		return 0
	}
	return e - i
}

func lastHyphen(rs []rune) int {
	for i := len(rs) - 1; i >= 0; i-- {
		if rs[i] == '-' {
			return i
		}
	}
	return -1
}

func isBlank(rs []rune) bool {
	return strings.TrimSpace(string(rs)) == ""
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// isLetter matches word characters other than decimal digits.
func isLetter(r rune) bool {
	return isWord(r) && !unicode.IsDigit(r)
}

func isWordPunct(r rune) bool {
	return isWord(r) || strings.ContainsRune(`!"'&.,?`, r)
}
