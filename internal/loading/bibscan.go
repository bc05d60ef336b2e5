package loading

import (
	"bytes"
	"fmt"
	"strings"
)

// bibSource is BibTeX text reduced to the blocks the parser understands.
type bibSource struct {
	text []byte
	// records counts entry blocks that should come back as records, i.e.
	// everything except @string, @preamble and @comment.
	records int
}

// scanBibSource keeps only the @-blocks of a BibTeX file. Lines starting with
// '%' and any free text between entries are dropped, as BibTeX itself ignores
// them. @comment and @preamble blocks are dropped too, and parenthesized
// entries are rewritten with braces.
func scanBibSource(src []byte) bibSource {
	src = stripCommentLines(src)

	var out bytes.Buffer
	records := 0
	for i := 0; i < len(src); {
		if src[i] != '@' {
			i++
			continue
		}
		kind, open, ok := entryHeader(src, i+1)
		if !ok {
			i++
			continue
		}
		if kind != "string" && kind != "preamble" && kind != "comment" {
			records++
		}

		end, ok := blockEnd(src, open)
		if !ok {
			// Unterminated: let the parser report it.
			out.Write(src[i:])
			break
		}

		switch kind {
		case "comment", "preamble":
		default:
			out.WriteByte('@')
			out.Write(src[i+1 : open])
			out.WriteByte('{')
			out.Write(src[open+1 : end])
			out.WriteString("}\n")
		}
		i = end + 1
	}

	return bibSource{text: out.Bytes(), records: records}
}

func stripCommentLines(src []byte) []byte {
	lines := bytes.SplitAfter(src, []byte("\n"))
	kept := lines[:0]
	for _, line := range lines {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("%")) {
			continue
		}
		kept = append(kept, line)
	}
	return bytes.Join(kept, nil)
}

// entryHeader reads "type{" or "type(" starting after an '@'. It returns the
// lower-cased type and the index of the opening delimiter.
func entryHeader(src []byte, start int) (string, int, bool) {
	j := start
	for j < len(src) && isIdentByte(src[j]) {
		j++
	}
	if j == start {
		return "", 0, false
	}
	kind := strings.ToLower(string(src[start:j]))

	for j < len(src) && isBlank(src[j]) {
		j++
	}
	if j == len(src) || (src[j] != '{' && src[j] != '(') {
		return "", 0, false
	}
	return kind, j, true
}

// blockEnd returns the index of the delimiter closing the block opened at open.
func blockEnd(src []byte, open int) (int, bool) {
	parens := src[open] == '('
	depth := 0
	inQuote := false
	for k := open + 1; k < len(src); k++ {
		switch c := src[k]; {
		case c == '{':
			depth++
		case c == '}':
			if depth == 0 {
				if !parens {
					return k, true
				}
				continue
			}
			depth--
		case parens && c == '"' && depth == 0:
			inQuote = !inQuote
		case parens && c == ')' && depth == 0 && !inQuote:
			return k, true
		}
	}
	return 0, false
}

func isIdentByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// checkEntryCount fails when the parser returned fewer records than the file
// declares, so a skipped entry never passes as a smaller bibliography.
func checkEntryCount(path string, parsed, declared int) error {
	if parsed >= declared {
		return nil
	}
	return &LoadError{
		Message: fmt.Sprintf("parsed %d of %d entries in %s", parsed, declared, path),
	}
}
