package syntax

import (
	"strings"
	"unicode"
)

const separators = ",.[]()+-/*=~%<>\"';&"

// IsSeparator reports whether r ends a word for keyword and number matching.
func IsSeparator(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune(separators, r)
}

// HighlightLine classifies every character of render under lang. prevOpen is
// the open-comment state of the row above. It returns exactly one tag per
// rune of render and whether the row ends inside an unterminated block
// comment. A nil lang classifies everything as Normal.
func HighlightLine(lang *Language, render string, prevOpen bool) ([]Highlight, bool) {
	chars := []rune(render)
	hl := make([]Highlight, 0, len(chars))
	if lang == nil {
		for range chars {
			hl = append(hl, HLNormal)
		}
		return hl, false
	}

	single := []rune(lang.SingleComment)
	mlOpen := []rune(lang.MultilineOpen)
	mlClose := []rune(lang.MultilineClose)
	multiline := lang.HasMultiline()

	prevSep := true
	inComment := prevOpen
	var inString rune

	i := 0
	for i < len(chars) {
		c := chars[i]
		prev := HLNormal
		if i > 0 {
			prev = hl[i-1]
		}

		if inString == 0 && !inComment && len(single) > 0 && hasPrefixAt(chars, i, single) {
			for ; i < len(chars); i++ {
				hl = append(hl, HLComment)
			}
			break
		}

		if multiline && inString == 0 {
			if inComment {
				hl = append(hl, HLMultilineComment)
				if hasPrefixAt(chars, i, mlClose) {
					for j := 1; j < len(mlClose); j++ {
						hl = append(hl, HLMultilineComment)
					}
					i += len(mlClose)
					inComment = false
					prevSep = true
				} else {
					i++
				}
				continue
			}
			if hasPrefixAt(chars, i, mlOpen) {
				for range mlOpen {
					hl = append(hl, HLMultilineComment)
				}
				i += len(mlOpen)
				inComment = true
				continue
			}
		}

		if inString != 0 {
			tag := stringTag(inString)
			hl = append(hl, tag)
			if c == '\\' && i+1 < len(chars) {
				hl = append(hl, tag)
				i += 2
				prevSep = true
				continue
			}
			if c == inString {
				inString = 0
			}
			i++
			prevSep = true
			continue
		}
		if c == '"' || c == '\'' {
			inString = c
			hl = append(hl, stringTag(c))
			i++
			continue
		}

		if (isDigit(c) && (prevSep || prev == HLNumber)) || (c == '.' && prev == HLNumber) {
			hl = append(hl, HLNumber)
			i++
			prevSep = false
			continue
		}

		if prevSep {
			if n, tag, ok := matchKeyword(lang, chars, i); ok {
				for j := 0; j < n; j++ {
					hl = append(hl, tag)
				}
				i += n
				prevSep = false
				continue
			}
		}

		hl = append(hl, HLNormal)
		prevSep = IsSeparator(c)
		i++
	}
	return hl, inComment
}

func stringTag(quote rune) Highlight {
	if quote == '"' {
		return HLString
	}
	return HLCharLiteral
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func hasPrefixAt(chars []rune, i int, tok []rune) bool {
	if len(tok) == 0 || i+len(tok) > len(chars) {
		return false
	}
	for j, r := range tok {
		if chars[i+j] != r {
			return false
		}
	}
	return true
}

// matchKeyword scans the keyword groups in declared order and returns the
// length and tag of the first word at i followed by a separator or the end
// of the row.
func matchKeyword(lang *Language, chars []rune, i int) (int, Highlight, bool) {
	for _, group := range lang.Keywords {
		for _, word := range group.Words {
			w := []rune(word)
			if !hasPrefixAt(chars, i, w) {
				continue
			}
			end := i + len(w)
			if end == len(chars) || IsSeparator(chars[end]) {
				return len(w), Keyword(group.Color), true
			}
		}
	}
	return 0, HLNormal, false
}
