package syntax

import (
	"path/filepath"
	"strings"
)

// KeywordGroup is a list of words drawn in one colour.
type KeywordGroup struct {
	Color Color
	Words []string
}

// Language describes how to lex one file type. The zero MultilineOpen /
// MultilineClose pair means the language has no block comments.
type Language struct {
	Name           string
	Extensions     []string
	SingleComment  string
	MultilineOpen  string
	MultilineClose string
	Keywords       []KeywordGroup
}

// HasMultiline reports whether the language has a usable block comment pair.
func (l *Language) HasMultiline() bool {
	return l.MultilineOpen != "" && l.MultilineClose != ""
}

// Languages is the built-in table, searched in order.
var Languages = []*Language{
	{
		Name:           "Rust",
		Extensions:     []string{"rs"},
		SingleComment:  "//",
		MultilineOpen:  "/*",
		MultilineClose: "*/",
		Keywords: []KeywordGroup{
			{ColorYellow, []string{
				"mod", "unsafe", "extern", "crate", "use", "type", "struct", "enum", "union", "const", "static",
				"mut", "let", "if", "else", "impl", "trait", "for", "fn", "self", "Self", "while", "true", "false",
				"in", "continue", "break", "loop", "match",
			}},
			{ColorMagenta, []string{
				"isize", "i8", "i16", "i32", "i64", "usize", "u8", "u16", "u32", "u64", "f32", "f64",
				"char", "str", "bool",
			}},
		},
	},
	{
		Name:           "C",
		Extensions:     []string{"c", "h"},
		SingleComment:  "//",
		MultilineOpen:  "/*",
		MultilineClose: "*/",
		Keywords: []KeywordGroup{
			{ColorYellow, []string{
				"auto", "break", "case", "char", "const", "continue", "default", "do", "double", "else",
				"enum", "extern", "float", "for", "goto", "if", "include", "int", "long", "register", "return",
				"short", "signed", "sizeof", "static", "struct", "switch", "typedef", "union", "unsigned",
				"void", "volatile", "while",
			}},
			{ColorMagenta, []string{"bool", "true", "false"}},
		},
	},
	{
		Name:           "Java",
		Extensions:     []string{"java"},
		SingleComment:  "//",
		MultilineOpen:  "/*",
		MultilineClose: "*/",
		Keywords: []KeywordGroup{
			{ColorYellow, []string{
				"abstract", "assert", "boolean", "break", "byte", "case", "catch", "char", "class",
				"const", "continue", "default", "do", "double", "else", "enum", "extends", "final",
				"finally", "float", "for", "goto", "if", "implements", "import", "instanceof",
				"int", "interface", "long", "native", "new", "null", "package", "private",
				"protected", "public", "return", "short", "static", "strictfp", "super",
				"switch", "synchronized", "this", "throw", "throws", "transient", "try",
				"void", "volatile", "while",
			}},
		},
	},
	{
		Name:          "Python",
		Extensions:    []string{"py"},
		SingleComment: "#",
		Keywords: []KeywordGroup{
			{ColorYellow, []string{
				"and", "as", "assert", "async", "await", "break", "class", "continue", "def", "del",
				"elif", "else", "except", "finally", "for", "from", "global", "if", "import",
				"in", "is", "lambda", "nonlocal", "not", "or", "pass", "raise", "return",
				"try", "while", "with", "yield",
			}},
		},
	},
	{
		Name:           "Go",
		Extensions:     []string{"go", "mod"},
		SingleComment:  "//",
		MultilineOpen:  "/*",
		MultilineClose: "*/",
		Keywords: []KeywordGroup{
			{ColorYellow, []string{
				"break", "case", "chan", "const", "continue", "default", "defer", "else", "fallthrough",
				"for", "func", "go", "goto", "if", "import", "interface", "map", "module", "package", "range",
				"return", "select", "struct", "switch", "type", "var",
			}},
		},
	},
	{
		Name:           "JavaScript",
		Extensions:     []string{"js", "jsx"},
		SingleComment:  "//",
		MultilineOpen:  "/*",
		MultilineClose: "*/",
		Keywords: []KeywordGroup{
			{ColorYellow, []string{
				"break", "case", "catch", "class", "const", "continue", "debugger", "default", "delete",
				"do", "else", "export", "extends", "finally", "for", "function", "if", "import",
				"in", "instanceof", "let", "new", "return", "super", "switch", "this",
				"throw", "try", "typeof", "var", "void", "while", "with", "yield",
			}},
		},
	},
	{
		Name:           "TypeScript",
		Extensions:     []string{"ts", "tsx"},
		SingleComment:  "//",
		MultilineOpen:  "/*",
		MultilineClose: "*/",
		Keywords: []KeywordGroup{
			{ColorYellow, []string{
				"abstract", "as", "async", "await", "break", "case", "catch", "class", "const",
				"continue", "debugger", "default", "delete", "do", "else", "enum", "export",
				"extends", "finally", "for", "function", "if", "implements", "import",
				"in", "instanceof", "interface", "let", "new", "return", "super",
				"switch", "this", "throw", "try", "type", "typeof", "var", "void",
				"while", "with", "yield",
			}},
		},
	},
	{
		Name:           "HTML",
		Extensions:     []string{"html", "htm"},
		SingleComment:  "<!--",
		MultilineOpen:  "<!--",
		MultilineClose: "-->",
		Keywords: []KeywordGroup{
			{ColorYellow, []string{
				"html", "head", "body", "title", "meta", "link", "script", "style", "div",
				"span", "p", "a", "img", "ul", "ol", "li", "table", "tr", "td", "th",
				"form", "input", "button",
			}},
		},
	},
	{
		Name:           "CSS",
		Extensions:     []string{"css"},
		SingleComment:  "/*",
		MultilineOpen:  "/*",
		MultilineClose: "*/",
		Keywords: []KeywordGroup{
			{ColorYellow, []string{
				"background", "border", "color", "display", "font", "height", "margin",
				"padding", "position", "text", "width",
			}},
		},
	},
	{
		Name:           "TOML",
		Extensions:     []string{"toml"},
		SingleComment:  "#",
		MultilineOpen:  "#",
		MultilineClose: "#",
		Keywords: []KeywordGroup{
			{ColorYellow, []string{"true", "false", "null", "nil"}},
		},
	},
}

// ForExtension returns the first language claiming the extension of
// filename, or nil. The match is case-sensitive.
func ForExtension(filename string) *Language {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		return nil
	}
	for _, lang := range Languages {
		for _, e := range lang.Extensions {
			if e == ext {
				return lang
			}
		}
	}
	return nil
}

// ForName returns the language whose name matches name case-insensitively.
func ForName(name string) *Language {
	for _, lang := range Languages {
		if strings.EqualFold(lang.Name, name) {
			return lang
		}
	}
	return nil
}
