package syntax

import (
	"path/filepath"

	"github.com/go-enry/go-enry/v2"
)

// sniffLimit caps how much of a file is handed to content classifiers.
const sniffLimit = 8 << 10

// Detect chooses the language for a file and the file-type label shown in
// the status bar. With autoDetect off, fallback names the language. With it
// on, the extension table is tried first, then linguist-style detection on
// the name and leading content (shebangs, extensionless files). A nil
// language means plain text.
func Detect(filename string, content []byte, autoDetect bool, fallback string) (*Language, string) {
	if !autoDetect || filename == "" {
		if lang := ForName(fallback); lang != nil {
			return lang, lang.Name
		}
		return nil, fallback
	}
	if lang := ForExtension(filename); lang != nil {
		return lang, lang.Name
	}

	if len(content) > sniffLimit {
		content = content[:sniffLimit]
	}
	name := enry.GetLanguage(filepath.Base(filename), content)
	if name == "" {
		if lang := ForName(fallback); lang != nil {
			return lang, lang.Name
		}
		return nil, fallback
	}
	if lang := ForName(name); lang != nil {
		return lang, lang.Name
	}
	return nil, name
}
