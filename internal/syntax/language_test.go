package syntax

import "testing"

func TestForExtension(t *testing.T) {
	cases := []struct {
		filename string
		want     string
	}{
		{"main.rs", "Rust"},
		{"a.c", "C"},
		{"a.h", "C"},
		{"Main.java", "Java"},
		{"x.py", "Python"},
		{"main.go", "Go"},
		{"go.mod", "Go"},
		{"app.jsx", "JavaScript"},
		{"app.ts", "TypeScript"},
		{"index.htm", "HTML"},
		{"site.css", "CSS"},
		{"Cargo.toml", "TOML"},
		{"dir.d/file.js", "JavaScript"},
		{"README", ""},
		{"notes.txt", ""},
		{"MAIN.RS", ""},
		{"", ""},
	}
	for _, tc := range cases {
		lang := ForExtension(tc.filename)
		got := ""
		if lang != nil {
			got = lang.Name
		}
		if got != tc.want {
			t.Errorf("ForExtension(%q) = %q, want %q", tc.filename, got, tc.want)
		}
	}
}

func TestForName(t *testing.T) {
	if lang := ForName("typescript"); lang == nil || lang.Name != "TypeScript" {
		t.Errorf("ForName(typescript) = %v, want TypeScript", lang)
	}
	if lang := ForName("text"); lang != nil {
		t.Errorf("ForName(text) = %v, want nil", lang.Name)
	}
}

func TestEmptyMultilinePairIsAbsent(t *testing.T) {
	if ForName("Python").HasMultiline() {
		t.Error("Python should have no block comments")
	}
	if !ForName("Go").HasMultiline() {
		t.Error("Go should have block comments")
	}
}

func TestDetect(t *testing.T) {
	cases := []struct {
		name       string
		filename   string
		content    string
		autoDetect bool
		fallback   string
		wantLang   string
		wantLabel  string
	}{
		{"by extension", "main.go", "", true, "text", "Go", "Go"},
		{"shebang", "tool", "#!/usr/bin/env python3\nprint(1)\n", true, "text", "Python", "Python"},
		{"auto detect off", "main.go", "", false, "text", "", "text"},
		{"auto detect off named fallback", "notes", "", false, "rust", "Rust", "Rust"},
		{"no name", "", "", true, "text", "", "text"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lang, label := Detect(tc.filename, []byte(tc.content), tc.autoDetect, tc.fallback)
			got := ""
			if lang != nil {
				got = lang.Name
			}
			if got != tc.wantLang {
				t.Errorf("language = %q, want %q", got, tc.wantLang)
			}
			if label != tc.wantLabel {
				t.Errorf("label = %q, want %q", label, tc.wantLabel)
			}
		})
	}
}
