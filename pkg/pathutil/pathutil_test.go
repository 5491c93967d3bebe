package pathutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeLexical(t *testing.T) {
	sep := string(filepath.Separator)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"parent in middle", "a/b/../c", "a" + sep + "c"},
		{"current dir segments", "./a/./b", "a" + sep + "b"},
		{"over-pop on empty accumulator", "../a", "a"},
		{"only parents", "../..", ""},
		{"absolute", "/x/y/../z", sep + "x" + sep + "z"},
		{"absolute escapes to root", "/x/../../y", sep + "y"},
		{"repeated separators", "a//b///c", "a" + sep + "b" + sep + "c"},
		{"empty", "", ""},
		{"dot", ".", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeLexical(filepath.FromSlash(tt.in)); got != tt.want {
				t.Errorf("NormalizeLexical(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeLexicalDoesNotResolveSymlinks(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(dir, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	in := filepath.Join(link, "sub", "..", "file.cpp")
	want := filepath.Join(link, "file.cpp")
	if got := NormalizeLexical(in); got != want {
		t.Errorf("NormalizeLexical(%q) = %q, want %q", in, got, want)
	}
}

func TestFindAncestorFileTwoLevelsUp(t *testing.T) {
	root := t.TempDir()
	deep := filepath.Join(root, "src", "lib")
	if err := os.MkdirAll(deep, 0o755); err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(root, "marker.json")
	if err := os.WriteFile(want, []byte("{}"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := FindAncestorFile(filepath.Join(deep, "main.cpp"), "marker.json")
	if err != nil {
		t.Fatalf("FindAncestorFile() error = %v", err)
	}
	if got != want {
		t.Errorf("FindAncestorFile() = %q, want %q", got, want)
	}
}

func TestFindAncestorFilePrefersNearest(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "sub")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, dir := range []string{root, sub} {
		if err := os.WriteFile(filepath.Join(dir, "marker.json"), []byte("{}"), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	got, err := FindAncestorFile(filepath.Join(sub, "a.cpp"), "marker.json")
	if err != nil {
		t.Fatalf("FindAncestorFile() error = %v", err)
	}
	if want := filepath.Join(sub, "marker.json"); got != want {
		t.Errorf("FindAncestorFile() = %q, want %q", got, want)
	}
}

func TestFindAncestorFileNoMatch(t *testing.T) {
	dir := t.TempDir()

	got, err := FindAncestorFile(filepath.Join(dir, "a.cpp"), "no-such-marker-4f1c2b.json")
	if err != nil {
		t.Fatalf("FindAncestorFile() error = %v", err)
	}
	if got != "" {
		t.Errorf("FindAncestorFile() = %q, want empty", got)
	}
}

func TestFindAncestorFileRelativeStart(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "marker.json"), []byte("{}"), 0o600); err != nil {
		t.Fatal(err)
	}
	chdir(t, root)

	got, err := FindAncestorFile("a.cpp", "marker.json")
	if err != nil {
		t.Fatalf("FindAncestorFile() error = %v", err)
	}
	if filepath.Base(got) != "marker.json" || !filepath.IsAbs(got) {
		t.Errorf("FindAncestorFile() = %q, want absolute path to marker.json", got)
	}
}

func TestSameFile(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.cpp")
	if err := os.WriteFile(a, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	if !SameFile(a, filepath.Join(dir, ".", "a.cpp")) {
		t.Error("SameFile() = false for equivalent paths")
	}
	if SameFile(a, filepath.Join(dir, "missing.cpp")) {
		t.Error("SameFile() = true for missing file")
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}
