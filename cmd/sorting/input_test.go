package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadInts(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []int
		wantErr bool
	}{
		{name: "empty", in: "", want: nil},
		{name: "lines", in: "3\n1\n2\n", want: []int{3, 1, 2}},
		{name: "mixed whitespace", in: " 125 322\t523\n\n-4 ", want: []int{125, 322, 523, -4}},
		{name: "not a number", in: "1 two 3", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readInts(strings.NewReader(tt.in))
			if (err != nil) != tt.wantErr {
				t.Fatalf("readInts(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("readInts(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestReadFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	if err := os.WriteFile(a, []byte("1 3 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, []byte("2\n4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := readFiles(strings.NewReader("9 8"), []string{a, "-", b})
	if err != nil {
		t.Fatal(err)
	}
	want := [][]int{{1, 3, 5}, {9, 8}, {2, 4}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("readFiles mismatch (-want +got):\n%s", diff)
	}

	got, err = readFiles(strings.NewReader("7 6"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([][]int{{7, 6}}, got); diff != "" {
		t.Errorf("readFiles(stdin) mismatch (-want +got):\n%s", diff)
	}

	if _, err := readFiles(nil, []string{filepath.Join(dir, "missing.txt")}); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestWriteInts(t *testing.T) {
	var buf bytes.Buffer
	if err := writeInts(&buf, []int{3, -1, 20}); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "3\n-1\n20\n"; got != want {
		t.Errorf("writeInts = %q, want %q", got, want)
	}
}

func TestFormatInts(t *testing.T) {
	if got := formatInts([]int{1, 2}); got != "[1 2]" {
		t.Errorf("formatInts = %q", got)
	}
	long := make([]int, 25)
	if got := formatInts(long); !strings.HasSuffix(got, "... (5 more)]") {
		t.Errorf("formatInts(25 items) = %q", got)
	}
}
