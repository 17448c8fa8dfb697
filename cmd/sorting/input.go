package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// readInts parses whitespace separated decimal integers.
func readInts(r io.Reader) ([]int, error) {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	var xs []int
	for s.Scan() {
		v, err := strconv.Atoi(s.Text())
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", len(xs)+1, err)
		}
		xs = append(xs, v)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return xs, nil
}

// readFiles reads one sequence per file, or a single sequence from stdin when
// files is empty. A file named "-" also reads stdin.
func readFiles(stdin io.Reader, files []string) ([][]int, error) {
	if len(files) == 0 {
		xs, err := readInts(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return [][]int{xs}, nil
	}
	runs := make([][]int, 0, len(files))
	for _, name := range files {
		xs, err := readFile(stdin, name)
		if err != nil {
			return nil, err
		}
		runs = append(runs, xs)
	}
	return runs, nil
}

func readFile(stdin io.Reader, name string) ([]int, error) {
	if name == "-" {
		xs, err := readInts(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return xs, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	xs, err := readInts(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return xs, nil
}

// writeInts writes one integer per line.
func writeInts(w io.Writer, xs []int) error {
	bw := bufio.NewWriter(w)
	for _, v := range xs {
		bw.WriteString(strconv.Itoa(v))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// formatInts renders a short preview of xs for log and error messages.
func formatInts(xs []int) string {
	const limit = 20
	parts := make([]string, 0, min(len(xs), limit)+1)
	for i, v := range xs {
		if i == limit {
			parts = append(parts, fmt.Sprintf("... (%d more)", len(xs)-limit))
			break
		}
		parts = append(parts, strconv.Itoa(v))
	}
	return "[" + strings.Join(parts, " ") + "]"
}
