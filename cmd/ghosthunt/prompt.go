package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// promptNames reads want unique hunter names from in, re-prompting on blank
// or repeated input.
func promptNames(in io.Reader, out io.Writer, want int) ([]string, error) {
	scanner := bufio.NewScanner(in)
	names := make([]string, 0, want)
	seen := map[string]bool{}
	for len(names) < want {
		fmt.Fprintf(out, "Enter name for hunter %d: ", len(names)+1)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, err
			}
			return nil, io.ErrUnexpectedEOF
		}
		name := strings.TrimSpace(scanner.Text())
		switch {
		case name == "":
			fmt.Fprintln(out, "Please enter a name.")
		case seen[name]:
			fmt.Fprintf(out, "Hunter [%s] already exists. Please enter a unique hunter name.\n", name)
		default:
			seen[name] = true
			names = append(names, name)
		}
	}
	return names, nil
}
