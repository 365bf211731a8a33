package importobserver

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ReadBindings reads JSON lines, one Binding per line. Blank lines are
// ignored.
func ReadBindings(r io.Reader) ([]Binding, error) {
	var bindings []Binding
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		data := bytes.TrimSpace(scanner.Bytes())
		if len(data) == 0 {
			continue
		}
		var b Binding
		if err := json.Unmarshal(data, &b); err != nil {
			return nil, fmt.Errorf("line %d: unmarshal binding: %w", line, err)
		}
		bindings = append(bindings, b)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan bindings: %w", err)
	}
	return bindings, nil
}

// ReadBindingsFile reads a JSON lines file of bindings.
func ReadBindingsFile(filename string) ([]Binding, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	defer f.Close()

	bindings, err := ReadBindings(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return bindings, nil
}

// WriteBindings writes the bindings as JSON lines.
func WriteBindings(w io.Writer, bindings []Binding) error {
	enc := json.NewEncoder(w)
	for _, b := range bindings {
		if err := enc.Encode(b); err != nil {
			return fmt.Errorf("encode binding: %w", err)
		}
	}
	return nil
}
