package intcode

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseProgram parses comma separated integers.
func ParseProgram(src string) ([]int64, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, ErrEmptyProgram
	}
	fields := strings.Split(src, ",")
	ret := make([]int64, 0, len(fields))
	for i, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" && i == len(fields)-1 {
			// trailing comma
			break
		}
		v, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse word %d: %w", i, err)
		}
		ret = append(ret, v)
	}
	return ret, nil
}

func ReadProgram(r io.Reader) ([]int64, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseProgram(string(content))
}
