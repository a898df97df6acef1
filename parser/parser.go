package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

var ErrInvalidInput = errors.New("invalid input, N must be a positive integer")

// ReadN reads N as the first whitespace-delimited token of in.
func ReadN(in io.Reader) (uint64, error) {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		return 0, fmt.Errorf("%w: no input", ErrInvalidInput)
	}

	return ParseN(scanner.Text())
}

func ParseN(token string) (uint64, error) {
	n, err := strconv.ParseUint(token, 10, 64)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInput, token)
	}
	return n, nil
}
