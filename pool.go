package bingo

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Lines up to 1 MiB are read whole and wrapped when drawn. A longer line is
// an input error.
const maxLineLength = 1024 * 1024

// ReadValuePool reads one value per line. Blank lines are skipped, whitespace
// around each value is trimmed and invalid UTF-8 is replaced. Repeated values
// are dropped.
func ReadValuePool(r io.Reader) (ValuePool, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	var pool ValuePool
	for scanner.Scan() {
		line := strings.TrimSpace(strings.ToValidUTF8(scanner.Text(), "�"))
		if line == "" {
			continue
		}
		pool = append(pool, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputRead, err)
	}

	distinct := pool.Distinct()
	if dropped := len(pool) - len(distinct); dropped > 0 {
		log.Printf("ignoring %d repeated value(s) in the input", dropped)
	}
	return distinct, nil
}

func LoadValuePool(path string) (ValuePool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputRead, err)
	}
	defer f.Close()
	return ReadValuePool(f)
}
