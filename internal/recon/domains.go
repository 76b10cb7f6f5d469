package recon

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

var ErrFileNotFound = errors.New("file not found")

// ReadDomains returns the non empty lines of the file,
// trimmed from surrounding spaces, in the order of the file.
func ReadDomains(path string) (domains []string, err error) {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	case err != nil:
		return nil, fmt.Errorf("checking file: %w", err)
	case !info.Mode().IsRegular():
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		domain := strings.TrimSpace(scanner.Text())
		if domain == "" {
			continue
		}
		domains = append(domains, domain)
	}

	err = scanner.Err()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("reading file: %w", err)
	}

	err = file.Close()
	if err != nil {
		return nil, fmt.Errorf("closing file: %w", err)
	}

	return domains, nil
}
