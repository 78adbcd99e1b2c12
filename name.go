package orderx

import (
	"fmt"
	"strconv"
	"strings"
)

// Separator splits the numeric prefix from the rest of a managed name
const Separator = "-"

// Name is a validated managed name such as "03-setup.md".
// The zero value is not valid, use ParseName
type Name struct {
	raw       string
	prefix    string
	number    int
	suffix    string
	separated bool
}

// ParseName validates name and splits it into prefix and suffix
func ParseName(name string) (Name, error) {
	prefix, suffix, separated := strings.Cut(name, Separator)
	if !isDigits(prefix) {
		return Name{}, newInvalidNameError(name, "")
	}

	number, err := strconv.Atoi(prefix)
	if err != nil {
		return Name{}, newInvalidNameError(name, "")
	}

	return Name{
		raw:       name,
		prefix:    prefix,
		number:    number,
		suffix:    suffix,
		separated: separated,
	}, nil
}

func (n Name) String() string {
	return n.raw
}

// Prefix returns the digit run exactly as written, padding included
func (n Name) Prefix() string {
	return n.prefix
}

// Number returns the numeric value of the prefix
func (n Name) Number() int {
	return n.number
}

// Suffix returns everything after the first separator
func (n Name) Suffix() string {
	return n.suffix
}

// Width returns how many digits the prefix currently uses
func (n Name) Width() int {
	return len(n.prefix)
}

// Renamed returns the name with its prefix replaced by index padded to width digits
func (n Name) Renamed(index, width int) string {
	return formatName(index, width, n.suffix, n.separated)
}

// IsValidName reports whether the text before the first separator
// (or the whole name) is a non-empty run of decimal digits
func IsValidName(name string) bool {
	_, err := ParseName(name)
	return err == nil
}

// Prefix returns the text before the first separator, or the whole name
func Prefix(name string) string {
	prefix, _, _ := strings.Cut(name, Separator)
	return prefix
}

// NumericPrefix parses the prefix of name
func NumericPrefix(name string) (int, error) {
	parsed, err := ParseName(name)
	if err != nil {
		return 0, err
	}

	return parsed.Number(), nil
}

// Renamed replaces the prefix of name with index zero-padded to width digits.
// A name without separator has no suffix and becomes the bare number
func Renamed(name string, index, width int) string {
	_, suffix, separated := strings.Cut(name, Separator)
	return formatName(index, width, suffix, separated)
}

func formatName(index, width int, suffix string, separated bool) string {
	prefix := fmt.Sprintf("%0*d", width, index)
	if !separated {
		return prefix
	}

	return prefix + Separator + suffix
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
