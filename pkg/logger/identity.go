package logger

import (
	"fmt"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Identity is the short display name of the running program, as derived from
// the first element of its argument vector.
type Identity string

func (id Identity) String() string {
	return string(id)
}

// ResolveIdentity derives the program's display name from its invocation
// arguments. Only args[0] is considered; its final path segment is returned
// verbatim.
func ResolveIdentity(args []string) (Identity, error) {
	if len(args) == 0 {
		return "", ErrMissingArguments
	}
	path := args[0]
	segment := path
	if i := strings.LastIndexAny(path, "/"+string(os.PathSeparator)); i >= 0 {
		segment = path[i+1:]
	}
	switch segment {
	case "", ".", "..":
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	if !utf8.ValidString(segment) {
		return "", fmt.Errorf("%w: %q", ErrNonTextName, segment)
	}
	for _, r := range segment {
		if !unicode.IsPrint(r) {
			return "", fmt.Errorf("%w: %q", ErrNonTextName, segment)
		}
	}
	return Identity(segment), nil
}
