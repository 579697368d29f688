package dispatch

import "strings"

// Surface names an interactive element. Children live beneath their owner as
// slash-separated paths, e.g. "select-1/option/3".
type Surface string

// None is the empty surface: nothing focused, nothing hit.
const None Surface = ""

const separator = "/"

// Child returns the surface nested under s by the given path segments.
func (s Surface) Child(parts ...string) Surface {
	if len(parts) == 0 {
		return s
	}
	return Surface(string(s) + separator + strings.Join(parts, separator))
}

// Parent returns the enclosing surface, or None for a root surface.
func (s Surface) Parent() Surface {
	idx := strings.LastIndex(string(s), separator)
	if idx < 0 {
		return None
	}
	return s[:idx]
}

// Root returns the outermost surface of the path.
func (s Surface) Root() Surface {
	if idx := strings.Index(string(s), separator); idx >= 0 {
		return s[:idx]
	}
	return s
}

// Within reports whether s is ancestor itself or nested beneath it.
func (s Surface) Within(ancestor Surface) bool {
	if ancestor == None || s == None {
		return false
	}
	if s == ancestor {
		return true
	}
	return strings.HasPrefix(string(s), string(ancestor)+separator)
}

// Depth counts the path segments.
func (s Surface) Depth() int {
	if s == None {
		return 0
	}
	return strings.Count(string(s), separator) + 1
}
