package dbg

import "github.com/kr/pretty"

// Dump formats v with its field names for debug logging.
func Dump(v any) string {
	return pretty.Sprint(v)
}
