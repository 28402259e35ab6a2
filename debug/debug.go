package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Tokens bool
	Filter bool
	Diff   bool
	LSP    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("CSSTOK_DEBUG_TOKENS")
	d.Filter = boolEnv("CSSTOK_DEBUG_FILTER")
	d.Diff = boolEnv("CSSTOK_DEBUG_DIFF")
	d.LSP = boolEnv("CSSTOK_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokens() bool {
	return d.Tokens
}
func Filter() bool {
	return d.Filter
}
func Diff() bool {
	return d.Diff
}
func LSP() bool {
	return d.LSP
}

// LogAny writes v to stderr as one line of json.
func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(append(d, '\n'))
}
