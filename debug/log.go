package debug

import (
	"fmt"
	"os"

	"github.com/signadot/csstok/token"
	"github.com/signadot/csstok/wire"
)

// Logf writes a message to stderr. Token arguments are rendered in
// their wire text form.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case token.Token:
			args[i] = wire.Text(&x)
		case *token.Token:
			args[i] = wire.Text(x)
		case []token.Token:
			s := make([]string, len(x))
			for j := range x {
				s[j] = wire.Text(&x[j])
			}
			args[i] = s
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
