package wire

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/signadot/csstok/format"
	"github.com/signadot/csstok/token"
)

type Encoder struct {
	w io.Writer
	f format.Format
}

func NewEncoder(w io.Writer, f format.Format) *Encoder {
	return &Encoder{w: w, f: f}
}

func (e *Encoder) Encode(tok *token.Token) error {
	var (
		d   []byte
		err error
	)
	switch e.f {
	case format.TextFormat:
		d = []byte(Text(tok) + "\n")
	case format.JSONFormat:
		d, err = json.Marshal(FromToken(tok))
		d = append(d, '\n')
	case format.YAMLFormat:
		// flow style double quotes every string, so payloads such as
		// "\r\n" or ".inf" read back unchanged.
		d, err = yaml.MarshalWithOptions(FromToken(tok), yaml.JSON())
		d = append([]byte("---\n"), d...)
	default:
		return fmt.Errorf("%w: format %s", ErrUnsupported, e.f)
	}
	if err != nil {
		return err
	}
	_, err = e.w.Write(d)
	return err
}

func (e *Encoder) EncodeAll(toks []token.Token) error {
	for i := range toks {
		if err := e.Encode(&toks[i]); err != nil {
			return err
		}
	}
	return nil
}
