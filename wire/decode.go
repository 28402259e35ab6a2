package wire

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/signadot/csstok/format"
	"github.com/signadot/csstok/token"
)

type Decoder struct {
	dec interface{ Decode(any) error }
}

// NewDecoder returns a Decoder for records in f. The text format
// cannot be decoded.
func NewDecoder(r io.Reader, f format.Format) (*Decoder, error) {
	switch f {
	case format.JSONFormat:
		return &Decoder{dec: json.NewDecoder(r)}, nil
	case format.YAMLFormat:
		return &Decoder{dec: yaml.NewDecoder(r)}, nil
	}
	return nil, fmt.Errorf("%w: decoding %s", ErrUnsupported, f)
}

// Decode returns the next token, or io.EOF at the end of the stream.
func (d *Decoder) Decode() (token.Token, error) {
	rec := &Record{}
	if err := d.dec.Decode(rec); err != nil {
		return token.Token{}, err
	}
	return rec.Token()
}

func (d *Decoder) DecodeAll() ([]token.Token, error) {
	var res []token.Token
	for {
		tok, err := d.Decode()
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
		res = append(res, tok)
	}
}
