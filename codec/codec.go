package codec

import (
	"io"

	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
)

func Decode[T any](bz []byte) (T, error) {
	comp := new(T)
	err := json.Unmarshal(bz, comp)
	if err != nil {
		return *comp, eris.Wrap(err, "")
	}
	return *comp, nil
}

func Encode(comp any) ([]byte, error) {
	bz, err := json.Marshal(comp)
	if err != nil {
		return nil, eris.Wrap(err, "")
	}
	return bz, nil
}

// DecodeFrom decodes a single value of T from r. The encoding depends only on
// the logical field values of T, never on memory layout.
func DecodeFrom[T any](r io.Reader) (T, error) {
	comp := new(T)
	if err := json.NewDecoder(r).Decode(comp); err != nil {
		return *comp, eris.Wrap(err, "")
	}
	return *comp, nil
}

// EncodeTo writes the encoded form of comp to w.
func EncodeTo(comp any, w io.Writer) error {
	if err := json.NewEncoder(w).Encode(comp); err != nil {
		return eris.Wrap(err, "")
	}
	return nil
}
