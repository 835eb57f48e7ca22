package server

import (
	"github.com/go-kratos/kratos/v2/encoding"
	"github.com/goccy/go-json"
)

// jsonCodec replaces the default "json" codec so request binding and
// responses both go through goccy/go-json.
type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return "json"
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
