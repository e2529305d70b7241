// Package api defines the wire contract of the sampleapp users service:
// request and response messages, the gRPC service descriptor and a client.
//
// There are no .proto files. The types here are plain Go structs that stand
// in for protoc-generated stubs, and the service descriptor and client are
// written by hand in the shape protoc-gen-go-grpc would emit. Messages travel
// as JSON using the codec registered here under the "json" content-subtype.
package api

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// CodecName is the gRPC content-subtype the service speaks.
const CodecName = "json"

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
func (jsonCodec) Name() string                       { return CodecName }

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
