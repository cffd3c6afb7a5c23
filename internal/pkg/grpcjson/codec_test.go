package grpcjson_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"

	"github.com/KirkDiggler/rpg-chargen/internal/pkg/grpcjson"
)

type message struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

func TestCodecIsRegistered(t *testing.T) {
	codec := encoding.GetCodec(grpcjson.Name)
	require.NotNil(t, codec)
	assert.Equal(t, "json", codec.Name())
}

func TestCodecRoundTrip(t *testing.T) {
	codec := grpcjson.Codec{}

	data, err := codec.Marshal(&message{Name: "力量", Value: 16})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"力量","value":16}`, string(data))

	var decoded message
	require.NoError(t, codec.Unmarshal(data, &decoded))
	assert.Equal(t, message{Name: "力量", Value: 16}, decoded)
}

func TestCodecRejectsMalformedInput(t *testing.T) {
	var decoded message
	assert.Error(t, grpcjson.Codec{}.Unmarshal([]byte("{"), &decoded))
}
