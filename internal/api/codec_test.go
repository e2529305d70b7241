package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
)

func TestJSONCodecIsRegistered(t *testing.T) {
	c := encoding.GetCodec(CodecName)
	require.NotNil(t, c)
	assert.Equal(t, CodecName, c.Name())

	data, err := c.Marshal(&LoginRequest{Email: "example@example.com", Password: "foobar"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"email":"example@example.com","password":"foobar"}`, string(data))

	var out LoginRequest
	require.NoError(t, c.Unmarshal(data, &out))
	assert.Equal(t, "example@example.com", out.Email)
}

func TestServiceDescMethodsMatchNames(t *testing.T) {
	want := map[string]string{
		"Signup":         MethodSignup,
		"Login":          MethodLogin,
		"Whoami":         MethodWhoami,
		"Show":           MethodShow,
		"ChangePassword": MethodChangePassword,
		"Ping":           MethodPing,
	}
	require.Len(t, UsersServiceDesc.Methods, len(want))
	for _, m := range UsersServiceDesc.Methods {
		full, ok := want[m.MethodName]
		require.True(t, ok, m.MethodName)
		assert.Equal(t, "/"+ServiceName+"/"+m.MethodName, full)
	}
}
