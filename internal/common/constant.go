package common

// RememberTokenHeaderName is the gRPC metadata key used to carry the
// remember token on outbound requests.
const RememberTokenHeaderName = "remember_token"
