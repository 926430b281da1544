// Package common contains shared constants and sentinel errors used across
// teamkeeper components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// SessionKeysObjectType is the object type carried by every decrypted
// session keys bundle.
const SessionKeysObjectType = "PASSBOLT_SESSION_KEYS"
