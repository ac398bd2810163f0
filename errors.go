package client

import sdkerrors "github.com/unbabel/tapi/client/internal/errors"

// ErrInvalidArgument is returned, before any request is sent, for an
// unrecognised job status or dispatch verb.
var ErrInvalidArgument = sdkerrors.ErrInvalidArgument

// ArgumentError carries the rejected value and the accepted set.
type ArgumentError = sdkerrors.ArgumentError

// IsInvalidArgument reports whether err is a local validation failure.
func IsInvalidArgument(err error) bool { return sdkerrors.IsInvalidArgument(err) }
