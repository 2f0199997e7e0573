package cli

import "errors"

// errRuntimeAddressRequired is returned by deliver when no bundler runtime
// address was configured.
var errRuntimeAddressRequired = errors.New("bundler runtime address is required: set --runtime or RUNTIME_ADDRESS")
