package playoffs

import "errors"

var errNoUpstream = errors.New("playoffs: no upstream configured")
