package model

import "errors"

// ErrPostNotFound covers both a missing file and a file that failed
// validation. Callers cannot distinguish "never existed" from "exists
// but invalid"; the difference only shows up in server-side logs.
var ErrPostNotFound = errors.New("post not found")
