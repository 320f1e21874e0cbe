package model

import "errors"

// Same collapsing as the blog domain: a broken case-study file is
// indistinguishable from a missing one.
var ErrProjectNotFound = errors.New("project not found")
