package dedup

import "errors"

// ErrAllAssembliesEmpty indicates every assembly passed to Dedup had zero
// voxels, leaving no reference point to canonicalize against.
var ErrAllAssembliesEmpty = errors.New("dedup: no assembly has any voxels to establish a reference point")
