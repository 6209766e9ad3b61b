package grid

import "errors"

// Sentinel errors for grid package operations.
var (
	// ErrForeignVoxel indicates a Voxel not produced by this Grid was supplied.
	ErrForeignVoxel = errors.New("grid: voxel does not belong to this grid")

	// ErrForeignTransform indicates a Transform not produced by this Grid was supplied.
	ErrForeignTransform = errors.New("grid: transform does not belong to this grid")

	// ErrEmptyVoxelSet indicates an operation required at least one voxel but received none.
	ErrEmptyVoxelSet = errors.New("grid: voxel set must not be empty")

	// ErrParseVoxel indicates a voxel string did not match this grid's syntax.
	ErrParseVoxel = errors.New("grid: malformed voxel string")

	// ErrParseTransform indicates a transform string did not match this grid's syntax.
	ErrParseTransform = errors.New("grid: malformed transform string")
)
