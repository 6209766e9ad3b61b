package piece

import "errors"

// Sentinel errors for piece package operations.
var (
	// ErrEmptyVoxelSet indicates a piece was constructed with zero voxels.
	ErrEmptyVoxelSet = errors.New("piece: voxel set must not be empty")

	// ErrOptionalOnNonGoal indicates the "optional" attribute was set on a
	// piece that is not the goal shape. Nothing in this package returns it;
	// assemble's validation reports that condition with its own
	// assemble.ErrOptionalOnNonGoal.
	ErrOptionalOnNonGoal = errors.New("piece: optional attribute is only valid on the goal piece")
)

// OptionalAttribute is the sole attribute name the core interprets.
const OptionalAttribute = "optional"
