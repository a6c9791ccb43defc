package cli

import (
	"strconv"
	"strings"

	"github.com/rkohler/quadsheet/pkg/errors"
)

// quadrantSpec is a parsed --qN flag value.
type quadrantSpec struct {
	file     string
	page     string
	rotation int
}

// parseQuadrantSpec parses a quadrant flag in the form file[:page[:rotation]].
// The page defaults to "last" and the rotation to 0. Rotation must parse as
// an integer number of degrees (counter-clockwise positive).
func parseQuadrantSpec(spec string) (quadrantSpec, error) {
	parts := strings.Split(spec, ":")
	if len(parts) > 3 {
		return quadrantSpec{}, errors.New(errors.ErrCodeInvalidInput,
			"invalid quadrant spec %q: expected file[:page[:rotation]]", spec)
	}
	if parts[0] == "" {
		return quadrantSpec{}, errors.New(errors.ErrCodeInvalidInput,
			"invalid quadrant spec %q: missing file", spec)
	}

	out := quadrantSpec{file: parts[0], page: "last"}
	if len(parts) > 1 && parts[1] != "" {
		out.page = parts[1]
	}
	if len(parts) > 2 {
		rotation, err := strconv.Atoi(parts[2])
		if err != nil {
			return quadrantSpec{}, errors.New(errors.ErrCodeInvalidInput,
				"invalid quadrant spec %q: rotation %q is not an integer", spec, parts[2])
		}
		out.rotation = rotation
	}
	return out, nil
}
