package domain

import "strconv"

// Version is the optimistic concurrency counter of an entity.
// Valid versions start at 1.
type Version struct {
	value int
}

// FirstVersion returns the version every newly stored entity gets.
func FirstVersion() Version {
	return Version{value: 1}
}

// NewVersion returns the version with the given value, which must be positive.
func NewVersion(v int) (Version, error) {
	if v < 1 {
		return Version{}, ErrInvalidVersion
	}

	return Version{value: v}, nil
}

// Increment returns the next version.
func (v Version) Increment() Version {
	return Version{value: v.value + 1}
}

// Value returns the numeric version.
func (v Version) Value() int {
	return v.value
}

// IsNextOf reports whether v directly follows prev.
func (v Version) IsNextOf(prev Version) bool {
	return v.value == prev.value+1
}

// MarshalJSON encodes the version as a plain number.
func (v Version) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(v.value)), nil
}

// UnmarshalJSON decodes a plain positive number.
func (v *Version) UnmarshalJSON(data []byte) error {
	n, err := strconv.Atoi(string(data))
	if err != nil {
		return ErrInvalidVersion
	}

	parsed, err := NewVersion(n)
	if err != nil {
		return err
	}

	*v = parsed

	return nil
}
