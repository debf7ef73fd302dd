// SPDX-License-Identifier: MIT

package config

import "errors"

var (
	// ErrInvalid marks a configuration value outside its allowed set.
	ErrInvalid = errors.New("config: invalid value")

	// ErrParse marks a file that is not valid TOML for this schema.
	ErrParse = errors.New("config: parse error")
)
