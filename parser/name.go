// Copyright (C) 2022-2023, NamesVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package parser defines name format checks.
package parser

import (
	"errors"
	"regexp"
)

const (
	MaxNameSize = 256
)

var (
	ErrInvalidName = errors.New("names must be ^[a-z0-9]{1,256}$")

	reg *regexp.Regexp
)

func init() {
	reg = regexp.MustCompile("^[a-z0-9]{1,256}$")
}

// CheckName returns an error if the name format is invalid. Minimum
// length requirements beyond a single byte are policy, not format.
func CheckName(name string) error {
	if !reg.MatchString(name) {
		return ErrInvalidName
	}
	return nil
}
