// Copyright (C) 2022-2023, NamesVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package codec imports the default codec manager for stored records.
package codec

import (
	"github.com/ava-labs/avalanchego/codec"
	"github.com/ava-labs/avalanchego/codec/linearcodec"
)

const (
	// codecVersion is the current default codec version
	codecVersion = 0
)

var (
	codecManager codec.Manager
	c            linearcodec.Codec
)

func init() {
	c = linearcodec.NewDefault()
	codecManager = codec.NewDefaultManager()

	if err := codecManager.RegisterCodec(codecVersion, c); err != nil {
		panic(err)
	}
}

// Manager returns the initialized codec manager.
func Manager() codec.Manager {
	return codecManager
}

func Marshal(source interface{}) ([]byte, error) {
	return codecManager.Marshal(codecVersion, source)
}

func Unmarshal(source []byte, destination interface{}) (uint16, error) {
	return codecManager.Unmarshal(source, destination)
}
