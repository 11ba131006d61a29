// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

// rgb maps lowercase colour names with spaces removed to colours.  The
// names and values are those of X11 rgb.txt.
var rgb = map[string]rgba{
	"black":        {0x00, 0x00, 0x00, 0xff},
	"white":        {0xff, 0xff, 0xff, 0xff},
	"transparent":  {0x00, 0x00, 0x00, 0x00},
	"gray":         {0xbe, 0xbe, 0xbe, 0xff},
	"grey":         {0xbe, 0xbe, 0xbe, 0xff},
	"darkgray":     {0xa9, 0xa9, 0xa9, 0xff},
	"darkgrey":     {0xa9, 0xa9, 0xa9, 0xff},
	"dimgray":      {0x69, 0x69, 0x69, 0xff},
	"dimgrey":      {0x69, 0x69, 0x69, 0xff},
	"lightgray":    {0xd3, 0xd3, 0xd3, 0xff},
	"lightgrey":    {0xd3, 0xd3, 0xd3, 0xff},
	"red":          {0xff, 0x00, 0x00, 0xff},
	"darkred":      {0x8b, 0x00, 0x00, 0xff},
	"green":        {0x00, 0xff, 0x00, 0xff},
	"darkgreen":    {0x00, 0x64, 0x00, 0xff},
	"forestgreen":  {0x22, 0x8b, 0x22, 0xff},
	"blue":         {0x00, 0x00, 0xff, 0xff},
	"darkblue":     {0x00, 0x00, 0x8b, 0xff},
	"navy":         {0x00, 0x00, 0x80, 0xff},
	"navyblue":     {0x00, 0x00, 0x80, 0xff},
	"midnightblue": {0x19, 0x19, 0x70, 0xff},
	"royalblue":    {0x41, 0x69, 0xe1, 0xff},
	"cyan":         {0x00, 0xff, 0xff, 0xff},
	"magenta":      {0xff, 0x00, 0xff, 0xff},
	"yellow":       {0xff, 0xff, 0x00, 0xff},
	"orange":       {0xff, 0xa5, 0x00, 0xff},
	"brown":        {0xa5, 0x2a, 0x2a, 0xff},
	"purple":       {0xa0, 0x20, 0xf0, 0xff},
	"ivory":        {0xff, 0xff, 0xf0, 0xff},
	"beige":        {0xf5, 0xf5, 0xdc, 0xff},
}
