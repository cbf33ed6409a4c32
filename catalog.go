//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package spinfetch

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
)

// DefaultBaseURL is the location of the images listed in DefaultCatalog.
const DefaultBaseURL = "https://www.fluentpython.com/data/img/"

// ErrEmptyCatalog is returned when picking from a catalog with no entries.
var ErrEmptyCatalog = errors.New("empty catalog")

// Image is a downloadable resource: its size in bytes and its path relative
// to a base URL.
type Image struct {
	Size int64  `yaml:"size"`
	Path string `yaml:"path"`
}

// Catalog is a list of images
type Catalog []Image

// DefaultCatalog lists the images available under DefaultBaseURL.
var DefaultCatalog = Catalog{
	{Size: 161_277, Path: "thumbs/cathedral.jpg"},
	{Size: 1_045_816, Path: "medium/lighthouse.jpg"},
	{Size: 3_212_009, Path: "large/harbour.jpg"},
	{Size: 7_007_543, Path: "huge/glacier.jpg"},
	{Size: 12_632_150, Path: "huge/nebula.tif"},
}

// PickBySize returns the smallest image that is at least target bytes
// long. If no image is that large the biggest one is returned.
func (c Catalog) PickBySize(target int64) (Image, error) {
	if len(c) == 0 {
		return Image{}, ErrEmptyCatalog
	}
	sorted := append(Catalog(nil), c...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Size < sorted[j].Size })
	i := sort.Search(len(sorted), func(i int) bool { return sorted[i].Size >= target })
	if i == len(sorted) {
		i = len(sorted) - 1
	}
	return sorted[i], nil
}

// ResolveURL resolves path against base, the way a browser resolves a
// relative link.
func ResolveURL(base, path string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parsing base URL: %w", err)
	}
	if !b.IsAbs() {
		return "", fmt.Errorf("base URL %q is not absolute", base)
	}
	ref, err := url.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parsing image path: %w", err)
	}
	return b.ResolveReference(ref).String(), nil
}
