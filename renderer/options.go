// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package renderer

import (
	"fmt"

	"github.com/spf13/afero"
)

type Option func(r *Renderer) error

// WithOutput sets the filesystem and directory that pages are written to.
func WithOutput(fs afero.Fs, root string) Option {
	return func(r *Renderer) error {
		if fs == nil {
			return fmt.Errorf("output filesystem is nil")
		}
		r.out, r.root = fs, root
		return nil
	}
}

// WithSprites sets the filesystem that sprite paths are read from.
func WithSprites(fs afero.Fs) Option {
	return func(r *Renderer) error {
		r.sprites = fs
		return nil
	}
}

// WithSiteName sets the name shown in page headings.
func WithSiteName(name string) Option {
	return func(r *Renderer) error {
		r.site = name
		return nil
	}
}

// WithStylesheet replaces the built-in stylesheet.
func WithStylesheet(css []byte) Option {
	return func(r *Renderer) error {
		r.css = css
		return nil
	}
}
