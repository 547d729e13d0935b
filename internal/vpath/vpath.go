/*
Copyright (c) 2025 Git Tutor Contributors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

// Package vpath implements path arithmetic for the engine's virtual
// filesystem: a slash-separated, always-absolute address space
// independent of the host OS. It is pure path.v1984 style string
// manipulation and deliberately stays on the standard library; no
// pack dependency models this any better than path.Join/path.Clean do.
package vpath

import "path"

// Root is the virtual filesystem's top-level directory.
const Root = "/"

// Join joins base and elem into an absolute, cleaned path.
func Join(base string, elem ...string) string {
	parts := append([]string{base}, elem...)
	return Clean(path.Join(parts...))
}

// Clean normalizes p to an absolute, slash-separated path with no
// trailing slash (except the root itself).
func Clean(p string) string {
	if p == "" {
		return Root
	}
	if p[0] != '/' {
		p = "/" + p
	}
	cleaned := path.Clean(p)
	if cleaned == "." {
		return Root
	}
	return cleaned
}

// Dir returns p's parent directory.
func Dir(p string) string {
	return Clean(path.Dir(Clean(p)))
}

// Base returns the final element of p.
func Base(p string) string {
	return path.Base(Clean(p))
}

// IsRoot reports whether p is the virtual filesystem root.
func IsRoot(p string) bool {
	return Clean(p) == Root
}
