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

// Package seed pre-populates the process-wide remote store with the
// single known URL the clone-based lessons expect to find two
// commits already waiting on, the way a classroom exercise ships with
// a fixture repository instead of an empty one.
package seed

import git "github.com/git-tutor/tutor"

// RemoteURL is the single known URL lessons 5 and 6 clone from.
const RemoteURL = "https://git-tutor.example/seed/starter.git"

// Populate ensures store holds the seed remote, building it from
// scratch the first time and leaving it untouched on subsequent
// calls (so restarting the server against a persisted store never
// duplicates the starter history).
func Populate(store *git.RemoteStore) {
	if _, ok := store.Export()[RemoteURL]; ok {
		return
	}

	builder := git.NewRepo(store)
	builder.Init()
	builder.Write("README.md", "# Starter Project\n\nWelcome to the Git Tutor starter repository.")
	builder.Dispatch("git add README.md")
	builder.Dispatch(`git commit -m "Initial commit"`)

	builder.Write("CONTRIBUTING.md", "# Contributing\n\nPlease open a pull request.")
	builder.Dispatch("git add CONTRIBUTING.md")
	builder.Dispatch(`git commit -m "Add contributing guide"`)

	builder.Dispatch("git remote add origin " + RemoteURL)
	builder.Dispatch("git push origin main")
}
