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

package git

import (
	"sort"
	"strings"

	"github.com/git-tutor/tutor/internal/vpath"
)

// Pwd prints the current working directory.
func (r *Repo) Pwd() CommandResult {
	return ok(r.Cwd)
}

// Ls lists the immediate children of dir (the working directory by
// default): subdirectories first, then tracked or untracked files,
// both sorted by name.
func (r *Repo) Ls(dir string) CommandResult {
	target := r.Cwd
	if dir != "" {
		target = vpath.Join(r.Cwd, dir)
	}
	if !r.Dirs[target] {
		return failErr(1, ErrNotFound{Kind: "directory", Name: target})
	}

	childDirs := map[string]bool{}
	for d := range r.Dirs {
		if d == target {
			continue
		}
		if vpath.Dir(d) == target {
			childDirs[vpath.Base(d)] = true
		}
	}

	childFiles := map[string]bool{}
	for p := range r.WorkingFiles {
		if vpath.Dir(p) == target {
			childFiles[vpath.Base(p)] = true
		}
	}

	var dirs, files []string
	for d := range childDirs {
		dirs = append(dirs, d+"/")
	}
	for f := range childFiles {
		files = append(files, f)
	}
	sort.Strings(dirs)
	sort.Strings(files)

	return ok(append(dirs, files...)...)
}

// Cd changes the current working directory, failing if the target
// directory does not exist.
func (r *Repo) Cd(dir string) CommandResult {
	if dir == "" {
		dir = "/"
	}
	target := vpath.Join(r.Cwd, dir)
	if !r.Dirs[target] {
		return failErr(1, ErrNotFound{Kind: "directory", Name: target})
	}
	r.Cwd = target
	return ok()
}

// Mkdir creates dir (relative to Cwd) and every missing ancestor,
// matching `mkdir -p`.
func (r *Repo) Mkdir(dir string) CommandResult {
	if dir == "" {
		return failErr(1, ErrUsage{Command: "mkdir", Usage: "mkdir <dir>"})
	}
	target := vpath.Join(r.Cwd, dir)
	for d := target; !r.Dirs[d]; d = vpath.Dir(d) {
		r.Dirs[d] = true
		if vpath.IsRoot(d) {
			break
		}
	}
	r.emit(Event{Kind: EventFsMkdir, Path: target})
	return ok()
}

// Touch creates an empty file at path if it does not already exist,
// and updates its modification event either way.
func (r *Repo) Touch(file string) CommandResult {
	if file == "" {
		return failErr(1, ErrUsage{Command: "touch", Usage: "touch <file>"})
	}
	target := vpath.Join(r.Cwd, file)
	r.Dirs[vpath.Dir(target)] = true
	if _, exists := r.WorkingFiles[target]; !exists {
		r.WorkingFiles[target] = ""
	}
	r.emit(Event{Kind: EventFsTouch, Path: target})
	return ok()
}

// Write overwrites (or creates) a file's content, the effect an
// `echo "..." > file` redirection has on the working tree.
func (r *Repo) Write(file, content string) CommandResult {
	if file == "" {
		return failErr(1, ErrUsage{Command: "write", Usage: "echo <text> > <file>"})
	}
	target := vpath.Join(r.Cwd, file)
	r.Dirs[vpath.Dir(target)] = true
	r.WorkingFiles[target] = content
	r.emit(Event{Kind: EventFsWrite, Path: target})
	return ok()
}

// Append adds content as a new line to the end of file, the effect an
// `echo "..." >> file` redirection has.
func (r *Repo) Append(file, content string) CommandResult {
	target := vpath.Join(r.Cwd, file)
	existing, has := r.WorkingFiles[target]
	if has && existing != "" {
		content = existing + "\n" + content
	}
	return r.Write(file, content)
}

// Cat returns a file's content, line-split the way stdout lines are
// always returned from this engine.
func (r *Repo) Cat(file string) CommandResult {
	target := vpath.Join(r.Cwd, file)
	content, exists := r.WorkingFiles[target]
	if !exists {
		return failErr(1, ErrNotFound{Kind: "file", Name: target})
	}
	if content == "" {
		return ok()
	}
	return ok(strings.Split(content, "\n")...)
}

// Rm removes a file from the working tree. It never touches the
// index; a subsequent `git add` (or `git status`) is what surfaces
// the deletion.
func (r *Repo) Rm(file string) CommandResult {
	target := vpath.Join(r.Cwd, file)
	if _, exists := r.WorkingFiles[target]; !exists {
		return failErr(1, ErrNotFound{Kind: "file", Name: target})
	}
	delete(r.WorkingFiles, target)
	r.emit(Event{Kind: EventFsRemove, Path: target})
	return ok()
}
