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
	"fmt"
	"sort"
	"sync"
)

// remoteRepo is the state a bare remote holds: a commit DAG and a set
// of branches, with no working tree or index of its own. Several
// Repo values sharing the same RemoteStore and url collaborate
// through the same remoteRepo, the way a team shares a real remote.
type remoteRepo struct {
	commits     map[string]*Commit
	commitOrder []string
	branches    map[string]string // name -> head hash, "" for unborn
}

func newRemoteRepo() *remoteRepo {
	return &remoteRepo{
		commits:  map[string]*Commit{},
		branches: map[string]string{},
	}
}

// RemoteStore is the process-wide table of bare remotes, keyed by the
// url a clone/push/pull/remote-add call was given. It exists so that
// two Repo values in the same process (two terminals, two lesson
// sessions) can observe each other's pushes, modelling collaboration
// without a real network.
type RemoteStore struct {
	mu      sync.Mutex
	remotes map[string]*remoteRepo
}

// NewRemoteStore returns an empty store.
func NewRemoteStore() *RemoteStore {
	return &RemoteStore{remotes: map[string]*remoteRepo{}}
}

func (s *RemoteStore) ensure(url string) *remoteRepo {
	s.mu.Lock()
	defer s.mu.Unlock()
	rr, ok := s.remotes[url]
	if !ok {
		rr = newRemoteRepo()
		s.remotes[url] = rr
	}
	return rr
}

func (s *RemoteStore) get(url string) (*remoteRepo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rr, ok := s.remotes[url]
	return rr, ok
}

// RemoteAdd registers url under name, failing if name is already bound.
func (r *Repo) RemoteAdd(name, url string) CommandResult {
	if err := r.requireInit(); err != nil {
		return failErr(128, err)
	}
	if name == "" || url == "" {
		return failErr(128, ErrUsage{Command: "remote add", Usage: "remote add <name> <url>"})
	}
	if _, exists := r.Remotes[name]; exists {
		return failErr(128, ErrAlreadyExists{Kind: "remote", Name: name})
	}

	r.Remotes[name] = url
	r.store.ensure(url)
	r.emit(Event{Kind: EventNone, Name: name, Remote: url})
	return ok()
}

// RemoteList prints configured remotes, either bare names or the
// verbose name/url/(fetch|push) form git remote -v uses.
func (r *Repo) RemoteList(verbose bool) CommandResult {
	if err := r.requireInit(); err != nil {
		return failErr(128, err)
	}

	names := make([]string, 0, len(r.Remotes))
	for name := range r.Remotes {
		names = append(names, name)
	}
	sort.Strings(names)

	var lines []string
	for _, name := range names {
		if verbose {
			url := r.Remotes[name]
			lines = append(lines, fmt.Sprintf("%s\t%s (fetch)", name, url))
			lines = append(lines, fmt.Sprintf("%s\t%s (push)", name, url))
		} else {
			lines = append(lines, name)
		}
	}
	return ok(lines...)
}

// remoteURL resolves a remote name to its url, defaulting to "origin".
func (r *Repo) remoteURL(name string) (string, error) {
	if name == "" {
		name = "origin"
	}
	url, ok := r.Remotes[name]
	if !ok {
		return "", ErrNotFound{Kind: "remote", Name: name}
	}
	return url, nil
}
