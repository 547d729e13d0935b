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
	"strings"

	"github.com/purpleclay/chomp"
)

// tokenize splits a single command line into argv-style tokens,
// honoring single and double quoted spans the way a shell would. It
// is built from chomp combinators rather than strings.Fields so a
// quoted argument ("commit message with spaces") survives intact.
func tokenize(line string) ([]string, error) {
	rest := strings.TrimSpace(line)
	var tokens []string

	skipSpace := chomp.While(isSpace)
	word := chomp.Until(" \t")
	quoted := chomp.Delimited(chomp.Tag(`"`), chomp.Until(`"`), chomp.Tag(`"`))
	single := chomp.Delimited(chomp.Tag("'"), chomp.Until("'"), chomp.Tag("'"))

	for rest != "" {
		if next, _, err := skipSpace(rest); err == nil {
			rest = next
		}
		if rest == "" {
			break
		}

		var tok string
		var err error
		switch rest[0] {
		case '"':
			rest, tok, err = quoted(rest)
		case '\'':
			rest, tok, err = single(rest)
		default:
			rest, tok, err = word(rest)
			if err != nil {
				tok = rest
				rest = ""
				err = nil
			}
		}
		if err != nil {
			return nil, err
		}
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}

	return tokens, nil
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

// Dispatch parses a single command line and runs the matching git
// subcommand or virtual shell command against r, the single entry
// point every frontend (REPL, HTTP handler, lesson validator) drives
// the engine through.
func (r *Repo) Dispatch(line string) CommandResult {
	if redirected, ok := parseRedirect(line); ok {
		return r.dispatchRedirect(redirected)
	}

	args, err := tokenize(line)
	if err != nil {
		return failErr(2, err)
	}
	if len(args) == 0 {
		return ok()
	}

	head, tail := args[0], args[1:]
	if head == "git" {
		return r.dispatchGit(tail)
	}
	return r.dispatchShell(head, tail)
}

func (r *Repo) dispatchGit(args []string) CommandResult {
	if len(args) == 0 {
		return failErr(128, ErrUsage{Command: "git", Usage: "git <command> [<args>]"})
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "init":
		return r.Init()
	case "status":
		return r.Status()
	case "add":
		return r.Add(rest...)
	case "commit":
		msg, allowEmpty := parseCommitArgs(rest)
		return r.Commit(msg, allowEmpty)
	case "log":
		return r.Log(containsFlag(rest, "--oneline"))
	case "branch":
		if len(rest) == 0 {
			return r.BranchList()
		}
		return r.BranchCreate(rest[0])
	case "checkout":
		create := containsFlag(rest, "-b")
		name := firstNonFlag(rest)
		return r.Checkout(name, create)
	case "merge":
		if len(rest) == 0 {
			return failErr(128, ErrUsage{Command: "merge", Usage: "merge <branch>"})
		}
		return r.Merge(rest[0])
	case "stash":
		if len(rest) > 0 && rest[0] == "pop" {
			return r.StashPop()
		}
		return r.Stash()
	case "reset":
		ref := "HEAD"
		if name := firstNonFlag(rest); name != "" {
			ref = name
		}
		return r.ResetHard(ref)
	case "revert":
		if len(rest) == 0 {
			return failErr(128, ErrUsage{Command: "revert", Usage: "revert <commit>"})
		}
		return r.Revert(rest[0])
	case "remote":
		return r.dispatchRemote(rest)
	case "fetch":
		return r.Fetch(firstNonFlag(rest))
	case "pull":
		remote, branch := twoPositional(rest)
		return r.Pull(remote, branch)
	case "push":
		setUp := containsFlag(rest, "-u")
		remote, branch := twoPositional(rest)
		return r.Push(remote, branch, setUp)
	case "clone":
		if len(rest) == 0 {
			return failErr(128, ErrUsage{Command: "clone", Usage: "clone <url>"})
		}
		return r.Clone(rest[0])
	default:
		return failErr(1, ErrUnimplemented)
	}
}

func (r *Repo) dispatchRemote(args []string) CommandResult {
	if len(args) == 0 {
		return r.RemoteList(false)
	}
	switch args[0] {
	case "-v":
		return r.RemoteList(true)
	case "add":
		if len(args) < 3 {
			return failErr(128, ErrUsage{Command: "remote add", Usage: "remote add <name> <url>"})
		}
		return r.RemoteAdd(args[1], args[2])
	default:
		return failErr(1, ErrUnimplemented)
	}
}

func (r *Repo) dispatchShell(cmd string, args []string) CommandResult {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	switch cmd {
	case "pwd":
		return r.Pwd()
	case "ls":
		return r.Ls(arg)
	case "cd":
		return r.Cd(arg)
	case "mkdir":
		return r.Mkdir(strings.TrimPrefix(arg, "-p "))
	case "touch":
		return r.Touch(arg)
	case "cat":
		return r.Cat(arg)
	case "rm":
		return r.Rm(arg)
	default:
		return failErr(127, ErrNotFound{Kind: "command", Name: cmd})
	}
}

func parseCommitArgs(args []string) (msg string, allowEmpty bool) {
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-m", "--message":
			if i+1 < len(args) {
				msg = args[i+1]
				i++
			}
		case "--allow-empty":
			allowEmpty = true
		}
	}
	return msg, allowEmpty
}

func containsFlag(args []string, flag string) bool {
	for _, a := range args {
		if a == flag {
			return true
		}
	}
	return false
}

func firstNonFlag(args []string) string {
	for _, a := range args {
		if !strings.HasPrefix(a, "-") {
			return a
		}
	}
	return ""
}

func twoPositional(args []string) (first, second string) {
	var positional []string
	for _, a := range args {
		if !strings.HasPrefix(a, "-") {
			positional = append(positional, a)
		}
	}
	if len(positional) > 0 {
		first = positional[0]
	}
	if len(positional) > 1 {
		second = positional[1]
	}
	return first, second
}
