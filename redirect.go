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

	"mvdan.cc/sh/v3/syntax"
)

// redirectedWrite is the shape `echo "text" > file` or `>> file`
// takes once parsed: the literal text written and the target path,
// with append distinguishing > from >>.
type redirectedWrite struct {
	text   string
	target string
	append bool
}

// parseRedirect recognizes an `echo <text> > <file>` or `>> <file>`
// line using a real shell parser rather than hand-rolled splitting on
// ">", so quoting and escaping behave the way a shell's would. Lines
// with no output redirection are left to the plain tokenizer.
func parseRedirect(line string) (redirectedWrite, bool) {
	parser := syntax.NewParser()
	file, err := parser.Parse(strings.NewReader(line), "")
	if err != nil || len(file.Stmts) == 0 {
		return redirectedWrite{}, false
	}

	call, ok := file.Stmts[0].Cmd.(*syntax.CallExpr)
	if !ok || len(call.Args) == 0 {
		return redirectedWrite{}, false
	}
	if literalWord(call.Args[0]) != "echo" {
		return redirectedWrite{}, false
	}

	var target string
	var isAppend bool
	for _, r := range call.Redirs {
		switch r.Op {
		case syntax.RdrOut:
			target = literalWord(r.Word)
		case syntax.AppOut:
			target = literalWord(r.Word)
			isAppend = true
		}
	}
	if target == "" {
		return redirectedWrite{}, false
	}

	var words []string
	for _, w := range call.Args[1:] {
		words = append(words, literalWord(w))
	}

	return redirectedWrite{text: strings.Join(words, " "), target: target, append: isAppend}, true
}

// literalWord renders a syntax.Word's literal parts, unwrapping single
// and double quoting. Parameter expansion and command substitution
// are not supported; the tutorial's shell subset never needs them.
func literalWord(w *syntax.Word) string {
	if w == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range w.Parts {
		switch p := part.(type) {
		case *syntax.Lit:
			b.WriteString(p.Value)
		case *syntax.SglQuoted:
			b.WriteString(p.Value)
		case *syntax.DblQuoted:
			for _, inner := range p.Parts {
				if lit, ok := inner.(*syntax.Lit); ok {
					b.WriteString(lit.Value)
				}
			}
		}
	}
	return b.String()
}

func (r *Repo) dispatchRedirect(w redirectedWrite) CommandResult {
	if w.append {
		return r.Append(w.target, w.text)
	}
	return r.Write(w.target, w.text)
}
