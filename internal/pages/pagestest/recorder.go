// Package pagestest provides an in-memory pages.Actions for unit tests
package pagestest

import (
	"fmt"
	"sync"

	"github.com/themizzi/saucecheck/internal/locators"
	"github.com/themizzi/saucecheck/internal/pages"
)

// Call is one recorded driver primitive
type Call struct {
	Scope  string
	Method string
	Target string
	Arg    string
}

// Key identifies a call for FailOn, ignoring scope and argument
func (c Call) Key() string {
	return c.Method + " " + c.Target
}

// String renders the call as "[scope ]Method Target[=Arg]"
func (c Call) String() string {
	s := c.Key()
	if c.Arg != "" {
		s += "=" + c.Arg
	}
	if c.Scope != "" {
		s = c.Scope + " " + s
	}
	return s
}

// Recorder records every call made through it. Scoped recorders returned by
// Within and Nth share the parent's log and script.
type Recorder struct {
	// FailOn makes every call with a matching Key return the error
	FailOn map[string]error
	// Texts answers Text by selector name
	Texts map[string]string
	// Counts answers Count by selector name
	Counts map[string]int

	root  *Recorder
	scope string

	mu    sync.Mutex
	calls []Call
}

var _ pages.Actions = (*Recorder)(nil)

func (r *Recorder) top() *Recorder {
	if r.root != nil {
		return r.root
	}
	return r
}

func (r *Recorder) record(method, target, arg string) error {
	top := r.top()
	top.mu.Lock()
	defer top.mu.Unlock()

	call := Call{Scope: r.scope, Method: method, Target: target, Arg: arg}
	top.calls = append(top.calls, call)
	if err, ok := top.FailOn[call.Key()]; ok {
		return err
	}
	return nil
}

// Calls returns a copy of the log
func (r *Recorder) Calls() []Call {
	top := r.top()
	top.mu.Lock()
	defer top.mu.Unlock()
	return append([]Call(nil), top.calls...)
}

// Strings returns the log rendered with Call.String
func (r *Recorder) Strings() []string {
	calls := r.Calls()
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = c.String()
	}
	return out
}

// Goto records the navigation
func (r *Recorder) Goto(url string) error {
	return r.record("Goto", url, "")
}

// Fill records the value typed
func (r *Recorder) Fill(sel locators.Selector, value string) error {
	return r.record("Fill", sel.Name(), value)
}

// Click records the click
func (r *Recorder) Click(sel locators.Selector) error {
	return r.record("Click", sel.Name(), "")
}

// Text records the read and answers from Texts
func (r *Recorder) Text(sel locators.Selector) (string, error) {
	if err := r.record("Text", sel.Name(), ""); err != nil {
		return "", err
	}
	return r.top().Texts[sel.Name()], nil
}

// Count records the read and answers from Counts
func (r *Recorder) Count(sel locators.Selector) (int, error) {
	if err := r.record("Count", sel.Name(), ""); err != nil {
		return 0, err
	}
	return r.top().Counts[sel.Name()], nil
}

// ExpectVisible records the check
func (r *Recorder) ExpectVisible(sel locators.Selector) error {
	return r.record("ExpectVisible", sel.Name(), "")
}

// ExpectText records the check and its expected text
func (r *Recorder) ExpectText(sel locators.Selector, want string) error {
	return r.record("ExpectText", sel.Name(), want)
}

// ExpectContainsText records the check and its expected fragment
func (r *Recorder) ExpectContainsText(sel locators.Selector, want string) error {
	return r.record("ExpectContainsText", sel.Name(), want)
}

// ExpectValue records the check and its expected value
func (r *Recorder) ExpectValue(sel locators.Selector, want string) error {
	return r.record("ExpectValue", sel.Name(), want)
}

// ExpectCount records the check and its expected count
func (r *Recorder) ExpectCount(sel locators.Selector, want int) error {
	return r.record("ExpectCount", sel.Name(), fmt.Sprint(want))
}

// ExpectURL records the check against url
func (r *Recorder) ExpectURL(url string) error {
	return r.record("ExpectURL", url, "")
}

// Within returns a recorder scoped to container{has}
func (r *Recorder) Within(container, has locators.Selector) pages.Actions {
	return r.child(fmt.Sprintf("%s{%s}", container.Name(), has.Name()))
}

// Nth returns a recorder scoped to sel[i]
func (r *Recorder) Nth(sel locators.Selector, i int) pages.Actions {
	return r.child(fmt.Sprintf("%s[%d]", sel.Name(), i))
}

func (r *Recorder) child(scope string) *Recorder {
	if r.scope != "" {
		scope = r.scope + ">" + scope
	}
	return &Recorder{root: r.top(), scope: scope}
}
