// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.

package phishing

// Result pairs a verdict with the URL text it was computed for.
type Result struct {
	URL     string
	Verdict Verdict
}

// Checker is the screen-local state of the phishing screen: the URL being
// typed and the verdict of the last scan. The zero value is ready to use.
type Checker struct {
	url     string
	verdict Verdict
}

// NewChecker returns an empty checker with an Unknown verdict.
func NewChecker() *Checker {
	return &Checker{}
}

// URL returns the current URL text.
func (c *Checker) URL() string { return c.url }

// Verdict returns the verdict of the last scan, or Unknown after an edit.
func (c *Checker) Verdict() Verdict { return c.verdict }

// Result returns the current URL and verdict.
func (c *Checker) Result() Result {
	return Result{URL: c.url, Verdict: c.verdict}
}

// Edit replaces the URL text and always resets the verdict to Unknown.
func (c *Checker) Edit(url string) {
	c.url = url
	c.verdict = Unknown
}

// Scan checks the current URL text and stores the verdict.
func (c *Checker) Scan() Result {
	c.verdict = Check(c.url)
	return c.Result()
}

// Reset drops the URL text and the verdict.
func (c *Checker) Reset() {
	c.url, c.verdict = "", Unknown
}
