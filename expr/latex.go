// SPDX-License-Identifier: MIT

package expr

import (
	"regexp"
	"strings"
)

var (
	// fracRe matches a fraction whose arguments contain no braces.
	fracRe = regexp.MustCompile(`\\frac\{([^{}]*)\}\{([^{}]*)\}`)

	// groupRe matches an innermost brace group and, if present, the token in
	// front of it that marks it as a fraction argument.
	groupRe = regexp.MustCompile(`(\\frac|\})?\{([^{}]*)\}`)

	// commandRe matches a backslash command name.
	commandRe = regexp.MustCompile(`\\([a-zA-Z]+)`)

	spaceRe = regexp.MustCompile(`\s+`)
)

// latexReplacer handles the fixed tokens: paired delimiters, products and
// LaTeX spacing commands.
var latexReplacer = strings.NewReplacer(
	`\left(`, "(",
	`\right)`, ")",
	`\left[`, "(",
	`\right]`, ")",
	`\cdot`, "*",
	`\times`, "*",
	`\,`, "",
	`\;`, "",
	`\!`, "",
	`\ `, "",
)

// latexToInfix rewrites LaTeX surface syntax into the plain infix grammar.
//
// Fractions are resolved innermost first: each round rewrites every \frac
// with brace-free arguments to "(a)/(b)", and when none is left it turns the
// innermost non-fraction groups (exponents, \sqrt arguments) into
// parentheses, which exposes the next layer of fractions. Known command
// names lose their backslash; unknown commands keep it and make the
// expression invalid at tokenising time.
func latexToInfix(s string) string {
	s = latexReplacer.Replace(s)

	for {
		if next := fracRe.ReplaceAllString(s, "($1)/($2)"); next != s {
			s = next
			continue
		}
		next := groupRe.ReplaceAllStringFunc(s, func(m string) string {
			if m[0] != '{' {
				return m
			}

			return "(" + m[1:len(m)-1] + ")"
		})
		if next == s {
			break
		}
		s = next
	}
	// Anything left is a group the rounds above had to keep, e.g. a stray
	// "}{" pair; plain parentheses are the best reading.
	s = strings.NewReplacer("{", "(", "}", ")").Replace(s)

	s = commandRe.ReplaceAllStringFunc(s, func(m string) string {
		name := m[1:]
		if _, ok := operators[name]; ok && operators[name].isFunc {
			return name
		}
		if _, ok := constants[name]; ok {
			return name
		}

		return m
	})

	return spaceRe.ReplaceAllString(s, "")
}
