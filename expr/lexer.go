// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/blochsphere/number"
)

type tokenKind uint8

const (
	tokNumber tokenKind = iota // literal or named constant; value is set
	tokVariable
	tokOperator // binary operator or neg; op is set
	tokFunction // op is set
	tokLParen
	tokRParen
)

type token struct {
	kind  tokenKind
	text  string
	pos   int // byte offset in the infix string
	value number.Value
	op    *operator
}

// endsOperand reports whether t can be the last token of an operand.
func (t token) endsOperand() bool {
	return t.kind == tokNumber || t.kind == tokVariable || t.kind == tokRParen
}

// startsOperand reports whether t can be the first token of an operand.
func (t token) startsOperand() bool {
	return t.kind == tokNumber || t.kind == tokVariable || t.kind == tokFunction || t.kind == tokLParen
}

func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }

// tokenize splits a whitespace-free infix string into raw tokens.
// Signs are left as binary "+"/"-" operators; parse decides their role.
func tokenize(s string) ([]token, error) {
	var out []token
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case isDigit(c) || c == '.':
			j := i
			for j < len(s) && (isDigit(s[j]) || s[j] == '.') {
				j++
			}
			x, err := strconv.ParseFloat(s[i:j], 64)
			if err != nil {
				return nil, fmt.Errorf("malformed number %q at %d", s[i:j], i)
			}
			out = append(out, token{kind: tokNumber, text: s[i:j], pos: i, value: number.Real(x)})
			i = j

		case isLetter(c):
			j := i
			for j < len(s) && isLetter(s[j]) {
				j++
			}
			out = append(out, splitIdentifier(s[i:j], i)...)
			i = j

		case c == '^':
			name := "^"
			if i+1 < len(s) && (s[i+1] == '+' || s[i+1] == '-') {
				name = s[i : i+2]
			}
			out = append(out, token{kind: tokOperator, text: name, pos: i, op: operators[name]})
			i += len(name)

		case strings.IndexByte("+-*/", c) >= 0:
			out = append(out, token{kind: tokOperator, text: s[i : i+1], pos: i, op: operators[s[i:i+1]]})
			i++

		case c == '(':
			out = append(out, token{kind: tokLParen, text: "(", pos: i})
			i++

		case c == ')':
			out = append(out, token{kind: tokRParen, text: ")", pos: i})
			i++

		default:
			return nil, fmt.Errorf("unexpected character %q at %d", c, i)
		}
	}

	return out, nil
}

// splitIdentifier breaks a run of letters into known names, longest match
// first; any other letter is the free variable.
func splitIdentifier(run string, pos int) []token {
	var out []token
	for k := 0; k < len(run); {
		matched := ""
		for _, name := range names {
			if strings.HasPrefix(run[k:], name) {
				matched = name
				break
			}
		}

		c, isConst := constants[matched]
		switch {
		case matched == "":
			out = append(out, token{kind: tokVariable, text: run[k : k+1], pos: pos + k})
			k++
		case isConst:
			out = append(out, token{kind: tokNumber, text: matched, pos: pos + k, value: c})
			k += len(matched)
		default:
			out = append(out, token{kind: tokFunction, text: matched, pos: pos + k, op: operators[matched]})
			k += len(matched)
		}
	}

	return out
}
