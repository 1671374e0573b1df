// SPDX-License-Identifier: MIT

package expr

// LatexToInfix_TestOnly exposes latexToInfix.
var LatexToInfix_TestOnly = latexToInfix
