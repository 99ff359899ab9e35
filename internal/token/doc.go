// Package token defines the token tree passed through every rewriting stage.
// Invariants:
//   - Tree.Text is the exact source spelling of the token; Tree.Span matches it.
//   - Literal trees additionally carry Value, the decoded text (no quotes or
//     escape syntax).
//   - A Group exclusively owns its inner stream; groups nest to arbitrary depth.
//   - No operation mutates a Tree in place; rewrites always build new trees.
//   - Punct spacing is significant: a Joint punct is glued to the next token
//     when rendering, so `->` never splits into `-` `>`.
package token
