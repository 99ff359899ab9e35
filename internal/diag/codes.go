package diag

import (
	"fmt"
)

// Code identifies a diagnostic kind. Lexical codes live in the 1000 block,
// expansion codes in the 2000 block.
type Code uint16

const (
	// UnknownCode is the zero value fallback.
	UnknownCode Code = 0

	// Lexical
	LexUnknownChar          Code = 1001
	LexUnterminatedString   Code = 1002
	LexUnterminatedChar     Code = 1003
	LexBadNumber            Code = 1004
	LexUnclosedDelimiter    Code = 1005
	LexMismatchedDelimiter  Code = 1006
	LexStrayCloseDelimiter  Code = 1007
	LexTokenLimit           Code = 1008

	// Expansion
	ExpEmptySequence      Code = 2001
	ExpInvalidIdentifier  Code = 2002
	ExpUnknownCaseStyle   Code = 2003
	ExpUnmatchedGroup     Code = 2004
	ExpNonLiteralArgument Code = 2005
	ExpLimitExceeded      Code = 2006
)

func (c Code) String() string {
	switch c {
	case LexUnknownChar:
		return "UnknownChar"
	case LexUnterminatedString:
		return "UnterminatedString"
	case LexUnterminatedChar:
		return "UnterminatedChar"
	case LexBadNumber:
		return "BadNumber"
	case LexUnclosedDelimiter:
		return "UnclosedDelimiter"
	case LexMismatchedDelimiter:
		return "MismatchedDelimiter"
	case LexStrayCloseDelimiter:
		return "StrayCloseDelimiter"
	case LexTokenLimit:
		return "TokenLimit"
	case ExpEmptySequence:
		return "EmptySequence"
	case ExpInvalidIdentifier:
		return "InvalidIdentifier"
	case ExpUnknownCaseStyle:
		return "UnknownCaseStyle"
	case ExpUnmatchedGroup:
		return "UnmatchedGroup"
	case ExpNonLiteralArgument:
		return "NonLiteralArgument"
	case ExpLimitExceeded:
		return "ExpansionLimitExceeded"
	}
	return "Unknown"
}

// ID returns the short machine-readable identifier, e.g. EXP2001.
func (c Code) ID() string {
	switch {
	case c >= 2000:
		return fmt.Sprintf("EXP%04d", uint16(c))
	case c >= 1000:
		return fmt.Sprintf("LEX%04d", uint16(c))
	}
	return fmt.Sprintf("UNK%04d", uint16(c))
}
