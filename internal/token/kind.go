package token

// Kind represents the category of a token tree node.
type Kind uint8

const (
	// Invalid indicates an erroneous tree.
	Invalid Kind = iota
	// Ident represents an identifier.
	Ident
	// Literal represents a literal with a decoded value (see LitKind).
	Literal
	// Punct represents a single punctuation character with spacing.
	Punct
	// Group represents a delimited sub-stream.
	Group
)

func (k Kind) String() string {
	switch k {
	case Ident:
		return "Ident"
	case Literal:
		return "Literal"
	case Punct:
		return "Punct"
	case Group:
		return "Group"
	}
	return "Invalid"
}

// LitKind classifies literal trees.
type LitKind uint8

const (
	// LitString is a quoted string literal.
	LitString LitKind = iota
	// LitRawString is a raw string literal (no escape processing).
	LitRawString
	// LitInt is an integer literal in any base.
	LitInt
	// LitFloat is a floating point literal.
	LitFloat
	// LitChar is a character literal.
	LitChar
	// LitByte is a byte literal.
	LitByte
)

func (k LitKind) String() string {
	switch k {
	case LitString:
		return "String"
	case LitRawString:
		return "RawString"
	case LitInt:
		return "Int"
	case LitFloat:
		return "Float"
	case LitChar:
		return "Char"
	case LitByte:
		return "Byte"
	}
	return "Unknown"
}

// Delim identifies the bracket pair of a Group.
type Delim uint8

const (
	// DelimNone is an invisible delimiter (spliced results, top level).
	DelimNone Delim = iota
	// DelimParen is ( ).
	DelimParen
	// DelimBracket is [ ].
	DelimBracket
	// DelimBrace is { }.
	DelimBrace
)

// Open returns the opening bracket character, or empty for DelimNone.
func (d Delim) Open() string {
	switch d {
	case DelimParen:
		return "("
	case DelimBracket:
		return "["
	case DelimBrace:
		return "{"
	}
	return ""
}

// Close returns the closing bracket character, or empty for DelimNone.
func (d Delim) Close() string {
	switch d {
	case DelimParen:
		return ")"
	case DelimBracket:
		return "]"
	case DelimBrace:
		return "}"
	}
	return ""
}

// Spacing tells whether a Punct is glued to the following token.
type Spacing uint8

const (
	// Alone means the punct stands on its own.
	Alone Spacing = iota
	// Joint means the punct joins the next token with no space between.
	Joint
)
