package html

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Tokenizer wraps the underlying HTML tokenizer for low-level token access.
type Tokenizer struct {
	z *html.Tokenizer
}

// TokenType represents the type of an HTML token.
type TokenType int

const (
	ErrorToken TokenType = iota
	TextToken
	StartTagToken
	EndTagToken
	SelfClosingTagToken
	CommentToken
	DoctypeToken
)

// Token represents an HTML token.
type Token struct {
	Type       TokenType
	Data       string
	Attributes []Attribute
}

// NewTokenizer creates a new tokenizer for the given reader.
func NewTokenizer(r io.Reader) *Tokenizer {
	return &Tokenizer{z: html.NewTokenizer(r)}
}

// NewTokenizerString creates a new tokenizer for the given string.
func NewTokenizerString(s string) *Tokenizer {
	return NewTokenizer(strings.NewReader(s))
}

// Next advances the tokenizer and returns the type of the next token.
func (t *Tokenizer) Next() TokenType {
	tt := t.z.Next()
	return convertTokenType(tt)
}

// Token returns the current token. Attribute values are entity-decoded.
func (t *Tokenizer) Token() Token {
	tok := t.z.Token()
	return Token{
		Type:       convertTokenType(tok.Type),
		Data:       tok.Data,
		Attributes: convertAttributes(tok.Attr),
	}
}

// Text returns the unescaped text of a text or comment token.
func (t *Tokenizer) Text() string {
	return string(t.z.Text())
}

// Raw returns a copy of the raw bytes of the current token. For text
// tokens this preserves character references undecoded.
func (t *Tokenizer) Raw() []byte {
	raw := t.z.Raw()
	return append([]byte(nil), raw...)
}

// Err returns the error associated with the most recent ErrorToken.
func (t *Tokenizer) Err() error {
	return t.z.Err()
}

func convertTokenType(tt html.TokenType) TokenType {
	switch tt {
	case html.ErrorToken:
		return ErrorToken
	case html.TextToken:
		return TextToken
	case html.StartTagToken:
		return StartTagToken
	case html.EndTagToken:
		return EndTagToken
	case html.SelfClosingTagToken:
		return SelfClosingTagToken
	case html.CommentToken:
		return CommentToken
	case html.DoctypeToken:
		return DoctypeToken
	default:
		return ErrorToken
	}
}

func convertAttributes(attrs []html.Attribute) []Attribute {
	if len(attrs) == 0 {
		return nil
	}
	result := make([]Attribute, len(attrs))
	for i, a := range attrs {
		result[i] = Attribute{
			Key:   a.Key,
			Value: a.Val,
		}
	}
	return result
}
