package gtkcss

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser builds a Stylesheet tree from CSS text.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a parser. A nil logger disables logging.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("parser")}
}

// ParseFile reads and parses a single CSS file
func (p *Parser) ParseFile(path string) (*Stylesheet, error) {
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return p.Parse(content, path)
}

// ParseString is a convenience wrapper around Parse.
func (p *Parser) ParseString(content, source string) (*Stylesheet, error) {
	return p.Parse([]byte(content), source)
}

// token is a lexer token with its source text copied out of the input buffer.
type token struct {
	tt   css.TokenType
	text string
}

// parserState tracks the open blocks and the item being collected.
type parserState struct {
	log     *zap.Logger
	sheet   *Stylesheet
	content []byte
	offset  int // bytes consumed so far, for line numbers in warnings

	stack   []Container // innermost block receives new nodes
	pending []token     // prelude or declaration collected so far
	depth   int         // () and [] nesting inside pending
}

// Parse converts CSS into a tree of rules, at-rules, declarations and comments.
//
// Values, selectors and preludes keep the whitespace of the source (runs are
// collapsed to one space), so "rgb(1 2 3 / 4)" reaches plugins unchanged.
// Custom property values are kept verbatim apart from surrounding space.
// Recoverable syntax errors are recorded in Stylesheet.Warnings.
func (p *Parser) Parse(content []byte, source string) (*Stylesheet, error) {
	sheet := &Stylesheet{Source: source}
	p.log.Debug("Parsing CSS", zap.String("source", source), zap.Int("bytes", len(content)))

	state := &parserState{
		log:     p.log,
		sheet:   sheet,
		content: content,
		stack:   []Container{sheet},
	}

	lexer := css.NewLexer(parse.NewInputBytes(content))
	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("parse %s: %w", source, err)
			}
			state.finishItem()
			if len(state.stack) > 1 {
				state.warn("unexpected end of input inside block")
			}
			return sheet, nil
		}
		state.handle(tt, string(data))
		state.offset += len(data)
	}
}

func (s *parserState) top() Container {
	return s.stack[len(s.stack)-1]
}

func (s *parserState) handle(tt css.TokenType, text string) {
	switch tt {
	case css.LeftBraceToken:
		s.openBlock()
		return
	case css.RightBraceToken:
		s.finishItem()
		if len(s.stack) == 1 {
			s.warn("unexpected }")
			return
		}
		s.stack = s.stack[:len(s.stack)-1]
		return
	case css.SemicolonToken:
		if s.depth == 0 {
			s.finishItem()
			return
		}
	case css.CommentToken:
		if isBlank(s.pending) {
			s.pending = nil
			s.top().Append(&Comment{Text: commentText(text)})
			return
		}
	case css.WhitespaceToken:
		if len(s.pending) == 0 {
			return
		}
	case css.CDOToken, css.CDCToken:
		if len(s.pending) == 0 {
			return
		}
	case css.FunctionToken, css.LeftParenthesisToken, css.LeftBracketToken:
		s.depth++
	case css.RightParenthesisToken, css.RightBracketToken:
		if s.depth > 0 {
			s.depth--
		}
	}
	s.pending = append(s.pending, token{tt: tt, text: text})
}

// openBlock turns the pending prelude into a rule or at-rule and enters it.
func (s *parserState) openBlock() {
	item := trimTokens(s.pending)
	s.pending, s.depth = nil, 0

	if len(item) > 0 && item[0].tt == css.AtKeywordToken {
		at := &AtRule{
			Name:     atRuleName(item[0].text),
			Prelude:  tokenText(item[1:]),
			HasBlock: true,
		}
		s.top().Append(at)
		s.stack = append(s.stack, at)
		return
	}

	if len(item) == 0 {
		s.warn("rule without selector")
	}
	rule := &Rule{Selector: selectorText(item)}
	s.top().Append(rule)
	s.stack = append(s.stack, rule)
}

// finishItem closes the pending statement at-rule or declaration.
func (s *parserState) finishItem() {
	item := trimTokens(s.pending)
	s.pending, s.depth = nil, 0
	if len(item) == 0 {
		return
	}

	if item[0].tt == css.AtKeywordToken {
		s.top().Append(&AtRule{
			Name:    atRuleName(item[0].text),
			Prelude: tokenText(item[1:]),
		})
		return
	}

	colon := -1
	for i, t := range item {
		if t.tt == css.ColonToken {
			colon = i
			break
		}
	}
	prop := tokenText(item[:max(colon, 0)])
	if colon < 0 || prop == "" || strings.ContainsAny(prop, " ") {
		s.warn(fmt.Sprintf("invalid declaration %q", rawText(item)))
		return
	}
	if _, ok := s.top().(*Stylesheet); ok {
		s.warn(fmt.Sprintf("declaration %q outside of a block", prop))
		return
	}

	decl := &Declaration{Prop: prop}
	if strings.HasPrefix(prop, "--") {
		decl.Value, decl.Important = splitImportant(strings.TrimSpace(rawText(item[colon+1:])))
	} else {
		decl.Value, decl.Important = splitImportant(tokenText(item[colon+1:]))
	}
	s.top().Append(decl)
}

func (s *parserState) warn(msg string) {
	line := bytes.Count(s.content[:min(s.offset, len(s.content))], []byte("\n")) + 1
	warning := fmt.Sprintf("%s:%d: %s", s.sheet.Source, line, msg)
	s.sheet.Warnings = append(s.sheet.Warnings, warning)
	s.log.Debug("Recoverable CSS error", zap.String("warning", warning))
}

// atRuleName turns "@Media" into "media".
func atRuleName(text string) string {
	return strings.ToLower(strings.TrimPrefix(text, "@"))
}

// commentText strips the comment delimiters.
func commentText(text string) string {
	text = strings.TrimPrefix(text, "/*")
	text = strings.TrimSuffix(text, "*/")
	return strings.TrimSpace(text)
}

// selectorText joins a selector list as "a, b", normalizing space around commas.
func selectorText(tokens []token) string {
	var parts []string
	depth, start := 0, 0
	for i, t := range tokens {
		switch t.tt {
		case css.FunctionToken, css.LeftParenthesisToken, css.LeftBracketToken:
			depth++
		case css.RightParenthesisToken, css.RightBracketToken:
			depth--
		case css.CommaToken:
			if depth == 0 {
				parts = append(parts, tokenText(tokens[start:i]))
				start = i + 1
			}
		}
	}
	parts = append(parts, tokenText(tokens[start:]))
	return strings.Join(nonEmpty(parts), ", ")
}

// tokenText concatenates tokens, dropping comments and collapsing whitespace runs.
func tokenText(tokens []token) string {
	var sb strings.Builder
	for _, t := range tokens {
		switch t.tt {
		case css.WhitespaceToken:
			sb.WriteByte(' ')
		case css.CommentToken:
		default:
			sb.WriteString(t.text)
		}
	}
	return collapseSpace(sb.String())
}

// rawText concatenates tokens exactly as they appeared in the source.
func rawText(tokens []token) string {
	var sb strings.Builder
	for _, t := range tokens {
		sb.WriteString(t.text)
	}
	return sb.String()
}

// trimTokens drops leading and trailing whitespace and comments.
func trimTokens(tokens []token) []token {
	for len(tokens) > 0 && isSpace(tokens[0]) {
		tokens = tokens[1:]
	}
	for len(tokens) > 0 && isSpace(tokens[len(tokens)-1]) {
		tokens = tokens[:len(tokens)-1]
	}
	return tokens
}

func isSpace(t token) bool {
	return t.tt == css.WhitespaceToken || t.tt == css.CommentToken
}

func isBlank(tokens []token) bool {
	return len(trimTokens(tokens)) == 0
}

// splitImportant separates a trailing "!important" flag from a value.
func splitImportant(value string) (string, bool) {
	i := strings.LastIndex(value, "!")
	if i < 0 {
		return value, false
	}
	if !strings.EqualFold(strings.TrimSpace(value[i+1:]), "important") {
		return value, false
	}
	return strings.TrimSpace(value[:i]), true
}

// collapseSpace trims s and reduces internal whitespace runs to a single space.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// nonEmpty drops empty strings from a slice
func nonEmpty(items []string) []string {
	result := make([]string, 0, len(items))
	for _, item := range items {
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}
