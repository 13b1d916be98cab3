package parser

import (
	"github.com/hail-lang/hail/internal/lexer"
)

type delimitedConfig struct {
	Closing   lexer.TokenType
	Separator lexer.TokenType

	AllowEmpty    bool
	AllowTrailing bool
}

// parseDelimited folds a separator-delimited list. It is entered with
// curTok at the first token of the first element (or at the closing token
// for an empty list) and returns with curTok at the closing token. parseItem
// follows the same positioning convention as every other parse method.
func parseDelimited[T any](p *Parser, cfg delimitedConfig, parseItem func() (T, bool)) ([]T, bool) {
	if cfg.Separator == "" {
		cfg.Separator = lexer.COMMA
	}

	var items []T

	if p.curTok.Type == cfg.Closing {
		if cfg.AllowEmpty {
			return items, true
		}
		p.fail("expected "+describeTokens([]lexer.TokenType{cfg.Separator})+" separated list element", p.curTok)
		return nil, false
	}

	for {
		item, ok := parseItem()
		if !ok {
			return nil, false
		}
		items = append(items, item)

		switch p.peekTok.Type {
		case cfg.Separator:
			p.nextToken() // move to separator
			p.nextToken() // move to next potential element

			if p.curTok.Type == cfg.Closing {
				if cfg.AllowTrailing {
					return items, true
				}
				p.fail("expected list element after "+describeToken(cfg.Separator), p.curTok, cfg.Separator)
				return nil, false
			}
			continue
		case cfg.Closing:
			p.nextToken()
			return items, true
		default:
			p.failExpected(p.peekTok, cfg.Separator, cfg.Closing)
			return nil, false
		}
	}
}
