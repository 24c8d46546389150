/*
 * Copyright 2025 Cirrus-IR Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package rir

import (
    `fmt`
    `strconv`
    `strings`
    `unicode`
)

// SyntaxError occurs when the textual IR form cannot be parsed.
type SyntaxError struct {
    Line   int
    Reason string
}

func (self SyntaxError) Error() string {
    return fmt.Sprintf("syntax error at line %d: %s", self.Line, self.Reason)
}

type _TokenKind uint8

const (
    _T_end _TokenKind = iota
    _T_nl
    _T_ident   // mnemonic
    _T_value   // %name
    _T_symbol  // @name
    _T_int
    _T_punct   // one of = , ( ) { }
)

type _Token struct {
    kind _TokenKind
    str  string
    num  int64
    line int
}

type lexer struct {
    src  []rune
    pos  int
    line int
}

func isident(ch rune) bool {
    return ch == '.' || ch == '_' || unicode.IsLetter(ch) || unicode.IsDigit(ch)
}

func (self *lexer) next() (_Token, error) {
    for self.pos < len(self.src) {
        ch := self.src[self.pos]
        switch {
            case ch == '\n': {
                self.pos++
                self.line++
                return _Token{kind: _T_nl, line: self.line - 1}, nil
            }

            case ch == ' ' || ch == '\t' || ch == '\r': {
                self.pos++
            }

            /* line comments */
            case ch == ';': {
                for self.pos < len(self.src) && self.src[self.pos] != '\n' {
                    self.pos++
                }
            }

            case ch == '%' || ch == '@': {
                self.pos++
                s := self.ident()
                if s == "" {
                    return _Token{}, SyntaxError{self.line, "name expected after " + string(ch)}
                }
                if ch == '%' {
                    return _Token{kind: _T_value, str: s, line: self.line}, nil
                }
                return _Token{kind: _T_symbol, str: s, line: self.line}, nil
            }

            case ch == '-' || unicode.IsDigit(ch): {
                p := self.pos
                self.pos++
                for self.pos < len(self.src) && unicode.IsDigit(self.src[self.pos]) {
                    self.pos++
                }
                v, err := strconv.ParseInt(string(self.src[p:self.pos]), 10, 64)
                if err != nil {
                    return _Token{}, SyntaxError{self.line, "invalid integer literal"}
                }
                return _Token{kind: _T_int, num: v, line: self.line}, nil
            }

            case strings.ContainsRune("=,(){}", ch): {
                self.pos++
                return _Token{kind: _T_punct, str: string(ch), line: self.line}, nil
            }

            case isident(ch): {
                return _Token{kind: _T_ident, str: self.ident(), line: self.line}, nil
            }

            default: {
                return _Token{}, SyntaxError{self.line, fmt.Sprintf("unexpected character %q", ch)}
            }
        }
    }
    return _Token{kind: _T_end, line: self.line}, nil
}

func (self *lexer) ident() string {
    p := self.pos
    for self.pos < len(self.src) && isident(self.src[self.pos]) {
        self.pos++
    }
    return string(self.src[p:self.pos])
}

type parser struct {
    lx   lexer
    tk   _Token
    ahead *_Token
    vals map[string]*Value
}

func (self *parser) advance() error {
    if self.ahead != nil {
        self.tk, self.ahead = *self.ahead, nil
        return nil
    }
    tk, err := self.lx.next()
    if err != nil {
        return err
    }
    self.tk = tk
    return nil
}

func (self *parser) peek() (_Token, error) {
    if self.ahead == nil {
        tk, err := self.lx.next()
        if err != nil {
            return _Token{}, err
        }
        self.ahead = &tk
    }
    return *self.ahead, nil
}

func (self *parser) skipnl() error {
    for {
        if err := self.advance(); err != nil {
            return err
        }
        if self.tk.kind != _T_nl {
            return nil
        }
    }
}

func (self *parser) lookup(name string, line int) (*Value, error) {
    if v, ok := self.vals[name]; ok {
        return v, nil
    }
    return nil, SyntaxError{line, fmt.Sprintf("use of undefined value %%%s", name)}
}

func (self *parser) define(name string, v *Value, line int) error {
    if _, ok := self.vals[name]; ok {
        return SyntaxError{line, fmt.Sprintf("redefinition of value %%%s", name)}
    }
    v.Name = name
    self.vals[name] = v
    return nil
}

// parseOp parses one operation; the current token is its first token.
func (self *parser) parseOp() (*Operation, error) {
    var results []string

    /* leading "%a, %b =" result list */
    if self.tk.kind == _T_value {
        for {
            results = append(results, self.tk.str)
            if err := self.advance(); err != nil {
                return nil, err
            }
            if self.tk.kind == _T_punct && self.tk.str == "," {
                if err := self.advance(); err != nil {
                    return nil, err
                }
                if self.tk.kind != _T_value {
                    return nil, SyntaxError{self.tk.line, "result name expected"}
                }
                continue
            }
            break
        }
        if self.tk.kind != _T_punct || self.tk.str != "=" {
            return nil, SyntaxError{self.tk.line, `"=" expected after result list`}
        }
        if err := self.advance(); err != nil {
            return nil, err
        }
    }

    /* operation mnemonic */
    if self.tk.kind != _T_ident {
        return nil, SyntaxError{self.tk.line, "operation name expected"}
    }
    p := &Operation{Name: self.tk.str}
    line := self.tk.line

    /* optional "@symbol" */
    tk, err := self.peek()
    if err != nil {
        return nil, err
    }
    if tk.kind == _T_symbol {
        p.SymAttr = tk.str
        if err := self.advance(); err != nil {
            return nil, err
        }
        if tk, err = self.peek(); err != nil {
            return nil, err
        }
    }

    /* operand list, confined to the header line */
    for tk.kind == _T_value {
        v, err := self.lookup(tk.str, tk.line)
        if err != nil {
            return nil, err
        }
        p.Operands = append(p.Operands, v)
        if err = self.advance(); err != nil {
            return nil, err
        }
        if tk, err = self.peek(); err != nil {
            return nil, err
        }
        if tk.kind == _T_punct && tk.str == "," {
            if err = self.advance(); err != nil {
                return nil, err
            }
            if tk, err = self.peek(); err != nil {
                return nil, err
            }
            if tk.kind != _T_value {
                return nil, SyntaxError{tk.line, "operand name expected"}
            }
        }
    }

    /* optional integer attribute */
    if tk.kind == _T_int {
        p.IntAttr = tk.num
        if err = self.advance(); err != nil {
            return nil, err
        }
        if tk, err = self.peek(); err != nil {
            return nil, err
        }
    }

    /* materialize the results before region bodies may refer to them */
    for i, name := range results {
        v := &Value{Def: p, Idx: i}
        p.Results = append(p.Results, v)
        if err = self.define(name, v, line); err != nil {
            return nil, err
        }
    }

    /* region clauses: "(args) { ... }" or "{ ... }" */
    for tk.kind == _T_punct && (tk.str == "(" || tk.str == "{") {
        if err = self.advance(); err != nil {
            return nil, err
        }
        if err = self.parseRegion(p); err != nil {
            return nil, err
        }
        if tk, err = self.peek(); err != nil {
            return nil, err
        }
    }
    return p, nil
}

// parseRegion parses one single-block region clause; the current token is
// its opening "(" or "{".
func (self *parser) parseRegion(owner *Operation) error {
    rr := owner.AddRegion()
    bb := rr.AddBlock()

    /* optional block argument list */
    if self.tk.str == "(" {
        for {
            if err := self.advance(); err != nil {
                return err
            }
            if self.tk.kind == _T_punct && self.tk.str == ")" {
                break
            }
            if self.tk.kind == _T_punct && self.tk.str == "," {
                continue
            }
            if self.tk.kind != _T_value {
                return SyntaxError{self.tk.line, "block argument expected"}
            }
            v := bb.AddArg("")
            if err := self.define(self.tk.str, v, self.tk.line); err != nil {
                return err
            }
        }
        if err := self.skipnl(); err != nil {
            return err
        }
        if self.tk.kind != _T_punct || self.tk.str != "{" {
            return SyntaxError{self.tk.line, `"{" expected after block arguments`}
        }
    }

    /* block body, one operation per line */
    for {
        if err := self.skipnl(); err != nil {
            return err
        }
        if self.tk.kind == _T_punct && self.tk.str == "}" {
            return nil
        }
        if self.tk.kind == _T_end {
            return SyntaxError{self.tk.line, `"}" expected`}
        }
        p, err := self.parseOp()
        if err != nil {
            return err
        }
        bb.Append(p)
    }
}

// Parse reads one top-level operation (usually a cir.func) from the textual
// IR form produced by Print.
func Parse(src string) (*Operation, error) {
    ps := parser {
        lx   : lexer{src: []rune(src), line: 1},
        vals : make(map[string]*Value),
    }
    if err := ps.skipnl(); err != nil {
        return nil, err
    }
    p, err := ps.parseOp()
    if err != nil {
        return nil, err
    }
    if err := ps.skipnl(); err != nil {
        return nil, err
    }
    if ps.tk.kind != _T_end {
        return nil, SyntaxError{ps.tk.line, "trailing input after top-level operation"}
    }
    return p, nil
}
