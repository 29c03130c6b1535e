package internal

import "testing"

func scanSource(source string) *interpreterState {
	state := newInterpreterState(source, &testPrinter{}, nil)
	newLexer(state).scan()
	return state
}

func checkTokens(t *testing.T, source string, types ...tokenType) *interpreterState {
	t.Helper()
	state := scanSource(source)
	types = append(types, tkEOF)
	if len(state.tokens) != len(types) {
		t.Fatalf("Scanning %q: expected %d tokens, found %d: %v", source, len(types), len(state.tokens), state.tokens)
	}
	for i, tk := range state.tokens {
		if tk.token != types[i] {
			t.Errorf("Scanning %q: token %d should be %s instead of %s", source, i, types[i], tk.token)
		}
	}
	return state
}

func checkLexErrors(t *testing.T, state *interpreterState, errs ...error) {
	t.Helper()
	if len(state.errors) != len(errs) {
		t.Fatalf("Expected %d errors, found %d: %v", len(errs), len(state.errors), state.errors)
	}
	for i, e := range state.errors {
		if e.err != errs[i] {
			t.Errorf("Error %d should be %v instead of %v", i, errs[i], e.err)
		}
	}
}

func TestScanPunctuation(t *testing.T) {
	checkTokens(t, "(){},.-+;*/",
		tkLeftParen, tkRightParen, tkLeftBrace, tkRightBrace,
		tkComma, tkDot, tkMinus, tkPlus, tkSemicolon, tkStar, tkSlash)

	checkTokens(t, "! != = == < <= > >=",
		tkBang, tkBangEqual, tkEqual, tkEqualEqual,
		tkLess, tkLessEqual, tkGreater, tkGreaterEqual)

	// Longest match without whitespace
	checkTokens(t, "!===<=>", tkBangEqual, tkEqualEqual, tkLessEqual, tkGreater)
}

func TestScanKeywordsAndIdentifiers(t *testing.T) {
	checkTokens(t, "and class else false for fun if nil or print return super this true var while",
		tkAnd, tkClass, tkElse, tkFalse, tkFor, tkFun, tkIf, tkNil,
		tkOr, tkPrint, tkReturn, tkSuper, tkThis, tkTrue, tkVar, tkWhile)

	state := checkTokens(t, "orchid _under var2 π", tkIdentifier, tkIdentifier, tkIdentifier, tkIdentifier)
	lexemes := []string{"orchid", "_under", "var2", "π"}
	for i, lexeme := range lexemes {
		if state.tokens[i].lexeme != lexeme {
			t.Errorf("Expected lexeme %q, found %q", lexeme, state.tokens[i].lexeme)
		}
		if state.tokens[i].literal != nil {
			t.Errorf("Identifier %q should not carry a literal", lexeme)
		}
	}
}

func TestScanLiterals(t *testing.T) {
	state := checkTokens(t, `123 45.67 "hi there"`, tkNumber, tkNumber, tkString)
	if state.tokens[0].literal != loxNumber(123) {
		t.Errorf("Expected 123, found %v", state.tokens[0].literal)
	}
	if state.tokens[1].literal != loxNumber(45.67) {
		t.Errorf("Expected 45.67, found %v", state.tokens[1].literal)
	}
	if state.tokens[2].literal != loxString("hi there") {
		t.Errorf("Expected hi there, found %v", state.tokens[2].literal)
	}
	if state.tokens[2].lexeme != `"hi there"` {
		t.Errorf("String lexeme should keep its quotes, found %s", state.tokens[2].lexeme)
	}

	// A trailing dot is scanned on its own
	state = checkTokens(t, "12.", tkNumber, tkDot)
	if state.tokens[0].literal != loxNumber(12) {
		t.Errorf("Expected 12, found %v", state.tokens[0].literal)
	}

	// So is a leading one
	checkTokens(t, ".5", tkDot, tkNumber)

	checkTokens(t, "1.2.3", tkNumber, tkDot, tkNumber)
}

func TestScanLines(t *testing.T) {
	state := checkTokens(t, "a\nb\n\nc", tkIdentifier, tkIdentifier, tkIdentifier)
	for i, line := range []int{1, 2, 4, 4} {
		if state.tokens[i].line != line {
			t.Errorf("Token %d should be on line %d instead of %d", i, line, state.tokens[i].line)
		}
	}

	// Strings may span lines
	state = checkTokens(t, "\"a\nb\"\nx", tkString, tkIdentifier)
	if state.tokens[0].literal != loxString("a\nb") {
		t.Errorf("Unexpected string literal %q", state.tokens[0].literal)
	}
	if state.tokens[1].line != 3 {
		t.Errorf("Expected x on line 3, found %d", state.tokens[1].line)
	}
}

func TestScanComments(t *testing.T) {
	state := checkTokens(t, "// comment\n1", tkNumber)
	if state.tokens[0].line != 2 {
		t.Errorf("Expected number on line 2, found %d", state.tokens[0].line)
	}

	checkTokens(t, "1 // comment", tkNumber)
	checkTokens(t, "/* a /* b */ c */ 1", tkNumber)
	checkTokens(t, "/**/ 1 /* * / */", tkNumber)

	state = checkTokens(t, "/*\n/*\n*/\n*/ x", tkIdentifier)
	if state.tokens[0].line != 4 {
		t.Errorf("Expected x on line 4, found %d", state.tokens[0].line)
	}
	checkLexErrors(t, state)
}

func TestScanErrors(t *testing.T) {
	// Unterminated string is reported once and produces no token
	state := checkTokens(t, `print "abc`, tkPrint)
	checkLexErrors(t, state, errUnterminatedString)
	if state.errors[0].Error() != "[line 1] Error at end: Unterminated string" {
		t.Errorf("Unexpected error message %q", state.errors[0].Error())
	}

	state = checkTokens(t, "1 /* /* */\n", tkNumber)
	checkLexErrors(t, state, errUnterminatedComment)
	if state.errors[0].Error() != "[line 2] Error at end: Unterminated block comment" {
		t.Errorf("Unexpected error message %q", state.errors[0].Error())
	}

	// Scanning goes on after an unexpected character
	state = checkTokens(t, "a @ b #", tkIdentifier, tkIdentifier)
	checkLexErrors(t, state, errUnexpectedChar, errUnexpectedChar)
	if state.errors[0].where != " at '@'" || state.errors[1].where != " at '#'" {
		t.Errorf("Unexpected error locations %q %q", state.errors[0].where, state.errors[1].where)
	}
	if state.errors[0].Error() != "[line 1] Error at '@': Unexpected character" {
		t.Errorf("Unexpected error message %q", state.errors[0].Error())
	}
}

func TestTokenString(t *testing.T) {
	state := checkTokens(t, `1.5 "s" x`, tkNumber, tkString, tkIdentifier)
	expected := []string{`NUMBER 1.5 1.5`, `STRING "s" s`, `IDENTIFIER x `}
	for i, e := range expected {
		if s := state.tokens[i].String(); s != e {
			t.Errorf("Expected %q, found %q", e, s)
		}
	}
}
