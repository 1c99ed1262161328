// Package expr provides the lexer, parser, evaluator and literal counter
// used to judge a player's answer in the dice game.
//
// Pipeline: answer text → Lex → Parse → (LiteralMultiset, Evaluate)
package expr
