package codec

import (
	"errors"
	"fmt"
)

var (
	ErrWrongLength      = errors.New("invalid length")
	ErrInvalidCharacter = errors.New("invalid character")
)

type DecodeErrorKind int

const (
	WrongLength DecodeErrorKind = iota
	InvalidCharacter
)

// DecodeError describes why a character grid could not be decoded.
type DecodeError struct {
	Kind DecodeErrorKind
	// Want and Got are character counts for WrongLength.
	Want, Got int
	// Char and Pos locate the offending character for InvalidCharacter.
	Char rune
	Pos  int
	// Max is the largest accepted digit.
	Max int
}

func (e *DecodeError) Error() string {
	if e.Kind == WrongLength {
		return fmt.Sprintf("%s: expected exactly %d characters, got %d", ErrWrongLength, e.Want, e.Got)
	}
	return fmt.Sprintf("%s: %q at position %d (only 0..%d are allowed)", ErrInvalidCharacter, e.Char, e.Pos, e.Max)
}

func (e *DecodeError) Unwrap() error {
	if e.Kind == WrongLength {
		return ErrWrongLength
	}
	return ErrInvalidCharacter
}
