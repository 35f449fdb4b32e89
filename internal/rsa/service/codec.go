package service

import (
	"math/big"
	"strings"
	"unicode/utf8"

	apperrors "github.com/allisson/toyrsa/internal/errors"
	rsaDomain "github.com/allisson/toyrsa/internal/rsa/domain"
)

// EncodeStream renders a symbol stream as space-separated decimal integers.
func EncodeStream(stream rsaDomain.SymbolStream) (string, error) {
	if err := stream.Validate(); err != nil {
		return "", err
	}

	parts := make([]string, len(stream))
	for i, symbol := range stream {
		parts[i] = symbol.String()
	}
	return strings.Join(parts, " "), nil
}

// DecodeStream parses space-separated decimal integers into a symbol stream.
// Any run of whitespace separates symbols; an empty string yields an empty stream.
func DecodeStream(encoded string) (rsaDomain.SymbolStream, error) {
	fields := strings.Fields(encoded)
	stream := make(rsaDomain.SymbolStream, len(fields))

	for i, field := range fields {
		symbol, ok := new(big.Int).SetString(field, 10)
		if !ok {
			return nil, apperrors.Wrapf(rsaDomain.ErrMalformedSymbolStream, "symbol %d (%q) is not an integer", i, field)
		}
		if symbol.Sign() < 0 {
			return nil, apperrors.Wrapf(rsaDomain.ErrMalformedSymbolStream, "symbol %d is negative", i)
		}
		stream[i] = symbol
	}
	return stream, nil
}

// TextToSymbols maps each rune of text to its code point.
func TextToSymbols(text string) rsaDomain.SymbolStream {
	stream := make(rsaDomain.SymbolStream, 0, utf8.RuneCountInString(text))
	for _, r := range text {
		stream = append(stream, big.NewInt(int64(r)))
	}
	return stream
}

// SymbolsToText maps each symbol back to the rune with that code point.
func SymbolsToText(stream rsaDomain.SymbolStream) (string, error) {
	if err := stream.Validate(); err != nil {
		return "", err
	}

	var sb strings.Builder
	for i, symbol := range stream {
		if !symbol.IsInt64() || symbol.Int64() > utf8.MaxRune || !utf8.ValidRune(rune(symbol.Int64())) {
			return "", apperrors.Wrapf(rsaDomain.ErrMalformedSymbolStream, "symbol %d is not a valid code point", i)
		}
		sb.WriteRune(rune(symbol.Int64()))
	}
	return sb.String(), nil
}
