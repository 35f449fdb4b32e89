package repository

import (
	"math/big"

	apperrors "github.com/allisson/toyrsa/internal/errors"
	rsaDomain "github.com/allisson/toyrsa/internal/rsa/domain"
)

// keyPairColumns is the column order shared by every select.
const keyPairColumns = `id, public_exponent, private_exponent, modulus, created_at`

// ErrCorruptKeyPair is returned when a stored exponent or modulus is not a decimal integer.
var ErrCorruptKeyPair = apperrors.New("corrupt key pair row")

// keyPairRow holds the decimal text columns of a key_pairs row before parsing.
type keyPairRow struct {
	publicExponent  string
	privateExponent string
	modulus         string
}

func newKeyPairRow(record *rsaDomain.KeyRecord) keyPairRow {
	return keyPairRow{
		publicExponent:  record.KeyPair.Public.E.String(),
		privateExponent: record.KeyPair.Private.D.String(),
		modulus:         record.KeyPair.Public.N.String(),
	}
}

// keyPair parses the decimal columns back into a key pair.
func (r keyPairRow) keyPair() (*rsaDomain.KeyPair, error) {
	e, err := parseDecimal(r.publicExponent, "public_exponent")
	if err != nil {
		return nil, err
	}
	d, err := parseDecimal(r.privateExponent, "private_exponent")
	if err != nil {
		return nil, err
	}
	n, err := parseDecimal(r.modulus, "modulus")
	if err != nil {
		return nil, err
	}
	return rsaDomain.NewKeyPair(e, d, n), nil
}

func parseDecimal(value, column string) (*big.Int, error) {
	x, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return nil, apperrors.Wrapf(ErrCorruptKeyPair, "column %s holds %q", column, value)
	}
	return x, nil
}
