//go:generate mockery --name PasswordHasher --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher はパスワードの一方向ハッシュです。平文は保存もログ出力もしない。
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type BcryptHasher struct {
	cost int
}

// NewBcryptHasher は cost が範囲外なら bcrypt.DefaultCost を使います。
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h *BcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
