package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperr "meatmarket/internal/errors"
	"meatmarket/internal/model"
)

// lookupErr turns a missing record into a NotFound error with the given
// message and wraps anything else with op.
func lookupErr(err error, op string, format string, args ...interface{}) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(format, args...)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func hashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// hashPasswordField replaces a plain "password" value in fields with its hash.
func hashPasswordField(fields model.Fields, cost int) (model.Fields, error) {
	raw, ok := fields.Get("password")
	if !ok {
		return fields, nil
	}
	plain, _ := raw.(string)
	hashed, err := hashPassword(plain, cost)
	if err != nil {
		return nil, err
	}
	out := make(model.Fields, len(fields))
	copy(out, fields)
	for i := range out {
		if out[i].Key == "password" {
			out[i].Value = hashed
		}
	}
	return out, nil
}
