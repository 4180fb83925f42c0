package pkg

import "golang.org/x/crypto/bcrypt"

// PasswordHashCost is lowered in tests, bcrypt with cost 14 takes about a second.
var PasswordHashCost = 14

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	return BytesToString(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
