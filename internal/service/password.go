package service

import "golang.org/x/crypto/bcrypt"

// Стоимость bcrypt фиксирована: дорого по построению, чтобы перебор не окупался.
const passwordCost = 12

// HashPassword возвращает одностороннний дайджест пароля.
// Ошибка возможна только при сбое самого примитива.
func HashPassword(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), passwordCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// CheckPassword сравнивает пароль с дайджестом. Несовпадение — это false,
// а не ошибка.
func CheckPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
