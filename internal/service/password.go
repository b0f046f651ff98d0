// File: internal/service/password.go
package service

import "golang.org/x/crypto/bcrypt"

// HashPassword 以 bcrypt 預設成本將明文密碼轉為哈希字串
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword 比對明文密碼與儲存的哈希，不相符時回傳錯誤
func ComparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
