package validation

import (
	"fmt"
	"regexp"
)

// EmailPattern определяет допустимый формат email для досерверной проверки.
// Намеренно нестрогий: локальная часть, @, домен с точкой. Окончательная
// проверка на сервере.
var EmailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// MaxEmailLen максимальная длина email
const MaxEmailLen = 254

// ValidateEmail проверяет email перед отправкой на сервер
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	if len(email) > MaxEmailLen {
		return fmt.Errorf("email must not exceed %d characters", MaxEmailLen)
	}

	if !EmailPattern.MatchString(email) {
		return fmt.Errorf("email must look like name@example.com")
	}

	return nil
}

// ValidatePassword проверяет, что пароль не пустой.
// Требования к сложности пароля проверяет сервер при регистрации.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	return nil
}
